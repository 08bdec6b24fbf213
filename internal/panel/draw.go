package panel

import "github.com/AllenDang/cimgui-go/imgui"

// Draw renders the panel. Must be called between ImGui NewFrame and Render.
// Widgets read the bound values each frame, so changes made elsewhere show
// up immediately.
func (p *Panel) Draw() {
	if !p.Visible {
		return
	}

	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondFirstUseEver, imgui.NewVec2(0, 0))
	if imgui.BeginV(p.Title, &p.Visible, imgui.WindowFlagsAlwaysAutoResize) {
		for _, f := range p.fields {
			f.draw()
		}
	}
	imgui.End()
}

func (f *floatField) draw() {
	v := f.Get()
	if imgui.SliderFloat(f.Label, &v, f.Min, f.Max) {
		f.commit(v)
	}
}

func (f *boolField) draw() {
	v := f.Get()
	if imgui.Checkbox(f.Label, &v) {
		f.commit(v)
	}
}

func (f *colorField) draw() {
	v := f.Get()
	if imgui.ColorEdit3(f.Label, &v) {
		f.commit(v)
	}
}

func (f *actionField) draw() {
	if imgui.Button(f.Label) {
		_ = f.apply(nil)
	}
}
