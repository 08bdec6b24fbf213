package renderer

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/cloudview/internal/pointcloud"
)

const floatSize = 4

// buffers is a VAO plus the buffers it references.
type buffers struct {
	vao  uint32
	vbos []uint32
	ebo  uint32
}

func (b *buffers) arrayBuffer(data []float32) uint32 {
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*floatSize, gl.Ptr(data), gl.STATIC_DRAW)
	b.vbos = append(b.vbos, vbo)
	return vbo
}

func (b *buffers) elementBuffer(idx []uint32) {
	gl.GenBuffers(1, &b.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(idx)*4, gl.Ptr(idx), gl.STATIC_DRAW)
}

// attrib enables a float vec3 attribute at location with the given stride
// and offset, both in floats.
func attrib(location uint32, stride, offset int) {
	gl.VertexAttribPointerWithOffset(location, 3, gl.FLOAT, false, int32(stride*floatSize), uintptr(offset*floatSize))
	gl.EnableVertexAttribArray(location)
}

func (b *buffers) release() {
	if len(b.vbos) > 0 {
		gl.DeleteBuffers(int32(len(b.vbos)), &b.vbos[0])
		b.vbos = nil
	}
	if b.ebo != 0 {
		gl.DeleteBuffers(1, &b.ebo)
		b.ebo = 0
	}
	if b.vao != 0 {
		gl.DeleteVertexArrays(1, &b.vao)
		b.vao = 0
	}
}

// cloudMesh is one uploaded point cloud. Packed geometries use one buffer
// per attribute; vertex lists are interleaved.
type cloudMesh struct {
	buffers
	points *pointcloud.Points
	count  int32
	index  int32
}

func newCloudMesh(p *pointcloud.Points) *cloudMesh {
	m := &cloudMesh{points: p}
	geom := p.Geometry
	if geom == nil || geom.Count() == 0 {
		return m
	}
	m.count = int32(geom.Count())

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	if geom.Vertices != nil {
		data := make([]float32, 0, len(geom.Vertices)*6)
		for _, v := range geom.Vertices {
			data = append(data,
				v.Position[0], v.Position[1], v.Position[2],
				v.Color.R, v.Color.G, v.Color.B)
		}
		m.arrayBuffer(data)
		attrib(0, 6, 0)
		attrib(1, 6, 3)
	} else {
		m.arrayBuffer(geom.Buffers.Positions)
		attrib(0, 3, 0)
		m.arrayBuffer(geom.Buffers.Colors)
		attrib(1, 3, 0)

		if len(geom.Index) > 0 {
			m.elementBuffer(geom.Index)
			m.index = int32(len(geom.Index))
		}
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return m
}

func (m *cloudMesh) draw() {
	if m.vao == 0 {
		return
	}
	gl.BindVertexArray(m.vao)
	defer gl.BindVertexArray(0)

	geom := m.points.Geometry
	switch {
	case m.index > 0 && len(geom.Groups) > 0:
		for _, g := range geom.Groups {
			gl.DrawElementsWithOffset(gl.POINTS, int32(g.Count), gl.UNSIGNED_INT, uintptr(g.Start*4))
		}
	case m.index > 0:
		gl.DrawElementsWithOffset(gl.POINTS, m.index, gl.UNSIGNED_INT, 0)
	default:
		gl.DrawArrays(gl.POINTS, 0, m.count)
	}
}

// sphereMesh is the indexed unit sphere instanced for every marker.
type sphereMesh struct {
	buffers
	count int32
}

func newSphereMesh(vertices []float32, indices []uint32) *sphereMesh {
	m := &sphereMesh{count: int32(len(indices))}
	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)
	m.arrayBuffer(vertices)
	attrib(0, 6, 0)
	attrib(1, 6, 3)
	m.elementBuffer(indices)
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return m
}

func (m *sphereMesh) draw() {
	gl.BindVertexArray(m.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, m.count, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
}

// lineMesh draws (position, colour) vertex pairs as GL_LINES.
type lineMesh struct {
	buffers
	count int32
}

func newLineMesh(vertices []float32) *lineMesh {
	m := &lineMesh{count: int32(len(vertices) / 6)}
	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)
	m.arrayBuffer(vertices)
	attrib(0, 6, 0)
	attrib(1, 6, 3)
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return m
}

func (m *lineMesh) draw() {
	gl.BindVertexArray(m.vao)
	gl.DrawArrays(gl.LINES, 0, m.count)
	gl.BindVertexArray(0)
}
