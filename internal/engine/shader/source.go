// Package shader loads GLSL sources from the built-in set or a directory on
// disk, and watches that directory for edits.
package shader

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrSourceMissing is returned when a shader stage file cannot be found.
var ErrSourceMissing = errors.New("shader source missing")

// Program names the renderer needs.
const (
	Points = "points"
	Marker = "marker"
	Lines  = "lines"
)

// Names lists every program in load order.
var Names = []string{Points, Marker, Lines}

const (
	vertexExt   = ".vert"
	fragmentExt = ".frag"
)

//go:embed glsl/*.vert glsl/*.frag
var builtin embed.FS

// Source is the GLSL text of one program.
type Source struct {
	Name     string
	Vertex   string
	Fragment string
}

// Loader reads <name>.vert and <name>.frag pairs from a file system.
type Loader struct {
	fsys fs.FS
	dir  string
}

// Builtin returns a loader over the sources compiled into the binary.
func Builtin() *Loader {
	sub, _ := fs.Sub(builtin, "glsl")
	return &Loader{fsys: sub, dir: "builtin"}
}

// Dir returns a loader over a directory on disk.
func Dir(dir string) *Loader {
	return &Loader{fsys: os.DirFS(dir), dir: dir}
}

// NewLoader returns Dir(dir), or Builtin when dir is empty.
func NewLoader(dir string) *Loader {
	if dir == "" {
		return Builtin()
	}
	return Dir(dir)
}

// Location describes where sources are read from.
func (l *Loader) Location() string {
	return l.dir
}

// Load reads the named program.
func (l *Loader) Load(name string) (Source, error) {
	vert, err := l.read(name + vertexExt)
	if err != nil {
		return Source{}, err
	}
	frag, err := l.read(name + fragmentExt)
	if err != nil {
		return Source{}, err
	}
	return Source{Name: name, Vertex: vert, Fragment: frag}, nil
}

// LoadAll reads every program in names. It stops at the first failure.
func (l *Loader) LoadAll(names []string) (map[string]Source, error) {
	out := make(map[string]Source, len(names))
	for _, name := range names {
		src, err := l.Load(name)
		if err != nil {
			return nil, err
		}
		out[name] = src
	}
	return out, nil
}

func (l *Loader) read(file string) (string, error) {
	data, err := fs.ReadFile(l.fsys, file)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", ErrSourceMissing, filepath.Join(l.dir, file))
	}
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", filepath.Join(l.dir, file), err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return "", fmt.Errorf("%w: %s is empty", ErrSourceMissing, filepath.Join(l.dir, file))
	}
	return string(data), nil
}

// ProgramName maps a shader file path to its program name, or "" when the
// file is not a shader stage.
func ProgramName(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	if ext != vertexExt && ext != fragmentExt {
		return ""
	}
	return strings.TrimSuffix(base, ext)
}
