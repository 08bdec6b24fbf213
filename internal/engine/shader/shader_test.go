package shader

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinHasEveryProgram(t *testing.T) {
	srcs, err := Builtin().LoadAll(Names)
	require.NoError(t, err)
	for _, name := range Names {
		src := srcs[name]
		assert.Equal(t, name, src.Name)
		assert.Contains(t, src.Vertex, "#version 330 core")
		assert.Contains(t, src.Fragment, "FragColor")
	}
}

func TestDirLoader(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "points.vert"), []byte("void main() {}"), 0644))

	_, err := Dir(dir).Load(Points)
	assert.ErrorIs(t, err, ErrSourceMissing, "fragment stage is missing")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "points.frag"), []byte("  \n"), 0644))
	_, err = Dir(dir).Load(Points)
	assert.ErrorIs(t, err, ErrSourceMissing, "empty stage counts as missing")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "points.frag"), []byte("void main() {}"), 0644))
	src, err := Dir(dir).Load(Points)
	require.NoError(t, err)
	assert.Equal(t, "void main() {}", src.Fragment)

	_, err = Dir(dir).LoadAll(Names)
	assert.ErrorIs(t, err, ErrSourceMissing)
}

func TestNewLoader(t *testing.T) {
	assert.Equal(t, "builtin", NewLoader("").Location())
	assert.Equal(t, "/some/dir", NewLoader("/some/dir").Location())
}

func TestProgramName(t *testing.T) {
	assert.Equal(t, "points", ProgramName("/a/b/points.vert"))
	assert.Equal(t, "marker", ProgramName("marker.frag"))
	assert.Equal(t, "", ProgramName("notes.txt"))
	assert.Equal(t, "", ProgramName("points.vert.swp"))
}

func TestWatcherReportsChanges(t *testing.T) {
	dir := t.TempDir()
	w, err := Watch(dir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "lines.frag"), []byte("x"), 0644))

	var got []string
	require.Eventually(t, func() bool {
		got = append(got, w.Drain()...)
		return len(got) > 0
	}, 5*time.Second, 10*time.Millisecond, "no change reported")
	assert.Equal(t, []string{Lines}, got)
}

func TestWatchMissingDir(t *testing.T) {
	_, err := Watch(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestDrainDeduplicates(t *testing.T) {
	w := &Watcher{changes: make(chan string, 8)}
	w.changes <- Points
	w.changes <- Marker
	w.changes <- Points

	assert.Equal(t, []string{Points, Marker}, w.Drain())
	assert.Empty(t, w.Drain())
}
