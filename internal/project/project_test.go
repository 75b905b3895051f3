package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/philipparndt/gosketch/internal/editor"
	"github.com/philipparndt/gosketch/internal/headless"
	"github.com/philipparndt/gosketch/pkg/geometry"
	"github.com/philipparndt/gosketch/pkg/stl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(size float64) []geometry.Vector3 {
	return []geometry.Vector3{
		geometry.GroundPoint(0, 0),
		geometry.GroundPoint(size, 0),
		geometry.GroundPoint(size, size),
		geometry.GroundPoint(0, size),
	}
}

func sampleEditor(t *testing.T) *editor.Editor {
	t.Helper()
	e := editor.New(headless.New(50), editor.Options{})
	_, err := e.AddSolid(square(1), 2, geometry.NewVector3(0, 2, 0))
	require.NoError(t, err)
	_, err = e.AddSolid(square(2), 1, geometry.NewVector3(5, 1, -3))
	require.NoError(t, err)
	return e
}

func TestSaveLoadRestore(t *testing.T) {
	e := sampleEditor(t)
	path := filepath.Join(t.TempDir(), "scene.json")
	require.NoError(t, Save(path, e.Solids()))

	f, err := Load(path)
	require.NoError(t, err)
	require.Len(t, f.Solids, 2)
	assert.Equal(t, 2.0, f.Solids[0].Height)
	assert.Equal(t, Vector3Data{X: 5, Y: 1, Z: -3}, f.Solids[1].Position)

	fresh := editor.New(headless.New(50), editor.Options{})
	restored, err := f.Restore(fresh)
	require.NoError(t, err)
	require.Len(t, restored, 2)
	assert.Equal(t, geometry.NewVector3(5, 1, -3), restored[1].Position)
	assert.InDelta(t, 4.0, restored[1].Mesh.Volume(), 1e-9)
	assert.Len(t, fresh.Solids(), 2)
}

func TestLoadRejectsUnknownVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"version":"9","solids":[]}`), 0o644))

	_, err := Load(path)
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestRestoreReportsBrokenSolid(t *testing.T) {
	f := File{Version: Version, Solids: []SolidData{{Name: "flat", Height: 0, Outline: []Vector3Data{{}, {X: 1}, {Z: 1}}}}}
	_, err := f.Restore(editor.New(headless.New(10), editor.Options{}))
	assert.ErrorIs(t, err, editor.ErrInvalidHeight)
}

func TestExportSTL(t *testing.T) {
	e := sampleEditor(t)
	path := filepath.Join(t.TempDir(), "out.stl")
	require.NoError(t, ExportSTL(path, e.Solids(), stl.FormatBinary))

	model, err := stl.Parse(path)
	require.NoError(t, err)
	assert.Equal(t, 24, model.TriangleCount())
	assert.InDelta(t, 2.0+4.0, model.Volume(), 1e-4)

	bbox := model.BoundingBox()
	assert.InDelta(t, 0.0, bbox.Min.Y, 1e-6)
	assert.InDelta(t, 7.0, bbox.Max.X, 1e-6)

	assert.Error(t, ExportSTL(path, nil, stl.FormatBinary))
}
