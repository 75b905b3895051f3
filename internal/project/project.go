// Package project saves and restores the solids of an editing session.
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/philipparndt/gosketch/internal/editor"
	"github.com/philipparndt/gosketch/internal/logx"
	"github.com/philipparndt/gosketch/pkg/geometry"
	"github.com/philipparndt/gosketch/pkg/stl"
)

// Version is written to every project file
const Version = "1.0"

// File is the JSON structure of a saved project
type File struct {
	Version string      `json:"version"`
	Solids  []SolidData `json:"solids"`
}

// SolidData represents a saved solid. The mesh is rebuilt from the outline.
type SolidData struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Outline  []Vector3Data `json:"outline"`
	Height   float64       `json:"height"`
	Position Vector3Data   `json:"position"`
}

// Vector3Data represents a 3D vector for JSON serialization
type Vector3Data struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

func toData(v geometry.Vector3) Vector3Data {
	return Vector3Data{X: v.X, Y: v.Y, Z: v.Z}
}

func (d Vector3Data) vector() geometry.Vector3 {
	return geometry.NewVector3(d.X, d.Y, d.Z)
}

// FromSolids snapshots the solids into a project file
func FromSolids(solids []*editor.Solid) File {
	f := File{
		Version: Version,
		Solids:  make([]SolidData, 0, len(solids)),
	}
	for _, s := range solids {
		data := SolidData{
			ID:       string(s.ID),
			Name:     s.Name,
			Outline:  make([]Vector3Data, 0, len(s.Outline)),
			Height:   s.Height,
			Position: toData(s.Position),
		}
		for _, p := range s.Outline {
			data.Outline = append(data.Outline, toData(p))
		}
		f.Solids = append(f.Solids, data)
	}
	return f
}

// Save writes the solids to a JSON project file
func Save(path string, solids []*editor.Solid) error {
	jsonData, err := json.MarshalIndent(FromSolids(solids), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal project: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create project directory: %w", err)
	}
	if err := os.WriteFile(path, jsonData, 0o644); err != nil {
		return fmt.Errorf("failed to write project file: %w", err)
	}

	logx.Logger().Info("project saved", "path", path, "solids", len(solids))
	return nil
}

// Load reads a project file
func Load(path string) (File, error) {
	jsonData, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("failed to read project file: %w", err)
	}

	var f File
	if err := json.Unmarshal(jsonData, &f); err != nil {
		return File{}, fmt.Errorf("failed to parse project file: %w", err)
	}
	if f.Version != Version {
		return File{}, fmt.Errorf("unsupported project version %q", f.Version)
	}
	return f, nil
}

// Restore extrudes every saved solid into the editor
func (f File) Restore(e *editor.Editor) ([]*editor.Solid, error) {
	restored := make([]*editor.Solid, 0, len(f.Solids))
	for i, data := range f.Solids {
		outline := make([]geometry.Vector3, len(data.Outline))
		for j, p := range data.Outline {
			outline[j] = p.vector()
		}

		solid, err := e.AddSolid(outline, data.Height, data.Position.vector())
		if err != nil {
			return restored, fmt.Errorf("failed to restore solid %d (%s): %w", i, data.Name, err)
		}
		restored = append(restored, solid)
	}
	return restored, nil
}

// Merge combines the solids into one world-space mesh
func Merge(name string, solids []*editor.Solid) *stl.Model {
	model := stl.NewModel(name)
	for _, s := range solids {
		model.Merge(s.WorldMesh())
	}
	return model
}

// ExportSTL writes all solids as a single STL file
func ExportSTL(path string, solids []*editor.Solid, format stl.Format) error {
	if len(solids) == 0 {
		return fmt.Errorf("nothing to export: no solids")
	}
	name := filepath.Base(path)
	name = name[:len(name)-len(filepath.Ext(name))]

	if err := stl.Save(Merge(name, solids), path, format); err != nil {
		return fmt.Errorf("failed to export STL: %w", err)
	}
	logx.Logger().Info("STL exported", "path", path, "solids", len(solids))
	return nil
}
