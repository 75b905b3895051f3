package stl

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/philipparndt/gosketch/pkg/geometry"
)

// Format selects the STL encoding used when writing
type Format int

const (
	FormatBinary Format = iota
	FormatASCII
)

// ParseFormat converts a flag value ("binary" or "ascii") to a Format
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "binary", "bin":
		return FormatBinary, nil
	case "ascii", "text":
		return FormatASCII, nil
	default:
		return FormatBinary, fmt.Errorf("unknown STL format %q (expected binary or ascii)", s)
	}
}

// Save writes the model to filename in the given format
func Save(model *Model, filename string, format Format) error {
	if dir := filepath.Dir(filename); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	w := bufio.NewWriter(file)
	if format == FormatASCII {
		err = WriteASCII(w, model)
	} else {
		err = WriteBinary(w, model)
	}
	if err != nil {
		file.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		file.Close()
		return fmt.Errorf("failed to flush STL data: %w", err)
	}
	return file.Close()
}

// WriteBinary writes the model in binary STL format
func WriteBinary(w io.Writer, model *Model) error {
	// The header must not start with "solid" or readers mistake it for ASCII
	header := make([]byte, 80)
	copy(header, headerPrefix+model.Name)
	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	if err := binary.Write(w, binary.LittleEndian, uint32(len(model.Triangles))); err != nil {
		return fmt.Errorf("failed to write triangle count: %w", err)
	}

	for i, triangle := range model.Triangles {
		record := facetRecord{
			Normal: toFloat32(facetNormal(triangle)),
			V1:     toFloat32(triangle.V1),
			V2:     toFloat32(triangle.V2),
			V3:     toFloat32(triangle.V3),
		}
		if err := binary.Write(w, binary.LittleEndian, &record); err != nil {
			return fmt.Errorf("failed to write triangle %d: %w", i, err)
		}
	}
	return nil
}

// WriteASCII writes the model in ASCII STL format
func WriteASCII(w io.Writer, model *Model) error {
	name := model.Name
	if name == "" {
		name = "gosketch"
	}

	if _, err := fmt.Fprintf(w, "solid %s\n", name); err != nil {
		return fmt.Errorf("failed to write solid header: %w", err)
	}
	for i, triangle := range model.Triangles {
		n := facetNormal(triangle)
		_, err := fmt.Fprintf(w,
			"  facet normal %e %e %e\n    outer loop\n      vertex %e %e %e\n      vertex %e %e %e\n      vertex %e %e %e\n    endloop\n  endfacet\n",
			n.X, n.Y, n.Z,
			triangle.V1.X, triangle.V1.Y, triangle.V1.Z,
			triangle.V2.X, triangle.V2.Y, triangle.V2.Z,
			triangle.V3.X, triangle.V3.Y, triangle.V3.Z,
		)
		if err != nil {
			return fmt.Errorf("failed to write triangle %d: %w", i, err)
		}
	}
	if _, err := fmt.Fprintf(w, "endsolid %s\n", name); err != nil {
		return fmt.Errorf("failed to write solid footer: %w", err)
	}
	return nil
}

// facetNormal prefers the stored normal and falls back to the winding normal
func facetNormal(t geometry.Triangle) geometry.Vector3 {
	if t.Normal.Length() > 0 {
		return t.Normal
	}
	return t.CalculateNormal()
}

func toFloat32(v geometry.Vector3) [3]float32 {
	return [3]float32{float32(v.X), float32(v.Y), float32(v.Z)}
}
