// Package analysis measures triangle meshes.
package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/philipparndt/gosketch/pkg/geometry"
	"github.com/philipparndt/gosketch/pkg/stl"
)

// Edge is an undirected mesh edge with the number of facets using it
type Edge struct {
	Start, End geometry.Vector3
	Length     float64
	Facets     int
}

// Report contains the measurements of a mesh
type Report struct {
	BoundingBox   geometry.BoundingBox
	Dimensions    geometry.Vector3
	Volume        float64
	SurfaceArea   float64
	TriangleCount int
	EdgeCount     int
	MinEdgeLength float64
	MaxEdgeLength float64
	AvgEdgeLength float64
	// OpenEdges counts edges not shared by exactly two facets
	OpenEdges int
	Edges     []Edge
}

// Watertight reports whether every edge joins exactly two facets
func (r *Report) Watertight() bool {
	return r.TriangleCount > 0 && r.OpenEdges == 0
}

type edgeKey [2]geometry.Vector3

func keyOf(a, b geometry.Vector3) edgeKey {
	if a.X < b.X || (a.X == b.X && (a.Y < b.Y || (a.Y == b.Y && a.Z < b.Z))) {
		return edgeKey{a, b}
	}
	return edgeKey{b, a}
}

// Analyze measures a mesh
func Analyze(model *stl.Model) *Report {
	report := &Report{
		BoundingBox:   model.BoundingBox(),
		SurfaceArea:   model.SurfaceArea(),
		Volume:        model.Volume(),
		TriangleCount: model.TriangleCount(),
	}
	report.Dimensions = report.BoundingBox.Size()

	// Count facets per undirected edge
	index := make(map[edgeKey]int)
	for _, triangle := range model.Triangles {
		vertices := [3]geometry.Vector3{triangle.V1, triangle.V2, triangle.V3}
		for i := 0; i < 3; i++ {
			key := keyOf(vertices[i], vertices[(i+1)%3])
			if idx, ok := index[key]; ok {
				report.Edges[idx].Facets++
				continue
			}
			index[key] = len(report.Edges)
			report.Edges = append(report.Edges, Edge{
				Start:  key[0],
				End:    key[1],
				Length: key[0].Distance(key[1]),
				Facets: 1,
			})
		}
	}

	report.EdgeCount = len(report.Edges)
	if report.EdgeCount == 0 {
		return report
	}

	report.MinEdgeLength = math.MaxFloat64
	total := 0.0
	for _, edge := range report.Edges {
		total += edge.Length
		report.MinEdgeLength = math.Min(report.MinEdgeLength, edge.Length)
		report.MaxEdgeLength = math.Max(report.MaxEdgeLength, edge.Length)
		if edge.Facets != 2 {
			report.OpenEdges++
		}
	}
	report.AvgEdgeLength = total / float64(report.EdgeCount)
	return report
}

// LongestEdges returns the n longest edges
func (r *Report) LongestEdges(n int) []Edge {
	edges := make([]Edge, len(r.Edges))
	copy(edges, r.Edges)
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Length > edges[j].Length
	})
	if n > len(edges) {
		n = len(edges)
	}
	return edges[:n]
}

// FormatMeasurement formats a measurement with appropriate units
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "units"
	}
	return fmt.Sprintf("%.6f %s", value, unit)
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
