package stl

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/philipparndt/gosketch/pkg/geometry"
)

// headerPrefix marks binary files written by WriteBinary
const headerPrefix = "gosketch "

// facetRecord is the 50 byte layout of one binary STL triangle
type facetRecord struct {
	Normal, V1, V2, V3 [3]float32
	Attribute          uint16
}

func (r facetRecord) triangle() geometry.Triangle {
	v := func(f [3]float32) geometry.Vector3 {
		return geometry.NewVector3(float64(f[0]), float64(f[1]), float64(f[2]))
	}
	return geometry.NewTriangle(v(r.Normal), v(r.V1), v(r.V2), v(r.V3))
}

// Parse reads an ASCII or binary STL file
func Parse(filename string) (*Model, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return ParseReader(file)
}

// ParseReader reads STL data from r. Binary files may start with "solid" as
// well, so ASCII is only assumed when a facet keyword follows.
func ParseReader(r io.Reader) (*Model, error) {
	br := bufio.NewReader(r)

	probe, err := br.Peek(512)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
		return nil, fmt.Errorf("failed to read file header: %w", err)
	}
	if len(probe) == 0 {
		return nil, fmt.Errorf("empty STL data")
	}

	if bytes.HasPrefix(probe, []byte("solid")) &&
		(bytes.Contains(probe, []byte("facet")) || bytes.Contains(probe, []byte("endsolid"))) {
		return parseASCII(br)
	}
	return parseBinary(br)
}

func parseASCII(reader io.Reader) (*Model, error) {
	model := NewModel("")
	scanner := bufio.NewScanner(reader)

	var normal geometry.Vector3
	var vertices []geometry.Vector3
	line := 0

	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "solid":
			model.Name = strings.Join(fields[1:], " ")
		case "facet":
			if len(fields) != 5 || fields[1] != "normal" {
				return nil, fmt.Errorf("line %d: malformed facet", line)
			}
			n, err := parseVector(fields[2:])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			normal = n
			vertices = vertices[:0]
		case "vertex":
			if len(fields) != 4 {
				return nil, fmt.Errorf("line %d: malformed vertex", line)
			}
			v, err := parseVector(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			vertices = append(vertices, v)
		case "endfacet":
			if len(vertices) != 3 {
				return nil, fmt.Errorf("line %d: facet has %d vertices", line, len(vertices))
			}
			model.AddTriangle(geometry.NewTriangle(normal, vertices[0], vertices[1], vertices[2]))
			vertices = vertices[:0]
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read ASCII STL: %w", err)
	}
	return model, nil
}

func parseVector(fields []string) (geometry.Vector3, error) {
	var c [3]float64
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return geometry.Vector3{}, fmt.Errorf("invalid number %q", f)
		}
		c[i] = v
	}
	return geometry.NewVector3(c[0], c[1], c[2]), nil
}

func parseBinary(reader io.Reader) (*Model, error) {
	header := make([]byte, 80)
	if _, err := io.ReadFull(reader, header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	name := strings.TrimRight(string(header), "\x00 ")
	model := NewModel(strings.TrimPrefix(name, headerPrefix))

	var count uint32
	if err := binary.Read(reader, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("failed to read triangle count: %w", err)
	}

	model.Triangles = make([]geometry.Triangle, 0, min(count, 1<<20))
	for i := uint32(0); i < count; i++ {
		var record facetRecord
		if err := binary.Read(reader, binary.LittleEndian, &record); err != nil {
			return nil, fmt.Errorf("failed to read triangle %d of %d: %w", i, count, err)
		}
		model.AddTriangle(record.triangle())
	}
	return model, nil
}
