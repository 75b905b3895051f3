// Package script parses and replays editor sessions written as one command
// per line. Coordinates are world x and z on the ground plane; the runner
// turns them into screen positions and feeds them through the editor's
// input router like a front end would.
package script

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Command is one parsed script line
type Command struct {
	Line int
	Name string
	Args []float64
}

func (c Command) String() string {
	parts := []string{c.Name}
	for _, a := range c.Args {
		parts = append(parts, strconv.FormatFloat(a, 'g', -1, 64))
	}
	return strings.Join(parts, " ")
}

// arity lists the known commands and their number of numeric arguments
var arity = map[string]int{
	"draw":     0,
	"click":    2,
	"undo":     0,
	"redo":     0,
	"close":    0,
	"extrude":  0,
	"height":   1,
	"cancel":   0,
	"move":     0,
	"select":   2,
	"drag":     4,
	"deselect": 0,
	"delete":   0,
	"clear":    0,
}

// Parse reads a script. Blank lines and lines starting with # are skipped.
func Parse(r io.Reader) ([]Command, error) {
	var cmds []Command
	scanner := bufio.NewScanner(r)
	line := 0

	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if i := strings.Index(text, "#"); i >= 0 {
			text = strings.TrimSpace(text[:i])
		}
		if text == "" {
			continue
		}

		fields := strings.Fields(text)
		name := strings.ToLower(fields[0])
		want, ok := arity[name]
		if !ok {
			return nil, fmt.Errorf("line %d: unknown command %q", line, fields[0])
		}
		if len(fields)-1 != want {
			return nil, fmt.Errorf("line %d: %s takes %d arguments, got %d", line, name, want, len(fields)-1)
		}

		cmd := Command{Line: line, Name: name, Args: make([]float64, 0, want)}
		for _, f := range fields[1:] {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid number %q: %w", line, f, err)
			}
			cmd.Args = append(cmd.Args, v)
		}
		cmds = append(cmds, cmd)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	return cmds, nil
}
