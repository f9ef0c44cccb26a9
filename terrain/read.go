package terrain

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/ShadyMccoy/DarkPhoenix-sub000/chunk"
)

// Read parses a multi-chunk text map. Each chunk starts with a "[NAME]"
// header line followed by exactly topo.Size rows of glyphs; blank lines are
// ignored.
//
//	[E0S0]
//	#####
//	#...#
//	...
func Read(r io.Reader, topo chunk.Topology) (*Map, error) {
	m := NewMap(topo)
	sc := bufio.NewScanner(r)
	var (
		name chunk.Name
		rows []string
		line int
	)
	flush := func() error {
		if name == "" {
			return nil
		}
		if err := m.FromRows(name, rows); err != nil {
			return fmt.Errorf("chunk %s: %w", name, err)
		}
		name, rows = "", nil
		return nil
	}
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		switch {
		case text == "":
			continue
		case strings.HasPrefix(text, "[") && strings.HasSuffix(text, "]"):
			if err := flush(); err != nil {
				return nil, err
			}
			name = chunk.Name(text[1 : len(text)-1])
			if !name.Valid() {
				return nil, fmt.Errorf("%w: line %d: bad chunk name %q", ErrBadFixture, line, name)
			}
		case name == "":
			return nil, fmt.Errorf("%w: line %d: rows before a chunk header", ErrBadFixture, line)
		default:
			rows = append(rows, text)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return m, nil
}

// Write emits m in the format accepted by Read, chunks in sorted order.
func (m *Map) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, name := range m.Names() {
		fmt.Fprintf(bw, "[%s]\n", name)
		for _, row := range m.Rows(name) {
			bw.WriteString(row)
			bw.WriteByte('\n')
		}
	}
	return bw.Flush()
}
