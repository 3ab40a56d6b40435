package graphio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/longpath/core"
)

// maxLineBytes bounds a single input line.
const maxLineBytes = 1 << 20

// MaxVertices is the largest vertex count a header may declare.
const MaxVertices = 1 << 22

// Read parses an edge-list from r.
//
// Steps:
//  1. The first non-blank line must be "n m" with 0 <= n <= MaxVertices
//     and m >= 0.
//  2. The next m non-blank lines must each be "u v w". Labels get ids in
//     first-appearance order, at most n of them.
//  3. Edges are inserted in input order; a repeated pair overwrites the
//     weight (last write wins).
//  4. The graph always has n vertices, whether or not every id appears.
//     Vertices beyond the last labeled one are added after the edges are
//     read, so a truncated input fails before they are allocated.
//
// Complexity: O(n + m) plus the reader's I/O.
func Read(r io.Reader) (*Input, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	line := 0

	// next returns the fields of the next non-blank line.
	next := func() ([]string, bool) {
		for sc.Scan() {
			line++
			if fields := strings.Fields(sc.Text()); len(fields) > 0 {
				return fields, true
			}
		}
		return nil, false
	}

	// 1) Header
	header, ok := next()
	if !ok {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("graphio: read: %w", err)
		}
		return nil, fmt.Errorf("empty input: %w", ErrBadHeader)
	}
	n, m, err := parseHeader(header)
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", line, err)
	}

	in := &Input{
		Graph:            core.NewGraph(0),
		Labels:           NewLabels(n),
		DeclaredVertices: n,
		DeclaredEdges:    m,
	}

	// 2) Edge lines
	for i := 0; i < m; i++ {
		fields, ok := next()
		if !ok {
			if err := sc.Err(); err != nil {
				return nil, fmt.Errorf("graphio: read: %w", err)
			}
			return nil, fmt.Errorf("got %d of %d edge lines: %w", i, m, ErrTruncatedInput)
		}
		if err := in.addEdge(fields); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
	}
	in.Graph.Grow(n)

	return in, nil
}

func parseHeader(fields []string) (n, m int, err error) {
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("want \"n m\", got %d fields: %w", len(fields), ErrBadHeader)
	}
	n, errN := strconv.Atoi(fields[0])
	m, errM := strconv.Atoi(fields[1])
	if errN != nil || errM != nil || n < 0 || m < 0 {
		return 0, 0, fmt.Errorf("want two non-negative integers, got %q %q: %w",
			fields[0], fields[1], ErrBadHeader)
	}
	if n > MaxVertices {
		return 0, 0, fmt.Errorf("%d vertices exceeds the limit of %d: %w", n, MaxVertices, ErrBadHeader)
	}

	return n, m, nil
}

func (in *Input) addEdge(fields []string) error {
	if len(fields) != 3 {
		return fmt.Errorf("want \"u v w\", got %d fields: %w", len(fields), ErrBadEdgeLine)
	}
	w, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return fmt.Errorf("weight %q: %w", fields[2], ErrBadEdgeLine)
	}
	u, err := in.Labels.ID(fields[0])
	if err != nil {
		return err
	}
	v, err := in.Labels.ID(fields[1])
	if err != nil {
		return err
	}
	if err := in.Graph.InsertEdge(u, v, w); err != nil {
		return fmt.Errorf("%s %s: %w: %w", fields[0], fields[1], ErrBadEdgeLine, err)
	}

	return nil
}
