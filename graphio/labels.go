package graphio

import (
	"fmt"
	"strconv"
)

// Labels is a bijection between vertex labels and ids, assigned in order of
// first appearance. Not safe for concurrent mutation.
type Labels struct {
	names []string
	ids   map[string]int
	limit int
}

// maxLabelHint caps the map preallocation requested by NewLabels.
const maxLabelHint = 1 << 12

// NewLabels returns an empty table accepting at most limit labels;
// limit < 0 means unbounded.
func NewLabels(limit int) *Labels {
	hint := min(max(limit, 0), maxLabelHint)

	return &Labels{ids: make(map[string]int, hint), limit: limit}
}

// LabelsFrom builds an unbounded table from names, id i = names[i], e.g. to
// label a generated graph for Write. A repeated name keeps its first id.
func LabelsFrom(names []string) *Labels {
	l := NewLabels(-1)
	for _, name := range names {
		_, _ = l.ID(name) // unbounded: never fails
	}

	return l
}

// ID returns label's id, assigning the next free id on first sight.
// Returns ErrTooManyVertices when a new label would exceed the limit.
func (l *Labels) ID(label string) (int, error) {
	if id, ok := l.ids[label]; ok {
		return id, nil
	}
	if l.limit >= 0 && len(l.names) >= l.limit {
		return 0, fmt.Errorf("label %q would be vertex #%d of %d: %w",
			label, len(l.names)+1, l.limit, ErrTooManyVertices)
	}
	id := len(l.names)
	l.names = append(l.names, label)
	l.ids[label] = id

	return id, nil
}

// Lookup returns label's id without assigning one.
func (l *Labels) Lookup(label string) (int, bool) {
	id, ok := l.ids[label]
	return id, ok
}

// Label returns the label of id. Ids without a label (isolated vertices
// declared by the header, or out of range) render as their decimal id.
func (l *Labels) Label(id int) string {
	if id >= 0 && id < len(l.names) {
		return l.names[id]
	}

	return strconv.Itoa(id)
}

// Len returns the number of assigned labels.
func (l *Labels) Len() int { return len(l.names) }

// Resolve maps labels to ids, failing with ErrUnknownLabel on the first
// label not in the table.
func (l *Labels) Resolve(labels []string) ([]int, error) {
	ids := make([]int, len(labels))
	for i, label := range labels {
		id, ok := l.ids[label]
		if !ok {
			return nil, fmt.Errorf("%q: %w", label, ErrUnknownLabel)
		}
		ids[i] = id
	}

	return ids, nil
}

// Path renders vertex ids as labels.
func (l *Labels) Path(vertices []int) []string {
	out := make([]string, len(vertices))
	for i, v := range vertices {
		out[i] = l.Label(v)
	}

	return out
}
