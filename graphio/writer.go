package graphio

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/longpath/core"
	"github.com/katalvlaran/longpath/longestpath"
)

// Write emits g as an edge-list that Read parses back into the same graph:
// header "n m", then one "u v w" line per edge in insertion order.
// names labels the vertices; nil, or ids without a label, render as decimal
// ids. Labels must be whitespace-free for the round trip to hold.
func Write(w io.Writer, g *core.Graph, names *Labels) error {
	bw := bufio.NewWriter(w)
	if names == nil {
		names = NewLabels(0)
	}
	label := names.Label

	edges := g.Edges()
	fmt.Fprintf(bw, "%d %d\n", g.Order(), len(edges))
	for _, e := range edges {
		fmt.Fprintf(bw, "%s %s %s\n", label(e.From), label(e.To), FormatWeight(e.Weight, -1))
	}

	return bw.Flush()
}

// FormatWeight renders a weight with a fixed number of decimals, or with the
// shortest exact representation when precision < 0.
func FormatWeight(w float64, precision int) string {
	if precision < 0 {
		return strconv.FormatFloat(w, 'g', -1, 64)
	}

	return strconv.FormatFloat(w, 'f', precision, 64)
}

// Report is the rendered form of a solver result.
type Report struct {
	RunID     string   `json:"run_id,omitempty" yaml:"run_id,omitempty"`
	Method    string   `json:"method" yaml:"method"`
	Weight    float64  `json:"weight" yaml:"weight"`
	Path      []string `json:"path" yaml:"path"`
	Vertices  []int    `json:"vertices" yaml:"vertices"`
	Restarts  int      `json:"restarts" yaml:"restarts"`
	Truncated bool     `json:"truncated" yaml:"truncated"`
	ElapsedMS float64  `json:"elapsed_ms" yaml:"elapsed_ms"`
}

// NewReport labels res with names. A nil names renders decimal ids.
func NewReport(res longestpath.Result, names *Labels) Report {
	if names == nil {
		names = NewLabels(0)
	}
	vertices := res.Vertices
	if vertices == nil {
		vertices = []int{}
	}

	return Report{
		Method:    res.Method.String(),
		Weight:    res.Weight,
		Path:      names.Path(vertices),
		Vertices:  vertices,
		Restarts:  res.Restarts,
		Truncated: res.Truncated,
		ElapsedMS: float64(res.Elapsed) / float64(time.Millisecond),
	}
}

// WriteResult renders rep in the given format. The text form is two lines:
// the weight (see FormatWeight for precision) and the path's labels
// separated by single spaces.
func WriteResult(w io.Writer, format Format, precision int, rep Report) error {
	if format == FormatText {
		_, err := fmt.Fprintf(w, "%s\n%s\n", FormatWeight(rep.Weight, precision), strings.Join(rep.Path, " "))
		return err
	}

	return Encode(w, format, rep)
}

// Encode writes v as indented JSON or as YAML. FormatText is not a
// structured encoding and yields ErrUnknownFormat.
func Encode(w io.Writer, format Format, v any) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}

	return fmt.Errorf("encode as %q: %w", format, ErrUnknownFormat)
}
