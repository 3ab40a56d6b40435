package graphio

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/longpath/core"
)

// Sentinel errors for parsing and rendering.
var (
	ErrBadHeader       = errors.New("graphio: bad header")
	ErrBadEdgeLine     = errors.New("graphio: bad edge line")
	ErrTooManyVertices = errors.New("graphio: more vertex labels than declared")
	ErrTruncatedInput  = errors.New("graphio: fewer edge lines than declared")
	ErrUnknownLabel    = errors.New("graphio: unknown vertex label")
	ErrUnknownFormat   = errors.New("graphio: unknown output format")
)

// Format selects how results are rendered.
type Format string

// Supported output formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists the supported formats in display order.
func Formats() []Format {
	return []Format{FormatText, FormatJSON, FormatYAML}
}

// ParseFormat resolves a format name case-insensitively. "yml" is accepted
// for YAML.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}

	return "", fmt.Errorf("%q: %w", s, ErrUnknownFormat)
}

// Input is a parsed edge-list: the graph, its labels and the header as declared.
type Input struct {
	Graph  *core.Graph
	Labels *Labels

	// DeclaredVertices and DeclaredEdges echo the header.
	DeclaredVertices int
	DeclaredEdges    int
}
