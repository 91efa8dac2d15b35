package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ugraph/builder"
	"github.com/katalvlaran/ugraph/core"
)

var (
	// ErrBadEdge is returned for an --edge value that is not of the form A-B.
	ErrBadEdge = errors.New("cli: malformed edge")

	// ErrUnknownShape is returned for an unrecognised --shape name.
	ErrUnknownShape = errors.New("cli: unknown shape")

	// ErrUnknownVertex is returned when a command argument names an absent vertex.
	ErrUnknownVertex = errors.New("cli: unknown vertex")
)

// Shape names accepted by --shape.
const (
	shapePath     = "path"
	shapeCycle    = "cycle"
	shapeStar     = "star"
	shapeComplete = "complete"
	shapeGrid     = "grid"
)

// graphSource collects the flags that describe the input graph.
type graphSource struct {
	edges    []string
	vertices []string
	shape    string
	size     int
	cols     int
}

// register binds the graph flags to cmd.
func (s *graphSource) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringArrayVarP(&s.edges, "edge", "e", nil, "undirected edge A-B (repeatable; endpoints are created)")
	f.StringArrayVar(&s.vertices, "vertex", nil, "isolated vertex (repeatable)")
	f.StringVar(&s.shape, "shape", "", "generated shape: path|cycle|star|complete|grid")
	f.IntVarP(&s.size, "size", "n", 4, "shape size (rows for grid)")
	f.IntVar(&s.cols, "cols", 0, "grid columns (defaults to --size)")
}

// build constructs the graph. Shape vertices are labelled A, B, ..., Z, AA, ...
// and come first; then every --edge in flag order (creating its endpoints),
// then every --vertex.
func (s *graphSource) build() (*core.Graph[string], error) {
	g := core.NewGraph[string]()

	if s.shape != "" {
		cons, err := s.constructor()
		if err != nil {
			return nil, err
		}
		if err := builder.Apply(g, builder.ExcelColumnIDs, cons); err != nil {
			return nil, err
		}
	}

	for _, raw := range s.edges {
		a, b, err := parseEdge(raw)
		if err != nil {
			return nil, err
		}
		g.AddVertex(a)
		g.AddVertex(b)
		g.PutEdge(a, b)
	}
	for _, v := range s.vertices {
		g.AddVertex(v)
	}

	return g, nil
}

func (s *graphSource) constructor() (builder.Constructor[string], error) {
	switch strings.ToLower(s.shape) {
	case shapePath:
		return builder.Path[string](s.size), nil
	case shapeCycle:
		return builder.Cycle[string](s.size), nil
	case shapeStar:
		return builder.Star[string](s.size), nil
	case shapeComplete:
		return builder.Complete[string](s.size), nil
	case shapeGrid:
		cols := s.cols
		if cols <= 0 {
			cols = s.size
		}
		return builder.Grid[string](s.size, cols), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownShape, s.shape)
	}
}

// parseEdge splits "A-B" into its endpoints. "A-A" is a self-loop.
func parseEdge(raw string) (string, string, error) {
	a, b, ok := strings.Cut(raw, "-")
	a, b = strings.TrimSpace(a), strings.TrimSpace(b)
	if !ok || a == "" || b == "" {
		return "", "", fmt.Errorf("%w: %q", ErrBadEdge, raw)
	}
	return a, b, nil
}

// requireVertex fails with ErrUnknownVertex when v is absent from g.
func requireVertex(g *core.Graph[string], v string) error {
	if !g.ContainsVertex(v) {
		return fmt.Errorf("%w: %q", ErrUnknownVertex, v)
	}
	return nil
}
