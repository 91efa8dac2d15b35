// File: methods_dump.go
// Role: Human-readable listing of vertices and their edges.
//
// The format is a debugging aid with no compatibility guarantee:
//
//	VERTEX 1: A
//		EDGE 1: B
//	VERTEX 2: B
//		EDGE 1: A
//
// Vertices follow slot order, edges follow ascending identifier order, and
// values are printed with %v.

package core

import (
	"fmt"
	"io"
	"strings"
)

// WriteTo writes the listing of g to w. It implements io.WriterTo.
func (g *Graph[T]) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	var vi int
	g.vertices.forEach(func(v *vertex[T]) {
		vi++
		fmt.Fprintf(cw, "VERTEX %d: %v\n", vi, v.value)
		for ei, nid := range v.edges {
			if nbr, ok := g.vertices.lookupByID(nid); ok {
				fmt.Fprintf(cw, "\tEDGE %d: %v\n", ei+1, nbr.value)
			}
		}
	})

	return cw.n, cw.err
}

// String returns the same listing as WriteTo.
func (g *Graph[T]) String() string {
	var sb strings.Builder
	_, _ = g.WriteTo(&sb)

	return sb.String()
}

// countingWriter tallies bytes and keeps the first write error.
type countingWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (c *countingWriter) Write(p []byte) (int, error) {
	if c.err != nil {
		return 0, c.err
	}
	n, err := c.w.Write(p)
	c.n += int64(n)
	c.err = err

	return n, err
}
