package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ugraph/bfs"
	"github.com/katalvlaran/ugraph/core"
)

// loadGraph builds the graph described by src and logs its size.
func loadGraph(cmd *cobra.Command, src *graphSource) (*core.Graph[string], error) {
	g, err := src.build()
	if err != nil {
		return nil, err
	}
	loggerFromContext(cmd.Context()).Debug("graph built",
		"vertices", g.VertexCount(), "edges", g.EdgeTotal(), "shape", src.shape)
	return g, nil
}

func (c *CLI) dumpCommand() *cobra.Command {
	var src graphSource
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print every vertex with its numbered edges",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := loadGraph(cmd, &src)
			if err != nil {
				return err
			}
			_, err = g.WriteTo(cmd.OutOrStdout())
			return err
		},
	}
	src.register(cmd)
	return cmd
}

func (c *CLI) degreeCommand() *cobra.Command {
	var src graphSource
	cmd := &cobra.Command{
		Use:   "degree <vertex>",
		Short: "Show the edge count and neighbours of a vertex",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(cmd, &src)
			if err != nil {
				return err
			}
			v := args[0]
			nbrs, ok := g.Edges(v)
			if !ok {
				return fmt.Errorf("%w: %q", ErrUnknownVertex, v)
			}
			w := cmd.OutOrStdout()
			printTitle(w, "Vertex %s", v)
			printKV(w, "degree", len(nbrs))
			printKV(w, "neighbours", renderList(nbrs))
			return nil
		},
	}
	src.register(cmd)
	return cmd
}

func (c *CLI) hubCommand() *cobra.Command {
	var src graphSource
	cmd := &cobra.Command{
		Use:   "hub",
		Short: "Show the vertex with the highest edge count",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := loadGraph(cmd, &src)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			v, nbrs, ok := g.HighestEdgeCount()
			if !ok {
				fmt.Fprintln(w, StyleDim.Render("graph is empty"))
				return nil
			}
			printTitle(w, "Hub %s", v)
			printKV(w, "degree", len(nbrs))
			printKV(w, "neighbours", renderList(nbrs))
			return nil
		},
	}
	src.register(cmd)
	return cmd
}

func (c *CLI) pathCommand() *cobra.Command {
	var src graphSource
	cmd := &cobra.Command{
		Use:   "path <from> <to>",
		Short: "Print a shortest path, listed from <to> back to <from>",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(cmd, &src)
			if err != nil {
				return err
			}
			from, to := args[0], args[1]
			for _, v := range args {
				if err := requireVertex(g, v); err != nil {
					return err
				}
			}
			w := cmd.OutOrStdout()
			path, ok := g.ReachablePath(from, to)
			if !ok {
				loggerFromContext(cmd.Context()).Warn("no path", "from", from, "to", to)
				fmt.Fprintln(w, StyleDim.Render("no path"))
				return nil
			}
			fmt.Fprintln(w, renderPath(path))
			printKV(w, "hops", len(path)-1)
			return nil
		},
	}
	src.register(cmd)
	return cmd
}

func (c *CLI) treeCommand() *cobra.Command {
	var src graphSource
	cmd := &cobra.Command{
		Use:   "tree <from>",
		Short: "Print the shortest path from <from> to every other connected vertex",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(cmd, &src)
			if err != nil {
				return err
			}
			from := args[0]
			if err := requireVertex(g, from); err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			tree := g.ShortestPathTree(from)
			printTitle(w, "Shortest paths from %s", from)
			for _, path := range tree {
				// length-1 entries are unreachable vertices
				if len(path) == 1 {
					fmt.Fprintf(w, "%s %s\n", StyleValue.Render(path[0]), StyleDim.Render("(unreachable)"))
					continue
				}
				fmt.Fprintln(w, renderPath(path))
			}
			return nil
		},
	}
	src.register(cmd)
	return cmd
}

func (c *CLI) walkCommand() *cobra.Command {
	var (
		src      graphSource
		maxDepth int
	)
	cmd := &cobra.Command{
		Use:   "walk <from>",
		Short: "Breadth-first walk listing each vertex with its depth",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(cmd, &src)
			if err != nil {
				return err
			}
			logger := loggerFromContext(cmd.Context())
			res, err := bfs.BFS(g, args[0],
				bfs.WithContext[string](cmd.Context()),
				bfs.WithMaxDepth[string](maxDepth),
				bfs.WithOnVisit(func(v string, depth int) error {
					logger.Debug("visit", "vertex", v, "depth", depth)
					return nil
				}),
			)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			printTitle(w, "Walk from %s", res.Start)
			for _, v := range res.Order {
				line := StyleDim.Render(strconv.Itoa(res.Depth[v])) + " " + StyleValue.Render(v)
				if p, ok := res.Parent[v]; ok {
					line += StyleDim.Render(" via " + p)
				}
				fmt.Fprintln(w, line)
			}
			printKV(w, "reached", strings.Join([]string{strconv.Itoa(len(res.Order)), strconv.Itoa(g.VertexCount())}, "/"))
			return nil
		},
	}
	src.register(cmd)
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "stop after this many hops (0 = unlimited)")
	return cmd
}
