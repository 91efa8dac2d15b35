package cli

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

// execute runs the root command with args and returns stdout and the log output.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, logs bytes.Buffer
	c := New(&logs, LogDebug)
	root := c.RootCommand()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), logs.String(), err
}

func TestDump(t *testing.T) {
	out, logs, err := execute(t, "dump", "-e", "A-B", "-e", "B-C", "--vertex", "D")
	require.NoError(t, err)
	want := "VERTEX 1: A\n\tEDGE 1: B\n" +
		"VERTEX 2: B\n\tEDGE 1: A\n\tEDGE 2: C\n" +
		"VERTEX 3: C\n\tEDGE 1: B\n" +
		"VERTEX 4: D\n"
	assert.Equal(t, want, out)
	assert.Contains(t, logs, "graph built")
}

func TestDump_Shape(t *testing.T) {
	out, _, err := execute(t, "dump", "--shape", "star", "-n", "3")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "VERTEX 1: A\n\tEDGE 1: B\n\tEDGE 2: C\n"), out)
}

func TestDegree(t *testing.T) {
	out, _, err := execute(t, "degree", "B", "-e", "A-B", "-e", "B-C")
	require.NoError(t, err)
	assert.Contains(t, out, "degree: 2")
	assert.Contains(t, out, "neighbours: A, C")

	_, _, err = execute(t, "degree", "Z", "-e", "A-B")
	assert.ErrorIs(t, err, ErrUnknownVertex)
}

func TestHub(t *testing.T) {
	out, _, err := execute(t, "hub", "--shape", "star", "-n", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "Hub A")
	assert.Contains(t, out, "degree: 4")

	out, _, err = execute(t, "hub")
	require.NoError(t, err)
	assert.Contains(t, out, "graph is empty")
}

func TestPath(t *testing.T) {
	out, _, err := execute(t, "path", "A", "D", "--shape", "path", "-n", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "D ← C ← B ← A")
	assert.Contains(t, out, "hops: 3")

	out, logs, err := execute(t, "path", "A", "X", "-e", "A-B", "-e", "X-Y")
	require.NoError(t, err)
	assert.Contains(t, out, "no path")
	assert.Contains(t, logs, "no path")

	_, _, err = execute(t, "path", "A", "Q", "-e", "A-B")
	assert.ErrorIs(t, err, ErrUnknownVertex)
}

func TestTree(t *testing.T) {
	out, _, err := execute(t, "tree", "A", "-e", "A-B", "-e", "B-C", "-e", "X-Y")
	require.NoError(t, err)
	assert.Contains(t, out, "Shortest paths from A")
	assert.Contains(t, out, "X (unreachable)")
	assert.Contains(t, out, "B ← A")
	assert.Contains(t, out, "C ← B ← A")
	assert.Less(t, strings.Index(out, "X (unreachable)"), strings.Index(out, "B ← A"))
}

func TestWalk(t *testing.T) {
	out, logs, err := execute(t, "walk", "A", "--shape", "path", "-n", "5", "--max-depth", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "0 A")
	assert.Contains(t, out, "1 B via A")
	assert.Contains(t, out, "2 C via B")
	assert.NotContains(t, out, " D")
	assert.Contains(t, out, "reached: 3/5")
	assert.Contains(t, logs, "visit")

	_, _, err = execute(t, "walk", "A", "-e", "A-B", "--max-depth", "-1")
	assert.Error(t, err)
}

func TestSourceErrors(t *testing.T) {
	_, _, err := execute(t, "dump", "-e", "AB")
	assert.ErrorIs(t, err, ErrBadEdge)

	_, _, err = execute(t, "dump", "-e", "A-")
	assert.ErrorIs(t, err, ErrBadEdge)

	_, _, err = execute(t, "dump", "--shape", "hexagon")
	assert.ErrorIs(t, err, ErrUnknownShape)

	_, _, err = execute(t, "dump", "--shape", "cycle", "-n", "1")
	assert.Error(t, err)
}

func TestParseEdge(t *testing.T) {
	a, b, err := parseEdge(" A - B ")
	require.NoError(t, err)
	assert.Equal(t, "A", a)
	assert.Equal(t, "B", b)

	a, b, err = parseEdge("A-A")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGridShape(t *testing.T) {
	src := graphSource{shape: "grid", size: 2, cols: 3}
	g, err := src.build()
	require.NoError(t, err)
	assert.Equal(t, 6, g.VertexCount())
	assert.Equal(t, 7, g.EdgeTotal())
}

func TestLoggerContext(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, log.InfoLevel)

	ctx := commandContext(context.Background(), l, "walk")
	loggerFromContext(ctx).Info("shown")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "cmd=walk")
	assert.Contains(t, buf.String(), "ugraph")
	assert.NotNil(t, loggerFromContext(context.Background()))

	buf.Reset()
	loggerFromContext(ctx).Debug("hidden")
	assert.Zero(t, buf.Len())
}

func TestVerboseFlag(t *testing.T) {
	run := func(args ...string) string {
		var out, logs bytes.Buffer
		root := New(&logs, LogInfo).RootCommand()
		root.SetOut(&out)
		root.SetArgs(args)
		require.NoError(t, root.ExecuteContext(context.Background()))
		return logs.String()
	}

	assert.NotContains(t, run("dump", "-e", "A-B"), "graph built")
	assert.Contains(t, run("dump", "-e", "A-B", "--verbose"), "graph built")
	assert.Contains(t, run("-v", "dump", "-e", "A-B"), "cmd=dump")
}

func TestBuildOrder(t *testing.T) {
	src := graphSource{
		vertices: []string{"Z", "A"},
		edges:    []string{"C-X", "X-Y"},
		shape:    "path",
		size:     2,
	}
	g, err := src.build()
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "X", "Y", "Z"}, g.Vertices())
	assert.True(t, g.ContainsEdge("A", "B"))
	assert.Equal(t, 0, g.EdgeCount("Z"))
}
