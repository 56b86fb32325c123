package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/matroid/intersect"
)

const triangleYAML = `name: triangle
m1: {kind: graphic, vertices: 3, edges: [[0, 1], [1, 2], [0, 2]]}
m2: {kind: transversal, sets: [[0], [1], [2]]}
expected: 2
`

const exchangeYAML = `name: parallel edges
m1: {kind: graphic, vertices: 4, edges: [[0, 1], [0, 1], [2, 3]]}
m2: {kind: transversal, sets: [[0, 2], [1]]}
`

const wrongYAML = `name: complete K4
m1: {kind: graphic, vertices: 4, edges: [[0, 1], [0, 2], [0, 3], [1, 2], [1, 3], [2, 3]]}
m2: {kind: transversal, sets: [[0, 1, 2], [3, 4, 5]]}
expected: 3
`

// syncBuffer is a bytes.Buffer safe for one writer goroutine and one reader.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

// run executes the root command with args and returns stdout, stderr and the error.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestSolve_Text(t *testing.T) {
	p := writeFile(t, t.TempDir(), "triangle.yaml", triangleYAML)

	out, _, err := run(t, "", "solve", p)
	require.NoError(t, err)
	assert.Contains(t, out, "triangle: size 2 (expected 2, ok)")
	assert.Contains(t, out, "solution: [0 1]")
	assert.Contains(t, out, "edges:    (0,1) (1,2)")
	assert.Contains(t, out, "ranks:    M1 2, M2 3")
	assert.NotContains(t, out, "no augmenting path")
}

func TestSolve_TraceText(t *testing.T) {
	p := writeFile(t, t.TempDir(), "exchange.yaml", exchangeYAML)

	out, _, err := run(t, "", "solve", "--trace", p)
	require.NoError(t, err)
	assert.Contains(t, out, "    2  +[2 1] -[0] -> [1 2]")
	assert.Contains(t, out, "    3  no augmenting path, solution [1 2]")
}

func TestSolve_Mismatch(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "triangle.yaml", triangleYAML)
	bad := writeFile(t, dir, "k4.yaml", wrongYAML)

	out, errOut, err := run(t, "", "solve", good, bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 instance(s)")
	assert.Contains(t, out, "complete K4: size 2 (expected 3, MISMATCH)")
	assert.Contains(t, errOut, "unexpected solution size")
}

func TestSolve_YAMLTrace(t *testing.T) {
	p := writeFile(t, t.TempDir(), "exchange.yaml", exchangeYAML)

	out, _, err := run(t, "", "solve", "--trace", "-o", "yaml", p)
	require.NoError(t, err)

	var got []solveReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "parallel edges", got[0].Name)
	assert.Equal(t, []int{1, 2}, got[0].Solution)
	assert.Equal(t, [][2]int{{0, 1}, {2, 3}}, got[0].Edges)
	require.Len(t, got[0].Trace, 3)
	assert.Equal(t, []int{2, 1}, got[0].Trace[1].Added)
	assert.True(t, got[0].Trace[2].Terminal)
}

func TestSolve_CatalogThroughStdin(t *testing.T) {
	catalog, _, err := run(t, "", "catalog")
	require.NoError(t, err)

	out, _, err := run(t, catalog, "solve", "--output", "json", "--workers", "3", "-")
	require.NoError(t, err)

	var got []solveReport
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 15)
	for _, r := range got {
		require.NotNil(t, r.Expected, r.Name)
		assert.Equal(t, *r.Expected, r.Size, r.Name)
		assert.False(t, r.Mismatch, r.Name)
		assert.Nil(t, r.Trace, r.Name)
	}
}

func TestSolve_Errors(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "triangle.yaml", triangleYAML)
	broken := writeFile(t, dir, "broken.yaml", "m1: {kind: matrix}\nm2: {kind: transversal}\n")

	cases := []struct {
		name string
		args []string
		want string
	}{
		{"no file", []string{"solve"}, "requires at least 1 arg"},
		{"missing file", []string{"solve", filepath.Join(dir, "nope.yaml")}, "no such file"},
		{"unknown kind", []string{"solve", broken}, "unknown matroid kind"},
		{"bad output", []string{"solve", "-o", "xml", p}, "unsupported format"},
		{"bad workers", []string{"solve", "--workers", "0", p}, "Workers must be at least 1"},
		{"bad log format", []string{"--log-format", "xml", "solve", p}, "unsupported log format"},
		{"bad log level", []string{"--log-level", "loud", "solve", p}, "not a valid logrus Level"},
		{"watch stdin", []string{"solve", "--watch", "-"}, "--watch cannot be used with stdin"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := run(t, "", tc.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestSolve_IterationLimit(t *testing.T) {
	p := writeFile(t, t.TempDir(), "triangle.yaml", triangleYAML)

	_, _, err := run(t, "", "solve", "--max-iterations", "1", p)
	assert.ErrorIs(t, err, intersect.ErrIterationLimit)
}

func TestSolve_DebugLogging(t *testing.T) {
	p := writeFile(t, t.TempDir(), "triangle.yaml", triangleYAML)

	_, errOut, err := run(t, "", "--debug", "--log-format", "json", "solve", p)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(errOut), "\n")
	require.Len(t, lines, 3)
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "augmented", entry["msg"])
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "triangle", entry["instance"])
	assert.Contains(t, lines[2], "no augmenting path left")
}

func TestVerify(t *testing.T) {
	p := writeFile(t, t.TempDir(), "triangle.yaml", triangleYAML)

	out, _, err := run(t, "", "verify", "--solution", "1,0", p)
	require.NoError(t, err)
	assert.Equal(t, "triangle: independent in M1: true, independent in M2: true, maximal: true\n", out)

	out, _, err = run(t, "", "verify", "-s", "0", p)
	require.EqualError(t, err, "solution rejected")
	assert.Contains(t, out, "element 1 can still be added")

	out, _, err = run(t, "", "verify", "-s", "0,1,2", "-o", "json", p)
	require.Error(t, err)
	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, false, got["independentInM1"])
	assert.Equal(t, false, got["ok"])

	_, _, err = run(t, "", "verify", "-s", "5", p)
	assert.ErrorIs(t, err, intersect.ErrInvalidGroundSet)

	_, _, err = run(t, "", "verify", p)
	assert.Error(t, err)
}

func TestVerify_Stdin(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"named", exchangeYAML, "parallel edges"},
		{"unnamed", strings.TrimPrefix(exchangeYAML, "name: parallel edges\n"), "stdin#1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, _, err := run(t, tc.input, "verify", "-s", "2,1", "-o", "yaml", "-")
			require.NoError(t, err)

			var got verifyReport
			require.NoError(t, yaml.Unmarshal([]byte(out), &got))
			assert.Equal(t, tc.want, got.Name)
			assert.True(t, got.OK)
			assert.Equal(t, -1, got.Witness)
		})
	}
}

func TestSolve_Watch(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "instance.yaml", triangleYAML)

	var out, errOut syncBuffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs([]string{"solve", "--watch", p})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- cmd.ExecuteContext(ctx) }()

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "triangle: size 2")
	}, 5*time.Second, 10*time.Millisecond)

	require.NoError(t, os.WriteFile(p, []byte(exchangeYAML), 0o644))
	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "parallel edges: size 2")
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}

func TestSolve_WatchLogsOncePerSolve(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "instance.yaml", triangleYAML)

	var out, errOut syncBuffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs([]string{"solve", "--watch", "--log-level", "info", p})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- cmd.ExecuteContext(ctx) }()

	watching := func() int { return strings.Count(errOut.String(), "watching for changes") }
	solves := func() int { return strings.Count(out.String(), ": size 2") }

	require.Eventually(t, func() bool { return watching() == 1 }, 5*time.Second, 10*time.Millisecond)

	// Events on other files in the directory are ignored quietly.
	for i := 0; i < 3; i++ {
		writeFile(t, dir, "notes.txt", strings.Repeat("x", i+1))
	}
	require.NoError(t, os.WriteFile(p, []byte(exchangeYAML), 0o644))
	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "parallel edges: size 2") && watching() == solves()
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}
