package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsteiner/internal/ingest"
	"github.com/katalvlaran/lvsteiner/internal/query"
)

// run executes the CLI with a throwaway config file so no user config is
// discovered.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cfg := filepath.Join(t.TempDir(), "lvsteiner.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("log:\n  level: warn\n"), 0o600))

	cmd := newRootCommand(context.Background(), "test")
	var stdout, stderr bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--config", cfg}, args...))
	err := cmd.Execute()

	return stdout.String(), err
}

func TestTreeCommand_Stdin(t *testing.T) {
	out, err := run(t, "3 2 2\n1 2 4\n2 3 5\n1 3\n3 0 2\n1 3\n", "tree", "--verify")
	require.NoError(t, err)
	assert.Equal(t, "9\nNo solution\n", out)
}

func TestForestCommand_FileAndToken(t *testing.T) {
	in := filepath.Join(t.TempDir(), "cases.txt")
	require.NoError(t, os.WriteFile(in, []byte("1\n4 3 2\n1 3 2\n2 4 3\n1 2 100\n"), 0o600))
	dst := filepath.Join(t.TempDir(), "answers.txt")

	out, err := run(t, "", "forest", in, "--output", dst, "--no-solution", "-1", "--shared-queue")
	require.NoError(t, err)
	assert.Empty(t, out)

	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "5\n", string(got))
}

func TestTreeCommand_MemoryLimit(t *testing.T) {
	// n=3, k=2 needs 4 masks × 5 cells × 8 bytes = 160.
	_, err := run(t, "3 2 2\n1 2 4\n2 3 5\n1 3\n", "tree", "--memory-limit", "100")
	require.ErrorIs(t, err, query.ErrTableTooLarge)

	out, err := run(t, "3 2 2\n1 2 4\n2 3 5\n1 3\n", "tree", "--memory-limit", "160")
	require.NoError(t, err)
	assert.Equal(t, "9\n", out)
}

func TestTreeCommand_MalformedInput(t *testing.T) {
	_, err := run(t, "2 1 1\n1 3 1\n1\n", "tree")
	require.Error(t, err)
}

func TestGenCommand_RoundTrip(t *testing.T) {
	for _, topo := range []string{"path", "cycle", "star", "grid", "random"} {
		t.Run(topo, func(t *testing.T) {
			out, err := run(t, "", "gen", topo, "--nodes", "8", "--terminals", "3", "--cases", "2", "--seed", "5")
			require.NoError(t, err)

			cases, err := ingest.NewReader(strings.NewReader(out), ingest.FormatTree).ReadAll()
			require.NoError(t, err)
			require.Len(t, cases, 2)
			for _, c := range cases {
				assert.Len(t, c.Terminals, 3)
			}

			// Every generated instance is connected, so it always has an answer.
			answers, err := run(t, out, "tree")
			require.NoError(t, err)
			assert.NotContains(t, answers, "No solution")
		})
	}
}

func TestGenCommand_Rejects(t *testing.T) {
	_, err := run(t, "", "gen", "torus")
	require.Error(t, err)

	_, err = run(t, "", "gen", "path", "--cases", "0")
	require.Error(t, err)

	_, err = run(t, "", "gen", "path", "--nodes", "2", "--terminals", "3")
	require.Error(t, err)
}

func TestRoot_BadLogFormat(t *testing.T) {
	_, err := run(t, "", "tree", "--log-format", "xml")
	require.Error(t, err)
}
