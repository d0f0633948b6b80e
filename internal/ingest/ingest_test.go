package ingest_test

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsteiner/core"
	"github.com/katalvlaran/lvsteiner/internal/ingest"
)

const treeInput = `4 5 3
1 2 1
2 3 1
3 4 1
1 4 5
2 4 2
1 3 4

3 1 2
1 2 7
2 3
`

func TestReader_Tree(t *testing.T) {
	cases, err := ingest.NewReader(strings.NewReader(treeInput), ingest.FormatTree).ReadAll()
	require.NoError(t, err)
	require.Len(t, cases, 2)

	c := cases[0]
	assert.Equal(t, 1, c.Index)
	assert.Equal(t, 4, c.Graph.Order())
	assert.Equal(t, 5, c.Graph.Size())
	assert.Equal(t, []int{1, 3, 4}, c.Terminals)
	assert.False(t, c.IsForest())

	c = cases[1]
	assert.Equal(t, 2, c.Index)
	assert.Equal(t, []core.Edge{{From: 1, To: 2, Weight: 7}}, c.Graph.Edges())
	assert.Equal(t, []int{2, 3}, c.Terminals)
}

func TestReader_Forest(t *testing.T) {
	in := "2\n4 2 1\n1 4 3\n2 3 1\n6 0 2\n"
	r := ingest.NewReader(strings.NewReader(in), ingest.FormatForest)

	c, err := r.Next()
	require.NoError(t, err)
	assert.True(t, c.IsForest())
	assert.Equal(t, []int{1}, c.GroupA)
	assert.Equal(t, []int{4}, c.GroupB)
	assert.Equal(t, []int{1, 4}, c.Terminals)

	c, err = r.Next()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, c.GroupA)
	assert.Equal(t, []int{5, 6}, c.GroupB)
	assert.Zero(t, c.Graph.Size())

	_, err = r.Next()
	assert.Equal(t, io.EOF, err)
	_, err = r.Next()
	assert.Equal(t, io.EOF, err)
}

func TestReader_Errors(t *testing.T) {
	tests := []struct {
		name   string
		format ingest.Format
		in     string
		want   error
	}{
		{"syntax", ingest.FormatTree, "3 x 1", ingest.ErrSyntax},
		{"truncated header", ingest.FormatTree, "3 1", ingest.ErrTruncated},
		{"truncated edges", ingest.FormatTree, "3 2 1\n1 2 1\n", ingest.ErrTruncated},
		{"bad header", ingest.FormatTree, "0 0 1\n", ingest.ErrHeader},
		{"no terminals", ingest.FormatTree, "2 1 0\n1 2 3\n", ingest.ErrHeader},
		{"edge range", ingest.FormatTree, "2 1 1\n1 3 1\n1", core.ErrNodeRange},
		{"negative weight", ingest.FormatTree, "2 1 1\n1 2 -1\n1", core.ErrNegativeWeight},
		{"terminal range", ingest.FormatTree, "2 0 1\n5", core.ErrNodeRange},
		{"case count", ingest.FormatForest, "-1", ingest.ErrCaseCount},
		{"h too large", ingest.FormatForest, "1\n2 0 3\n", ingest.ErrHeader},
		{"trailing", ingest.FormatForest, "1\n2 0 1\n9", ingest.ErrTrailing},
		{"format", ingest.Format("dot"), "1", ingest.ErrFormat},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ingest.NewReader(strings.NewReader(tc.in), tc.format).ReadAll()
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestReader_ErrorCarriesLine(t *testing.T) {
	_, err := ingest.NewReader(strings.NewReader("3 2 1\n1 2 1\n2 x 1\n"), ingest.FormatTree).ReadAll()
	require.ErrorIs(t, err, ingest.ErrSyntax)
	assert.Contains(t, err.Error(), "line 3")
}

func TestReader_SingleLineCase(t *testing.T) {
	// A 200000-node path with every field on one line, well over 1 MiB.
	const n = 200000
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d %d 2", n, n-1)
	for v := 1; v < n; v++ {
		fmt.Fprintf(&sb, " %d %d 1", v, v+1)
	}
	fmt.Fprintf(&sb, " 1 %d", n)
	require.Greater(t, sb.Len(), 1<<20)

	cases, err := ingest.NewReader(strings.NewReader(sb.String()), ingest.FormatTree).ReadAll()
	require.NoError(t, err)
	require.Len(t, cases, 1)
	assert.Equal(t, n, cases[0].Graph.Order())
	assert.Equal(t, n-1, cases[0].Graph.Size())
	assert.Equal(t, []int{1, n}, cases[0].Terminals)
}

func TestReader_LineAcrossLayouts(t *testing.T) {
	// Blank lines and CRLF endings still count toward the reported line.
	_, err := ingest.NewReader(strings.NewReader("3 2 1\r\n\n1 2 1 2 3 x\n"), ingest.FormatTree).ReadAll()
	require.ErrorIs(t, err, ingest.ErrSyntax)
	assert.Contains(t, err.Error(), "line 3")

	_, err = ingest.NewReader(strings.NewReader("2 1 1\n1 2 1\n"), ingest.FormatTree).ReadAll()
	require.ErrorIs(t, err, ingest.ErrTruncated)
	assert.Contains(t, err.Error(), "after line 2")
}

func TestParseFormat(t *testing.T) {
	f, err := ingest.ParseFormat(" Forest ")
	require.NoError(t, err)
	assert.Equal(t, ingest.FormatForest, f)

	_, err = ingest.ParseFormat("graph")
	require.ErrorIs(t, err, ingest.ErrFormat)
}

func TestWriteTree_RoundTrip(t *testing.T) {
	cases, err := ingest.NewReader(strings.NewReader(treeInput), ingest.FormatTree).ReadAll()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, ingest.WriteTree(&buf, cases...))

	again, err := ingest.NewReader(&buf, ingest.FormatTree).ReadAll()
	require.NoError(t, err)
	require.Len(t, again, len(cases))
	for i := range cases {
		assert.Equal(t, cases[i].Graph.Edges(), again[i].Graph.Edges())
		assert.Equal(t, cases[i].Terminals, again[i].Terminals)
	}
}

func TestWriteTree_Rejects(t *testing.T) {
	g, err := core.NewGraph(2)
	require.NoError(t, err)

	err = ingest.WriteTree(io.Discard, &ingest.Case{Index: 1, Graph: g})
	require.ErrorIs(t, err, ingest.ErrWriteCase)

	err = ingest.WriteTree(io.Discard, &ingest.Case{Index: 1, Graph: g, GroupA: []int{1}, GroupB: []int{2}})
	require.ErrorIs(t, err, ingest.ErrForestCase)
}
