// Package ingest reads Steiner instances from whitespace-separated integer
// streams and writes them back out.
//
// Two layouts are understood:
//
//	tree:   cases until EOF; each "n m k", m lines "u v w", then k terminals.
//	forest: a leading case count T; each case "n m h" then m lines "u v w".
//	        Terminals are nodes 1..h (group A) and n-h+1..n (group B).
package ingest

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/lvsteiner/core"
)

// Format names an input layout.
type Format string

const (
	// FormatTree is "n m k", m edges, k terminals, repeated until EOF.
	FormatTree Format = "tree"
	// FormatForest is a case count T followed by T cases "n m h" and m edges.
	FormatForest Format = "forest"
)

var (
	// ErrFormat is returned for a Format other than tree or forest.
	ErrFormat = errors.New("ingest: unknown format")

	// ErrSyntax indicates a field that is not a decimal integer.
	ErrSyntax = errors.New("ingest: expected an integer")

	// ErrTruncated indicates the stream ended inside a case.
	ErrTruncated = errors.New("ingest: unexpected end of input")

	// ErrHeader indicates a case header with an out-of-range n, m, k or h.
	ErrHeader = errors.New("ingest: invalid case header")

	// ErrCaseCount indicates a negative forest case count.
	ErrCaseCount = errors.New("ingest: invalid case count")

	// ErrTrailing indicates data after the last announced forest case.
	ErrTrailing = errors.New("ingest: data after the last case")

	// ErrWriteCase is returned by WriteTree for a case without terminals.
	ErrWriteCase = errors.New("ingest: case has no terminals to write")

	// ErrForestCase is returned by WriteTree for a case with terminal groups.
	ErrForestCase = errors.New("ingest: forest cases cannot be written in tree format")
)

// ParseFormat maps "tree" or "forest" to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatTree, FormatForest:
		return f, nil
	default:
		return "", errors.Wrapf(ErrFormat, "%q", s)
	}
}

// Case is one parsed instance. Tree cases fill Terminals only; forest cases
// fill GroupA and GroupB and set Terminals to their concatenation.
type Case struct {
	Index     int
	Graph     *core.Graph
	Terminals []int
	GroupA    []int
	GroupB    []int
}

// IsForest reports whether c carries two terminal groups.
func (c *Case) IsForest() bool { return len(c.GroupA) > 0 || len(c.GroupB) > 0 }

// Reader yields cases from a stream one at a time.
type Reader struct {
	format Format
	tok    *tokenizer

	index   int
	pending int // forest cases still to read; -1 before the count is read
}

// NewReader returns a Reader decoding r in the given format.
func NewReader(r io.Reader, format Format) *Reader {
	return &Reader{
		format:  format,
		tok:     newTokenizer(r),
		pending: -1,
	}
}

// Next returns the next case, or io.EOF once the input is exhausted.
func (r *Reader) Next() (*Case, error) {
	switch r.format {
	case FormatTree:
		return r.nextTree()
	case FormatForest:
		return r.nextForest()
	default:
		return nil, errors.Wrapf(ErrFormat, "%q", string(r.format))
	}
}

// ReadAll drains the reader.
func (r *Reader) ReadAll() ([]*Case, error) {
	var out []*Case
	for {
		c, err := r.Next()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, c)
	}
}

func (r *Reader) nextTree() (*Case, error) {
	// A clean EOF before the header ends the stream.
	n, err := r.tok.next()
	if err == io.EOF {
		return nil, io.EOF
	}
	if err != nil {
		return nil, err
	}
	m, k, err := r.header2("n m k")
	if err != nil {
		return nil, err
	}
	if n < 1 || m < 0 || k < 1 {
		return nil, errors.Wrapf(ErrHeader, "%s: n=%d m=%d k=%d", r.tok.pos(), n, m, k)
	}

	g, err := r.edges(n, m)
	if err != nil {
		return nil, err
	}
	terms := make([]int, k)
	for i := range terms {
		if terms[i], err = r.tok.need(); err != nil {
			return nil, errors.WithMessagef(err, "terminal %d", i)
		}
		if !g.HasNode(terms[i]) {
			return nil, errors.Wrapf(core.ErrNodeRange, "%s: terminal %d is node %d, want 1..%d", r.tok.pos(), i, terms[i], n)
		}
	}

	r.index++
	return &Case{Index: r.index, Graph: g, Terminals: terms}, nil
}

func (r *Reader) nextForest() (*Case, error) {
	if r.pending < 0 {
		t, err := r.tok.next()
		if err == io.EOF {
			return nil, io.EOF
		}
		if err != nil {
			return nil, err
		}
		if t < 0 {
			return nil, errors.Wrapf(ErrCaseCount, "%s: T=%d", r.tok.pos(), t)
		}
		r.pending = t
	}
	if r.pending == 0 {
		// Anything after the announced cases is a malformed stream.
		if _, err := r.tok.next(); err != io.EOF {
			return nil, errors.Wrapf(ErrTrailing, "%s", r.tok.pos())
		}
		return nil, io.EOF
	}

	n, err := r.tok.need()
	if err != nil {
		return nil, err
	}
	m, h, err := r.header2("n m h")
	if err != nil {
		return nil, err
	}
	if n < 1 || m < 0 || h < 1 || h > n {
		return nil, errors.Wrapf(ErrHeader, "%s: n=%d m=%d h=%d", r.tok.pos(), n, m, h)
	}
	g, err := r.edges(n, m)
	if err != nil {
		return nil, err
	}

	a := make([]int, h)
	b := make([]int, h)
	for i := 0; i < h; i++ {
		a[i] = i + 1
		b[i] = n - h + 1 + i
	}
	r.pending--
	r.index++

	return &Case{
		Index:     r.index,
		Graph:     g,
		Terminals: append(append([]int(nil), a...), b...),
		GroupA:    a,
		GroupB:    b,
	}, nil
}

// header2 reads the two header fields after n.
func (r *Reader) header2(layout string) (int, int, error) {
	x, err := r.tok.need()
	if err != nil {
		return 0, 0, errors.WithMessagef(err, "header %q", layout)
	}
	y, err := r.tok.need()
	if err != nil {
		return 0, 0, errors.WithMessagef(err, "header %q", layout)
	}

	return x, y, nil
}

// edges reads m "u v w" triples into a new graph of order n.
func (r *Reader) edges(n, m int) (*core.Graph, error) {
	g, err := core.NewGraph(n, core.WithEdgeCapacity(m))
	if err != nil {
		return nil, errors.Wrapf(err, "%s", r.tok.pos())
	}
	var uvw [3]int
	for i := 0; i < m; i++ {
		for j := range uvw {
			if uvw[j], err = r.tok.need(); err != nil {
				return nil, errors.WithMessagef(err, "edge %d", i)
			}
		}
		if err = g.AddEdge(uvw[0], uvw[1], int64(uvw[2])); err != nil {
			return nil, errors.Wrapf(err, "%s: edge %d", r.tok.pos(), i)
		}
	}

	return g, nil
}

// WriteTree serializes cases in tree format, one header line, one line per
// edge and one terminal line each.
func WriteTree(w io.Writer, cases ...*Case) error {
	bw := bufio.NewWriter(w)
	for _, c := range cases {
		if c.IsForest() {
			return errors.Wrapf(ErrForestCase, "case %d", c.Index)
		}
		if len(c.Terminals) == 0 {
			return errors.Wrapf(ErrWriteCase, "case %d", c.Index)
		}
		edges := c.Graph.Edges()
		fmt.Fprintf(bw, "%d %d %d\n", c.Graph.Order(), len(edges), len(c.Terminals))
		for _, e := range edges {
			fmt.Fprintf(bw, "%d %d %d\n", e.From, e.To, e.Weight)
		}
		for i, v := range c.Terminals {
			if i > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(strconv.Itoa(v))
		}
		bw.WriteByte('\n')
	}

	return errors.Wrap(bw.Flush(), "ingest: flush")
}
