package ingest

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

// tokenizer splits a stream into integer fields and remembers the line of
// the most recent one for error messages. Line layout is otherwise
// irrelevant: a whole case may sit on one line.
type tokenizer struct {
	sc   *bufio.Scanner
	nl   int // newlines consumed so far
	line int // 1-based line of the last token; 0 before the first
}

// maxToken bounds a single field, not a line.
const maxToken = 1 << 16

func newTokenizer(r io.Reader) *tokenizer {
	t := &tokenizer{sc: bufio.NewScanner(r)}
	t.sc.Buffer(make([]byte, 0, 64*1024), maxToken)
	t.sc.Split(t.split)

	return t
}

// split is bufio.ScanWords that also counts the newlines it steps over.
func (t *tokenizer) split(data []byte, atEOF bool) (int, []byte, error) {
	start := 0
	for start < len(data) && isSpace(data[start]) {
		if data[start] == '\n' {
			t.nl++
		}
		start++
	}
	rest := data[start:]
	adv, tok, err := bufio.ScanWords(rest, atEOF)
	if tok != nil {
		t.line = t.nl + 1
		// ScanWords also eats the delimiter after the word.
		end := cap(rest) - cap(tok) + len(tok)
		for _, c := range rest[end:adv] {
			if c == '\n' {
				t.nl++
			}
		}
	}

	return start + adv, tok, err
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}

	return false
}

// pos renders the current line for error context.
func (t *tokenizer) pos() string { return fmt.Sprintf("line %d", t.line) }

// next returns the next integer, or io.EOF when the stream is exhausted.
func (t *tokenizer) next() (int, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return 0, errors.Wrapf(err, "ingest: read after %s", t.pos())
		}
		return 0, io.EOF
	}
	f := t.sc.Text()
	v, err := strconv.Atoi(f)
	if err != nil {
		return 0, errors.Wrapf(ErrSyntax, "%s: %q", t.pos(), f)
	}

	return v, nil
}

// need is next where EOF is an error.
func (t *tokenizer) need() (int, error) {
	v, err := t.next()
	if err == io.EOF {
		return 0, errors.Wrapf(ErrTruncated, "after %s", t.pos())
	}

	return v, err
}
