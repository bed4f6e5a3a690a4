// Package input reads and normalizes chart input lines.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"strings"

	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

const maxLineSize = 16 * 1024 * 1024

// ErrUnknownEncoding is returned for charset names that cannot be decoded.
var ErrUnknownEncoding = errors.New("unknown encoding")

// Reader yields cleaned lines from a text stream. It can be iterated once.
type Reader struct {
	scanner *bufio.Scanner
	err     error
}

// NewReader wraps r, decoding it from the named charset into UTF-8.
// An empty name or "utf-8" reads the stream as is.
func NewReader(r io.Reader, encoding string) (*Reader, error) {
	decoded, err := decode(r, encoding)
	if err != nil {
		return nil, err
	}
	scanner := bufio.NewScanner(decoded)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &Reader{scanner: scanner}, nil
}

func decode(r io.Reader, name string) (io.Reader, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.EqualFold(name, "utf-8") || strings.EqualFold(name, "utf8") {
		return r, nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}
	if enc == nil {
		return nil, fmt.Errorf("%w: %q is not supported", ErrUnknownEncoding, name)
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}

// Lines returns the cleaned, non-empty lines keyed by their 1-based line number
// in the raw stream. Blank and quote-only lines are skipped.
func (r *Reader) Lines() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		lineNo := 0
		for r.scanner.Scan() {
			lineNo++
			line, ok := Clean(r.scanner.Text())
			if !ok {
				continue
			}
			if !yield(lineNo, line) {
				return
			}
		}
		if err := r.scanner.Err(); err != nil {
			r.err = fmt.Errorf("failed to read input: %w", err)
		}
	}
}

// Err returns the first read error seen while iterating Lines.
func (r *Reader) Err() error {
	return r.err
}

// Clean trims a raw line and strips bounding quotes. The boolean is false when
// nothing is left.
//
// Quote stripping only runs when the line starts with a quote, and then trims
// every leading and trailing double quote followed by every leading and
// trailing single quote. Interior quotes are left alone.
func Clean(raw string) (string, bool) {
	line := strings.TrimSpace(raw)
	if line == "" {
		return "", false
	}
	if line[0] == '"' || line[0] == '\'' {
		line = strings.Trim(line, `"`)
		line = strings.Trim(line, "'")
	}
	if line == "" {
		return "", false
	}
	return line, true
}

// FromStrings yields the cleaned form of each string, numbered from 1.
func FromStrings(raw []string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for i, s := range raw {
			line, ok := Clean(s)
			if !ok {
				continue
			}
			if !yield(i+1, line) {
				return
			}
		}
	}
}
