// SPDX-License-Identifier: EPL-2.0

package textgrid

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownEncoding = errors.New("text is not ASCII, UTF-8 or UTF-16 with a byte-order mark")
	ErrNotTextGrid     = errors.New("not a TextGrid file")
	ErrUnknownDialect  = errors.New("unrecognized TextGrid layout")
	ErrMalformed       = errors.New("malformed TextGrid")
	ErrTruncated       = errors.New("truncated TextGrid")
	ErrNotContiguous   = errors.New("intervals are not contiguous")
	ErrNoIntervalTier  = errors.New("no interval tier")
)

// ParseError locates a failure inside an annotation file. Line is 1-based
// and zero when the problem is not tied to a single line. Err is one of the
// package sentinels.
type ParseError struct {
	Path   string
	Line   int
	Field  string
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	var b strings.Builder

	if e.Path != "" {
		b.WriteString(e.Path)
		b.WriteString(": ")
	}
	if e.Line > 0 {
		fmt.Fprintf(&b, "line %d: ", e.Line)
	}
	if e.Field != "" {
		fmt.Fprintf(&b, "%s: ", e.Field)
	}
	b.WriteString(e.Err.Error())
	if e.Reason != "" {
		b.WriteString(": ")
		b.WriteString(e.Reason)
	}

	return b.String()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func errAt(line int, field string, sentinel error, format string, args ...any) *ParseError {
	return &ParseError{
		Line:   line,
		Field:  field,
		Reason: fmt.Sprintf(format, args...),
		Err:    sentinel,
	}
}
