// SPDX-License-Identifier: EPL-2.0

package textgrid

import (
	"errors"
	"os"
	"strings"
)

const (
	fileType      = "ooTextFile"
	fileTypeShort = "ooTextFile short"
	objectClass   = "TextGrid"
)

// Parse decodes and parses a TextGrid in either text dialect. Every failure
// is a *ParseError; no partial result is returned.
func Parse(data []byte) (*TextGrid, error) {
	text, enc, err := DecodeText(data)
	if err != nil {
		return nil, &ParseError{Err: err}
	}

	r := newLineReader(text)
	if err := readHeader(r); err != nil {
		return nil, err
	}

	dialect, err := detectDialect(r)
	if err != nil {
		return nil, err
	}

	var g *TextGrid
	switch dialect {
	case DialectLong:
		g, err = parseLong(r)
	case DialectShort:
		g, err = parseShort(r)
	}
	if err != nil {
		return nil, err
	}

	g.Encoding = enc
	g.Dialect = dialect

	if err := g.validate(); err != nil {
		return nil, err
	}

	return g, nil
}

// ParseFile reads and parses the TextGrid at path. File system errors are
// returned as is; parse errors carry path.
func ParseFile(path string) (*TextGrid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	g, err := Parse(data)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			pe.Path = path
		}

		return nil, err
	}

	return g, nil
}

func readHeader(r *lineReader) error {
	ft, err := headerField(r, "File type")
	if err != nil {
		return err
	}
	if ft != fileType && ft != fileTypeShort {
		return errAt(r.line(), "File type", ErrNotTextGrid, "unsupported file type %q", ft)
	}

	class, err := headerField(r, "Object class")
	if err != nil {
		return err
	}
	if class != objectClass {
		return errAt(r.line(), "Object class", ErrNotTextGrid, "object class is %q", class)
	}

	return nil
}

func headerField(r *lineReader, key string) (string, error) {
	line, num, ok := r.next()
	if !ok {
		return "", errAt(num, key, ErrNotTextGrid, "missing header")
	}

	k, v, ok := splitField(line)
	if !ok || k != key || !strings.HasPrefix(v, `"`) {
		return "", errAt(num, key, ErrNotTextGrid, "expected %s = \"...\", got %q", key, strings.TrimSpace(line))
	}

	value, _, err := readQuoted(v, num, r, key)
	if err != nil {
		return "", err
	}

	return value, nil
}

// detectDialect looks at the first line after the header without
// consuming it: "xmin = ..." starts the long layout, a bare number the
// short one.
func detectDialect(r *lineReader) (Dialect, error) {
	line, num, ok := r.peek()
	if !ok {
		return 0, errAt(num, "", ErrTruncated, "nothing after the header")
	}

	if key, _, ok := splitField(line); ok && key == "xmin" {
		return DialectLong, nil
	}

	if fields := strings.Fields(line); len(fields) > 0 {
		if _, err := parseNumber(fields[0], num, ""); err == nil {
			return DialectShort, nil
		}
	}

	return 0, errAt(num, "", ErrUnknownDialect, "unexpected %q", strings.TrimSpace(line))
}
