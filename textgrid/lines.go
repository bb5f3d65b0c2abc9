// SPDX-License-Identifier: EPL-2.0

package textgrid

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// lineReader walks decoded text line by line. Line numbers are 1-based.
type lineReader struct {
	lines []string
	pos   int // index of the next unread line
}

func newLineReader(text string) *lineReader {
	return &lineReader{lines: strings.Split(text, "\n")}
}

// next skips blank lines and returns the following line without its
// leading indentation.
func (r *lineReader) next() (string, int, bool) {
	for r.pos < len(r.lines) {
		line := r.lines[r.pos]
		r.pos++
		if strings.TrimSpace(line) == "" {
			continue
		}

		return strings.TrimLeft(line, " \t"), r.pos, true
	}

	return "", r.end(), false
}

func (r *lineReader) peek() (string, int, bool) {
	pos := r.pos
	line, num, ok := r.next()
	r.pos = pos

	return line, num, ok
}

// raw returns the next line untouched, blank or not. Used to continue
// strings that span lines.
func (r *lineReader) raw() (string, bool) {
	if r.pos >= len(r.lines) {
		return "", false
	}
	line := r.lines[r.pos]
	r.pos++

	return line, true
}

// line is the number of the most recently consumed line.
func (r *lineReader) line() int {
	return r.pos
}

func (r *lineReader) end() int {
	return len(r.lines)
}

// sizeHint bounds a preallocation for n entries declared by the file. Every
// entry takes at least one line, so more than the lines left can never be
// read.
func (r *lineReader) sizeHint(n int) int {
	return min(n, len(r.lines)-r.pos)
}

// splitField splits "key = value". Runs of blanks inside the key collapse
// to one space; the value keeps everything after the first "=" minus
// leading blanks.
func splitField(line string) (key, value string, ok bool) {
	idx := strings.IndexByte(line, '=')
	if idx < 0 {
		return "", "", false
	}

	key = strings.Join(strings.Fields(line[:idx]), " ")
	value = strings.TrimLeft(line[idx+1:], " \t")

	return key, value, key != ""
}

// readQuoted reads a string literal that starts at s[0] == '"'. A doubled
// quote stands for one quote character. When the closing quote is not on
// this line, following lines are consumed and joined with "\n".
func readQuoted(s string, line int, r *lineReader, field string) (value, rest string, err error) {
	var b strings.Builder

	s = s[1:]
	for {
		for i := 0; i < len(s); i++ {
			if s[i] != '"' {
				b.WriteByte(s[i])
				continue
			}
			if i+1 < len(s) && s[i+1] == '"' {
				b.WriteByte('"')
				i++
				continue
			}

			return b.String(), s[i+1:], nil
		}

		next, ok := r.raw()
		if !ok {
			return "", "", errAt(line, field, ErrTruncated, "unterminated string")
		}
		b.WriteByte('\n')
		s = next
	}
}

func parseNumber(s string, line int, field string) (float64, error) {
	s = strings.TrimSpace(s)

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errAt(line, field, ErrMalformed, "expected a number, got %q", s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errAt(line, field, ErrMalformed, "non-finite number %q", s)
	}

	return v, nil
}

func parseCount(s string, line int, field string) (int, error) {
	s = strings.TrimSpace(s)

	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, errAt(line, field, ErrMalformed, "expected a non-negative count, got %q", s)
	}

	return n, nil
}

// blockHeader formats "name [index]:"; index 0 yields "name []:".
func blockHeader(name string, index int) string {
	if index == 0 {
		return name + " []:"
	}

	return fmt.Sprintf("%s [%d]:", name, index)
}

// sameHeader compares block headers ignoring blanks.
func sameHeader(line, want string) bool {
	strip := func(s string) string {
		return strings.Join(strings.Fields(s), "")
	}

	return strip(line) == strip(want)
}
