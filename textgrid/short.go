// SPDX-License-Identifier: EPL-2.0

package textgrid

import (
	"strings"
)

type token struct {
	text   string
	quoted bool
	line   int
}

// tokenizer splits the compact layout into bare words and quoted strings.
// Praat writes one token per line, but several on a line are accepted.
type tokenizer struct {
	r       *lineReader
	rest    string
	line    int
	pending *token
}

func (t *tokenizer) next() (token, bool, error) {
	if t.pending != nil {
		tok := *t.pending
		t.pending = nil

		return tok, true, nil
	}

	for {
		t.rest = strings.TrimLeft(t.rest, " \t")
		if t.rest == "" {
			line, num, ok := t.r.next()
			if !ok {
				return token{line: num}, false, nil
			}
			t.rest, t.line = line, num

			continue
		}

		if t.rest[0] == '"' {
			start := t.line
			s, rest, err := readQuoted(t.rest, start, t.r, "")
			if err != nil {
				return token{}, false, err
			}
			t.rest, t.line = rest, t.r.line()

			return token{text: s, quoted: true, line: start}, true, nil
		}

		end := strings.IndexAny(t.rest, " \t")
		if end < 0 {
			end = len(t.rest)
		}
		word := t.rest[:end]
		t.rest = t.rest[end:]

		return token{text: word, line: t.line}, true, nil
	}
}

func (t *tokenizer) peek() (token, bool, error) {
	tok, ok, err := t.next()
	if err != nil || !ok {
		return tok, ok, err
	}
	t.pending = &tok

	return tok, true, nil
}

type shortParser struct {
	tok *tokenizer
}

func parseShort(r *lineReader) (*TextGrid, error) {
	p := &shortParser{tok: &tokenizer{r: r}}

	var (
		g   TextGrid
		err error
	)

	if g.Xmin, err = p.number("xmin"); err != nil {
		return nil, err
	}
	if g.Xmax, err = p.number("xmax"); err != nil {
		return nil, err
	}

	exists := true
	tok, ok, err := p.tok.peek()
	if err != nil {
		return nil, err
	}
	if ok && !tok.quoted {
		switch tok.text {
		case "<exists>":
			p.tok.next()
		case "<absent>":
			p.tok.next()
			exists = false
		}
	}

	if exists {
		n, err := p.count("size")
		if err != nil {
			return nil, err
		}

		g.Tiers = make([]Tier, 0, r.sizeHint(n))
		for i := 0; i < n; i++ {
			tier, err := p.tier()
			if err != nil {
				return nil, err
			}
			g.Tiers = append(g.Tiers, tier)
		}
	}

	tok, ok, err = p.tok.next()
	if err != nil {
		return nil, err
	}
	if ok {
		return nil, errAt(tok.line, "", ErrMalformed, "unexpected %q after the last tier", tok.text)
	}

	return &g, nil
}

func (p *shortParser) tier() (Tier, error) {
	var (
		t   Tier
		err error
	)

	if t.Class, t.line, err = p.str("class"); err != nil {
		return t, err
	}
	if t.Name, _, err = p.str("name"); err != nil {
		return t, err
	}
	if t.Xmin, err = p.number("xmin"); err != nil {
		return t, err
	}
	if t.Xmax, err = p.number("xmax"); err != nil {
		return t, err
	}

	n, err := p.count("size")
	if err != nil {
		return t, err
	}
	t.lines = make([]int, 0, p.tok.r.sizeHint(n))

	switch t.Class {
	case ClassInterval:
		t.Intervals = make([]Interval, 0, cap(t.lines))
		for j := 0; j < n; j++ {
			var (
				iv   Interval
				line int
			)
			if iv.Start, line, err = p.numberAt("xmin"); err != nil {
				return t, err
			}
			if iv.End, err = p.number("xmax"); err != nil {
				return t, err
			}
			if iv.Label, _, err = p.str("text"); err != nil {
				return t, err
			}
			t.Intervals = append(t.Intervals, iv)
			t.lines = append(t.lines, line)
		}
	case ClassText:
		t.Points = make([]Point, 0, cap(t.lines))
		for j := 0; j < n; j++ {
			var (
				pt   Point
				line int
			)
			if pt.Time, line, err = p.numberAt("number"); err != nil {
				return t, err
			}
			if pt.Mark, _, err = p.str("mark"); err != nil {
				return t, err
			}
			t.Points = append(t.Points, pt)
			t.lines = append(t.lines, line)
		}
	default:
		return t, errAt(t.line, "class", ErrMalformed, "unknown tier class %q", t.Class)
	}

	return t, nil
}

func (p *shortParser) want(field string) (token, error) {
	tok, ok, err := p.tok.next()
	if err != nil {
		return tok, err
	}
	if !ok {
		return tok, errAt(tok.line, field, ErrTruncated, "file ended before %q", field)
	}

	return tok, nil
}

func (p *shortParser) numberAt(field string) (float64, int, error) {
	tok, err := p.want(field)
	if err != nil {
		return 0, tok.line, err
	}
	if tok.quoted {
		return 0, tok.line, errAt(tok.line, field, ErrMalformed, "expected a number, got string %q", tok.text)
	}

	v, err := parseNumber(tok.text, tok.line, field)

	return v, tok.line, err
}

func (p *shortParser) number(field string) (float64, error) {
	v, _, err := p.numberAt(field)

	return v, err
}

func (p *shortParser) count(field string) (int, error) {
	tok, err := p.want(field)
	if err != nil {
		return 0, err
	}
	if tok.quoted {
		return 0, errAt(tok.line, field, ErrMalformed, "expected a count, got string %q", tok.text)
	}

	return parseCount(tok.text, tok.line, field)
}

func (p *shortParser) str(field string) (string, int, error) {
	tok, err := p.want(field)
	if err != nil {
		return "", tok.line, err
	}
	if !tok.quoted {
		return "", tok.line, errAt(tok.line, field, ErrMalformed, "expected a quoted string, got %q", tok.text)
	}

	return tok.text, tok.line, nil
}
