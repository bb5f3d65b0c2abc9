// SPDX-License-Identifier: EPL-2.0

package textgrid

import (
	"strings"
)

type longParser struct {
	r *lineReader
}

func parseLong(r *lineReader) (*TextGrid, error) {
	p := &longParser{r: r}

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

	exists, err := p.tiersFlag()
	if err != nil {
		return nil, err
	}

	if exists {
		n, err := p.count("size")
		if err != nil {
			return nil, err
		}
		if err := p.header("item", 0); err != nil {
			return nil, err
		}

		g.Tiers = make([]Tier, 0, r.sizeHint(n))
		for i := 1; i <= n; i++ {
			tier, err := p.tier(i)
			if err != nil {
				return nil, err
			}
			g.Tiers = append(g.Tiers, tier)
		}
	}

	if line, num, ok := r.next(); ok {
		return nil, errAt(num, "", ErrMalformed, "unexpected %q after the last tier", strings.TrimSpace(line))
	}

	return &g, nil
}

func (p *longParser) tier(index int) (Tier, error) {
	var (
		t   Tier
		err error
	)

	if err = p.header("item", index); err != nil {
		return t, err
	}
	t.line = p.r.line()

	if t.Class, err = p.text("class"); err != nil {
		return t, err
	}
	if t.Name, err = p.text("name"); err != nil {
		return t, err
	}
	if t.Xmin, err = p.number("xmin"); err != nil {
		return t, err
	}
	if t.Xmax, err = p.number("xmax"); err != nil {
		return t, err
	}

	switch t.Class {
	case ClassInterval:
		err = p.intervals(&t)
	case ClassText:
		err = p.points(&t)
	default:
		err = errAt(t.line, "class", ErrMalformed, "unknown tier class %q", t.Class)
	}

	return t, err
}

func (p *longParser) intervals(t *Tier) error {
	n, err := p.count("intervals: size")
	if err != nil {
		return err
	}

	t.Intervals = make([]Interval, 0, p.r.sizeHint(n))
	t.lines = make([]int, 0, cap(t.Intervals))

	for j := 1; j <= n; j++ {
		if err := p.header("intervals", j); err != nil {
			return err
		}
		line := p.r.line()

		var iv Interval
		if iv.Start, err = p.number("xmin"); err != nil {
			return err
		}
		if iv.End, err = p.number("xmax"); err != nil {
			return err
		}
		if iv.Label, err = p.text("text"); err != nil {
			return err
		}

		t.Intervals = append(t.Intervals, iv)
		t.lines = append(t.lines, line)
	}

	return nil
}

func (p *longParser) points(t *Tier) error {
	n, err := p.count("points: size")
	if err != nil {
		return err
	}

	t.Points = make([]Point, 0, p.r.sizeHint(n))
	t.lines = make([]int, 0, cap(t.Points))

	for j := 1; j <= n; j++ {
		if err := p.header("points", j); err != nil {
			return err
		}
		line := p.r.line()

		var pt Point
		// older files write "time" instead of "number"
		if pt.Time, err = p.number("number", "time"); err != nil {
			return err
		}
		if pt.Mark, err = p.text("mark"); err != nil {
			return err
		}

		t.Points = append(t.Points, pt)
		t.lines = append(t.lines, line)
	}

	return nil
}

// field consumes the next "key = value" line; any of keys is accepted.
func (p *longParser) field(keys ...string) (string, int, error) {
	line, num, ok := p.r.next()
	if !ok {
		return "", num, errAt(num, keys[0], ErrTruncated, "missing %q", keys[0])
	}

	k, v, ok := splitField(line)
	if ok {
		for _, key := range keys {
			if k == key {
				return v, num, nil
			}
		}
	}

	if looksLikeHeader(line) {
		return "", num, errAt(num, keys[0], ErrTruncated, "block ended before %q", keys[0])
	}

	return "", num, errAt(num, keys[0], ErrMalformed, "expected %q, got %q", keys[0], strings.TrimSpace(line))
}

func (p *longParser) number(keys ...string) (float64, error) {
	v, num, err := p.field(keys...)
	if err != nil {
		return 0, err
	}

	return parseNumber(v, num, keys[0])
}

func (p *longParser) count(key string) (int, error) {
	v, num, err := p.field(key)
	if err != nil {
		return 0, err
	}

	return parseCount(v, num, key)
}

func (p *longParser) text(key string) (string, error) {
	v, num, err := p.field(key)
	if err != nil {
		return "", err
	}
	if !strings.HasPrefix(v, `"`) {
		return "", errAt(num, key, ErrMalformed, "expected a quoted string, got %q", strings.TrimSpace(v))
	}

	s, rest, err := readQuoted(v, num, p.r, key)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(rest) != "" {
		return "", errAt(p.r.line(), key, ErrMalformed, "unexpected %q after string", strings.TrimSpace(rest))
	}

	return s, nil
}

// header consumes a block header such as "intervals [3]:". Running into a
// different block or the end of the file means an earlier block held fewer
// entries than its size declared.
func (p *longParser) header(name string, index int) error {
	want := blockHeader(name, index)

	line, num, ok := p.r.next()
	if !ok {
		return errAt(num, name, ErrTruncated, "missing %q", want)
	}
	if sameHeader(line, want) {
		return nil
	}

	if looksLikeHeader(line) {
		return errAt(num, name, ErrTruncated, "expected %q, got %q", want, strings.TrimSpace(line))
	}

	return errAt(num, name, ErrMalformed, "expected %q, got %q", want, strings.TrimSpace(line))
}

// tiersFlag reads the optional "tiers? <exists>" line.
func (p *longParser) tiersFlag() (bool, error) {
	line, num, ok := p.r.peek()
	if !ok {
		return false, nil
	}

	fields := strings.Fields(line)
	if len(fields) == 0 || fields[0] != "tiers?" {
		return true, nil
	}
	p.r.next()

	if len(fields) == 2 {
		switch fields[1] {
		case "<exists>":
			return true, nil
		case "<absent>":
			return false, nil
		}
	}

	return false, errAt(num, "tiers?", ErrMalformed, "unexpected %q", strings.TrimSpace(line))
}

func looksLikeHeader(line string) bool {
	line = strings.TrimSpace(line)

	return strings.HasSuffix(line, ":") && strings.Contains(line, "[")
}
