// SPDX-License-Identifier: EPL-2.0

package textgrid

import (
	"math"
)

// Boundaries closer than this are considered equal. Praat writes times with
// up to 17 significant digits, so copies of one boundary may differ in the
// last bit.
const boundaryTolerance = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) <= boundaryTolerance
}

func (g *TextGrid) validate() error {
	if g.Xmax < g.Xmin {
		return errAt(0, "xmax", ErrMalformed, "grid ends at %g before it starts at %g", g.Xmax, g.Xmin)
	}

	for i := range g.Tiers {
		t := &g.Tiers[i]

		if t.Xmax < t.Xmin {
			return errAt(t.line, "xmax", ErrMalformed, "tier %q ends at %g before it starts at %g", t.Name, t.Xmax, t.Xmin)
		}
		if t.Xmin < g.Xmin-boundaryTolerance || t.Xmax > g.Xmax+boundaryTolerance {
			return errAt(t.line, "xmax", ErrMalformed, "tier %q spans [%g, %g] outside the grid [%g, %g]",
				t.Name, t.Xmin, t.Xmax, g.Xmin, g.Xmax)
		}

		var err error
		if t.IsInterval() {
			err = validateIntervals(t, g.Xmin, g.Xmax)
		} else {
			err = validatePoints(t)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// validateIntervals checks that the intervals tile the whole grid,
// [xmin, xmax], without gaps or overlaps.
func validateIntervals(t *Tier, xmin, xmax float64) error {
	if len(t.Intervals) == 0 {
		return errAt(t.line, "intervals", ErrMalformed, "interval tier %q has no intervals", t.Name)
	}
	if !near(t.Xmin, xmin) || !near(t.Xmax, xmax) {
		return errAt(t.line, "xmax", ErrNotContiguous, "interval tier %q spans [%g, %g], the grid spans [%g, %g]",
			t.Name, t.Xmin, t.Xmax, xmin, xmax)
	}

	expected := xmin
	for j, iv := range t.Intervals {
		line := t.lines[j]

		if iv.End < iv.Start {
			return errAt(line, "xmax", ErrMalformed, "interval %d ends at %g before it starts at %g", j+1, iv.End, iv.Start)
		}
		if !near(iv.Start, expected) {
			return errAt(line, "xmin", ErrNotContiguous, "interval %d starts at %g, expected %g", j+1, iv.Start, expected)
		}

		expected = iv.End
	}

	if !near(expected, xmax) {
		last := len(t.Intervals) - 1
		return errAt(t.lines[last], "xmax", ErrNotContiguous,
			"last interval ends at %g, the grid ends at %g", expected, xmax)
	}

	return nil
}

func validatePoints(t *Tier) error {
	prev := t.Xmin
	for j, pt := range t.Points {
		if pt.Time < prev-boundaryTolerance || pt.Time > t.Xmax+boundaryTolerance {
			return errAt(t.lines[j], "number", ErrMalformed,
				"point %d at %g is out of order or outside [%g, %g]", j+1, pt.Time, t.Xmin, t.Xmax)
		}
		prev = pt.Time
	}

	return nil
}
