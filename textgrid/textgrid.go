// SPDX-License-Identifier: EPL-2.0

package textgrid

// Tier classes as written in TextGrid files.
const (
	ClassInterval = "IntervalTier"
	ClassText     = "TextTier"
)

// Interval is a labeled time span [Start, End) in seconds. Label is empty
// for silence or unlabeled stretches.
type Interval struct {
	Label string
	Start float64
	End   float64
}

// Duration returns End - Start in seconds.
func (iv Interval) Duration() float64 {
	return iv.End - iv.Start
}

// Point is a labeled instant of a TextTier.
type Point struct {
	Time float64
	Mark string
}

// Tier is one annotation layer. Interval tiers fill Intervals, point tiers
// (class TextTier) fill Points.
type Tier struct {
	Class     string
	Name      string
	Xmin      float64
	Xmax      float64
	Intervals []Interval
	Points    []Point

	// source line of the tier header and of each entry, for error reports
	line  int
	lines []int
}

// IsInterval reports whether t is an interval tier.
func (t *Tier) IsInterval() bool {
	return t.Class == ClassInterval
}

// TextGrid is a parsed annotation file.
type TextGrid struct {
	Xmin     float64
	Xmax     float64
	Tiers    []Tier
	Encoding Encoding
	Dialect  Dialect
}

// Intervals returns a copy of the intervals of the first interval tier.
func (g *TextGrid) Intervals() ([]Interval, error) {
	for i := range g.Tiers {
		if g.Tiers[i].IsInterval() {
			return append([]Interval(nil), g.Tiers[i].Intervals...), nil
		}
	}

	return nil, ErrNoIntervalTier
}

// Tier returns the first tier called name.
func (g *TextGrid) Tier(name string) (*Tier, bool) {
	for i := range g.Tiers {
		if g.Tiers[i].Name == name {
			return &g.Tiers[i], true
		}
	}

	return nil, false
}

// Dialect identifies which of the two text layouts a file used.
type Dialect int

const (
	// DialectLong is Praat's verbose layout: "key = value" lines and
	// "intervals [n]:" headers.
	DialectLong Dialect = iota + 1
	// DialectShort is the compact layout with one bare value per line.
	DialectShort
)

func (d Dialect) String() string {
	switch d {
	case DialectLong:
		return "long"
	case DialectShort:
		return "short"
	default:
		return "unknown"
	}
}
