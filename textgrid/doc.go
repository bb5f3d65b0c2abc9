// SPDX-License-Identifier: EPL-2.0

/*
Package textgrid parses Praat TextGrid annotation files.

Both text layouts Praat writes are understood: the long one made of
"key = value" lines and the compact one with a bare value per line. Files
may be ASCII, UTF-8 (with or without a byte-order mark) or UTF-16 with a
byte-order mark; the detected encoding and layout are reported on the
result.

Interval tiers are validated on load: every interval must start where the
previous one ended and the tier must be covered from its start to its end.
Point tiers (class "TextTier") are kept in Tier.Points.

	g, err := textgrid.ParseFile("take1.TextGrid")
	if err != nil {
		return err
	}
	intervals, err := g.Intervals()
*/
package textgrid
