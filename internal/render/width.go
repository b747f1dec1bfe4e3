package render

import (
	xansi "github.com/charmbracelet/x/ansi"
)

// VisibleWidth estimates how many terminal cells s occupies.
//
// This is a deliberately coarse heuristic, not East Asian Width or
// grapheme segmentation: codepoints in the pictographic blocks
// (U+1F300..U+1FAFF) and the CJK range (U+3000..U+9FFF) count as two
// cells, everything else as one. s must not contain escape sequences.
func VisibleWidth(s string) int {
	n := 0
	for _, r := range s {
		switch {
		case r >= 0x1F300 && r <= 0x1FAFF:
			n += 2
		case r >= 0x3000 && r <= 0x9FFF:
			n += 2
		default:
			n++
		}
	}
	return n
}

// LineWidth measures an already rendered line by stripping its SGR
// sequences first. Separator glyphs count one cell each.
func LineWidth(rendered string) int {
	return VisibleWidth(xansi.Strip(rendered))
}

// segmentsWidth is the width a line of segs occupies once rendered: the
// text of every segment plus one cell for each trailing separator.
func segmentsWidth(segs []Segment) int {
	w := 0
	for _, s := range segs {
		w += VisibleWidth(s.Text)
	}
	return w + len(segs)
}

// Overflow is how many cells a rendered line runs past the effective
// width for termWidth, 0 when it fits. Only mandatory segments can
// overflow; optional ones are dropped by the layout first.
func Overflow(rendered string, termWidth int) int {
	if d := LineWidth(rendered) - EffectiveWidth(termWidth); d > 0 {
		return d
	}
	return 0
}
