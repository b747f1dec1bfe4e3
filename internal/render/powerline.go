package render

import (
	"strconv"
	"strings"

	"quadstat/internal/theme"
)

// SGR pieces and the powerline arrow.
const (
	Reset     = "\x1b[0m"
	Bold      = "\x1b[1m"
	Separator = "\ue0b0"
)

// Segment is one colored, padded unit of a line.
type Segment struct {
	Text  string
	Style theme.Pair
}

// Seg builds a segment with the usual one-space padding on both sides.
func Seg(text string, style theme.Pair) Segment {
	return Segment{Text: " " + text + " ", Style: style}
}

func fg256(code uint8) string { return "\x1b[38;5;" + strconv.Itoa(int(code)) + "m" }
func bg256(code uint8) string { return "\x1b[48;5;" + strconv.Itoa(int(code)) + "m" }

// Powerline joins segs left to right. Each separator takes the current
// segment's background as its foreground and the next segment's
// background as its own, so the arrow flows into the next block; the last
// arrow ends against the terminal's default background.
func Powerline(segs []Segment) string {
	var b strings.Builder
	for i, s := range segs {
		b.WriteString(fg256(s.Style.FG))
		b.WriteString(bg256(s.Style.BG))
		b.WriteString(Bold)
		b.WriteString(s.Text)
		b.WriteString(Reset)

		b.WriteString(fg256(s.Style.BG))
		if i < len(segs)-1 {
			b.WriteString(bg256(segs[i+1].Style.BG))
		}
		b.WriteString(Separator)
		b.WriteString(Reset)
	}
	return b.String()
}
