package render

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"quadstat/internal/theme"
	"quadstat/internal/vcs"
)

// Columns kept free for the host UI's own text on the prompt row, and the
// narrowest budget we ever lay out against.
const (
	ReservedWidth = 40
	MinWidth      = 40
)

// Tokens is the context window usage in absolute numbers. Zero means
// unknown.
type Tokens struct {
	Total      int64
	WindowSize int64
}

// Status is everything one render needs besides the theme and width.
type Status struct {
	Dir            string
	Version        string
	Model          string
	ContextPercent int
	VCS            vcs.Info
	Tokens         Tokens
}

// EffectiveWidth is the budget segments must fit in.
func EffectiveWidth(termWidth int) int {
	w := termWidth - ReservedWidth
	if w < MinWidth {
		return MinWidth
	}
	return w
}

// ContextColor picks the theme role for the remaining context percent:
// above 50 is good, 21..50 warn, 20 and below bad.
func ContextColor(t theme.Theme, percent int) theme.Pair {
	switch {
	case percent > 50:
		return t.CtxGood
	case percent > 20:
		return t.CtxWarn
	default:
		return t.CtxBad
	}
}

// FormatTokens abbreviates n with a truncating k/M suffix.
func FormatTokens(n int64) string {
	switch {
	case n >= 1_000_000:
		return strconv.FormatInt(n/1_000_000, 10) + "M"
	case n >= 1_000:
		return strconv.FormatInt(n/1_000, 10) + "k"
	default:
		return strconv.FormatInt(n, 10)
	}
}

// Render lays out and colors both status lines, joined by a newline.
func Render(t theme.Theme, s Status, termWidth int) string {
	return strings.Join(Lines(t, s, termWidth), "\n")
}

// Lines returns the rendered lines. It never fails: optional segments that
// do not fit are dropped, never cut.
func Lines(t theme.Theme, s Status, termWidth int) []string {
	limit := EffectiveWidth(termWidth)
	return []string{
		Powerline(firstLine(t, s, limit)),
		Powerline(secondLine(t, s, limit)),
	}
}

// firstLine: directory and version, then the branch with its summaries.
func firstLine(t theme.Theme, s Status, limit int) []Segment {
	line := []Segment{
		Seg(dirName(s.Dir), t.Model),
		Seg("v"+s.Version, t.Version),
	}
	if s.VCS.Branch == "" {
		return line
	}
	var variants []Segment
	for _, text := range branchTexts(s.VCS) {
		variants = append(variants, Seg(text, t.Branch))
	}
	return fit(line, limit, variants...)
}

// secondLine: context percent, then token usage, then the model name.
func secondLine(t theme.Theme, s Status, limit int) []Segment {
	line := []Segment{
		Seg(fmt.Sprintf("🧠 %d%%", s.ContextPercent), ContextColor(t, s.ContextPercent)),
	}
	if s.Tokens.Total > 0 && s.Tokens.WindowSize > 0 {
		text := "📊 " + FormatTokens(s.Tokens.Total) + "/" + FormatTokens(s.Tokens.WindowSize)
		line = fit(line, limit, Seg(text, t.Version))
	}
	if s.Model != "" {
		line = fit(line, limit, Seg(s.Model, t.Model))
	}
	return line
}

// branchTexts lists the branch segment from richest to barest.
func branchTexts(info vcs.Info) []string {
	base := "⎇ " + info.Branch
	var out []string
	if info.FileChanges != "" && info.LineChanges != "" {
		out = append(out, base+" "+info.FileChanges+" "+info.LineChanges)
	}
	if info.FileChanges != "" {
		out = append(out, base+" "+info.FileChanges)
	} else if info.LineChanges != "" {
		out = append(out, base+" "+info.LineChanges)
	}
	return append(out, base)
}

// fit appends the first variant that keeps line within limit. Segments
// already in line are never revisited.
func fit(line []Segment, limit int, variants ...Segment) []Segment {
	used := segmentsWidth(line)
	for _, v := range variants {
		if used+VisibleWidth(v.Text)+1 <= limit {
			return append(line, v)
		}
	}
	return line
}

func dirName(dir string) string {
	if dir == "" {
		dir = "."
	}
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	name := filepath.Base(dir)
	if name == "" || name == string(filepath.Separator) {
		return dir
	}
	return name
}
