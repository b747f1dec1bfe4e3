package render

import (
	"strings"
	"testing"

	xansi "github.com/charmbracelet/x/ansi"

	"quadstat/internal/theme"
	"quadstat/internal/vcs"
)

func TestVisibleWidth(t *testing.T) {
	cases := map[string]int{
		"":            0,
		"hello world": 11,
		"🧠 abc":       6, // one pictograph plus n ASCII is n+2
		"中文":          4,
		"、ab":         4, // CJK punctuation is wide
		"⎇":           1, // outside the wide ranges
		Separator:     1,
	}
	for s, want := range cases {
		if got := VisibleWidth(s); got != want {
			t.Fatalf("VisibleWidth(%q): want %d, got %d", s, want, got)
		}
	}
}

func TestContextColor(t *testing.T) {
	th := theme.Resolve("nord")
	cases := map[int]theme.Pair{
		75: th.CtxGood,
		51: th.CtxGood,
		50: th.CtxWarn,
		35: th.CtxWarn,
		21: th.CtxWarn,
		20: th.CtxBad,
		10: th.CtxBad,
		0:  th.CtxBad,
	}
	for p, want := range cases {
		if got := ContextColor(th, p); got != want {
			t.Fatalf("ContextColor(%d): want %+v, got %+v", p, want, got)
		}
	}
}

func TestFormatTokens(t *testing.T) {
	cases := map[int64]string{
		0:         "0",
		999:       "999",
		1_000:     "1k",
		1_999:     "1k",
		200_000:   "200k",
		999_999:   "999k",
		1_000_000: "1M",
		2_900_000: "2M",
	}
	for n, want := range cases {
		if got := FormatTokens(n); got != want {
			t.Fatalf("FormatTokens(%d): want %q, got %q", n, want, got)
		}
	}
}

func TestEffectiveWidth(t *testing.T) {
	cases := map[int]int{0: 40, 80: 40, 81: 41, 200: 160}
	for tw, want := range cases {
		if got := EffectiveWidth(tw); got != want {
			t.Fatalf("EffectiveWidth(%d): want %d, got %d", tw, want, got)
		}
	}
}

func TestPowerline_Composition(t *testing.T) {
	segs := []Segment{
		{Text: " A ", Style: theme.Pair{FG: 1, BG: 2}},
		{Text: " B ", Style: theme.Pair{FG: 3, BG: 4}},
	}
	want := "\x1b[38;5;1m\x1b[48;5;2m\x1b[1m A \x1b[0m" +
		"\x1b[38;5;2m\x1b[48;5;4m\ue0b0\x1b[0m" +
		"\x1b[38;5;3m\x1b[48;5;4m\x1b[1m B \x1b[0m" +
		"\x1b[38;5;4m\ue0b0\x1b[0m"
	got := Powerline(segs)
	if got != want {
		t.Fatalf("unexpected composition:\nwant %q\ngot  %q", want, got)
	}
	if !strings.HasSuffix(got, Reset) {
		t.Fatalf("styling leaks past the end: %q", got)
	}
	if Powerline(nil) != "" {
		t.Fatalf("expected empty output for no segments")
	}
}

func TestLineWidth_MatchesSegmentsWidth(t *testing.T) {
	segs := []Segment{
		Seg("🧠 75%", theme.Pair{FG: 0, BG: 78}),
		Seg("📊 12k/200k", theme.Pair{FG: 189, BG: 60}),
		Seg("中文", theme.Pair{FG: 15, BG: 57}),
	}
	if got, want := LineWidth(Powerline(segs)), segmentsWidth(segs); got != want {
		t.Fatalf("LineWidth: want %d, got %d", want, got)
	}
}

const longBranch = "feature/long-branch-name"

// ladderStatus yields a first line whose candidates measure:
// mandatory 14, +bare branch 43, +short 48, +full 56.
func ladderStatus() Status {
	return Status{
		Dir:            "/work/proj",
		Version:        "1.0",
		ContextPercent: 80,
		VCS:            vcs.Info{Branch: longBranch, FileChanges: "~2+1", LineChanges: "+120-45"},
	}
}

func firstPlain(t *testing.T, s Status, termWidth int) string {
	t.Helper()
	lines := Lines(theme.Resolve(theme.DefaultKey), s, termWidth)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	return xansi.Strip(lines[0])
}

func TestLayout_BranchLadder(t *testing.T) {
	s := ladderStatus()

	if full := firstPlain(t, s, 96); !strings.Contains(full, "⎇ "+longBranch+" ~2+1 +120-45 ") {
		t.Fatalf("expected full branch segment, got %q", full)
	}

	short := firstPlain(t, s, 90)
	if !strings.Contains(short, "⎇ "+longBranch+" ~2+1 ") || strings.Contains(short, "+120-45") {
		t.Fatalf("line changes must be dropped first, got %q", short)
	}

	bare := firstPlain(t, s, 85)
	if !strings.Contains(bare, "⎇ "+longBranch+" ") || strings.Contains(bare, "~2+1") {
		t.Fatalf("expected bare branch, got %q", bare)
	}

	none := firstPlain(t, s, 82)
	if strings.Contains(none, "⎇") {
		t.Fatalf("branch must be omitted, never cut: %q", none)
	}
	if !strings.Contains(none, " proj ") || !strings.Contains(none, " v1.0 ") {
		t.Fatalf("mandatory segments missing: %q", none)
	}
}

func TestLayout_FitsWithinBudget(t *testing.T) {
	s := ladderStatus()
	for tw := 0; tw <= 140; tw += 7 {
		for i, l := range Lines(theme.Resolve("gruvbox"), s, tw) {
			if over := Overflow(l, tw); over != 0 {
				t.Fatalf("term width %d, line %d: %d cells over budget", tw, i+1, over)
			}
		}
	}
}

func TestOverflow(t *testing.T) {
	s := ladderStatus()
	s.Dir = "/work/" + strings.Repeat("x", 60)
	first := Lines(theme.Resolve("nord"), s, 80)[0]
	want := LineWidth(first) - EffectiveWidth(80)
	if want <= 0 {
		t.Fatalf("fixture must overflow, width %d", LineWidth(first))
	}
	if got := Overflow(first, 80); got != want {
		t.Fatalf("Overflow: want %d, got %d", want, got)
	}
	if got := Overflow(first, 400); got != 0 {
		t.Fatalf("wide terminal must not overflow, got %d", got)
	}
	if got := Overflow("", 0); got != 0 {
		t.Fatalf("empty line must not overflow, got %d", got)
	}
}

func TestLayout_LineChangesWithoutFileChanges(t *testing.T) {
	s := ladderStatus()
	s.VCS.FileChanges = ""
	if got := firstPlain(t, s, 200); !strings.Contains(got, "⎇ "+longBranch+" +120-45 ") {
		t.Fatalf("expected line changes after branch, got %q", got)
	}
}

func TestLayout_MandatorySegmentsAlwaysKept(t *testing.T) {
	s := ladderStatus()
	s.Dir = "/work/" + strings.Repeat("x", 60)
	got := firstPlain(t, s, 80)
	if !strings.Contains(got, strings.Repeat("x", 60)) || !strings.Contains(got, "v1.0") {
		t.Fatalf("mandatory segments dropped: %q", got)
	}
	if strings.Contains(got, "⎇") {
		t.Fatalf("branch must not be added to an overflowing line: %q", got)
	}
}

func TestLayout_SecondLine(t *testing.T) {
	th := theme.Resolve("dracula")
	s := Status{
		Dir:            "/w/p",
		Version:        "2.0",
		Model:          "Opus",
		ContextPercent: 15,
		Tokens:         Tokens{Total: 123_456, WindowSize: 200_000},
	}
	lines := Lines(th, s, 120)
	want := " 🧠 15% \ue0b0 📊 123k/200k \ue0b0 Opus \ue0b0"
	if got := xansi.Strip(lines[1]); got != want {
		t.Fatalf("second line:\nwant %q\ngot  %q", want, got)
	}
	if !strings.HasPrefix(lines[1], fg256(th.CtxBad.FG)+bg256(th.CtxBad.BG)) {
		t.Fatalf("context must use the bad role: %q", lines[1])
	}
}

func TestLayout_SecondLineDropsWhatDoesNotFit(t *testing.T) {
	s := Status{
		Dir:            "/w/p",
		Version:        "2.0",
		Model:          strings.Repeat("M", 30),
		ContextPercent: 60,
		Tokens:         Tokens{Total: 5, WindowSize: 200_000},
	}
	plain := xansi.Strip(Lines(theme.Resolve("nord"), s, 40)[1])
	if !strings.Contains(plain, "📊 5/200k") {
		t.Fatalf("expected tokens segment, got %q", plain)
	}
	if strings.Contains(plain, "MMM") {
		t.Fatalf("model does not fit after tokens and must be dropped: %q", plain)
	}
}

func TestLayout_TokensNeedBothValues(t *testing.T) {
	s := Status{Dir: "/w/p", Version: "1", ContextPercent: 90, Tokens: Tokens{Total: 1000}}
	if plain := xansi.Strip(Lines(theme.Resolve("nord"), s, 120)[1]); strings.Contains(plain, "📊") {
		t.Fatalf("tokens shown without a window size: %q", plain)
	}
}

func TestRender_EndToEndDefaults(t *testing.T) {
	th := theme.Resolve(theme.DefaultKey)
	out := Render(th, Status{Dir: ".", Version: "?", ContextPercent: 75}, 80)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), out)
	}

	first := xansi.Strip(lines[0])
	if !strings.Contains(first, " v? ") || strings.Contains(first, "⎇") {
		t.Fatalf("unexpected first line %q", first)
	}
	if got := xansi.Strip(lines[1]); got != " 🧠 75% \ue0b0" {
		t.Fatalf("unexpected second line %q", got)
	}
	if !strings.HasPrefix(lines[1], fg256(th.CtxGood.FG)+bg256(th.CtxGood.BG)+Bold) {
		t.Fatalf("context must use the good role: %q", lines[1])
	}
}

func TestDirName(t *testing.T) {
	cases := map[string]string{"/work/proj": "proj", "/work/proj/": "proj", "/": "/"}
	for in, want := range cases {
		if got := dirName(in); got != want {
			t.Fatalf("dirName(%q): want %q, got %q", in, want, got)
		}
	}
	if dirName("") == "" {
		t.Fatalf("dirName of empty path must not be empty")
	}
}
