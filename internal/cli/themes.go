package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"quadstat/internal/config"
	"quadstat/internal/system"
	"quadstat/internal/theme"
)

func runListThemes(out io.Writer) error {
	active := theme.Current(config.LoadTheme).Key
	entries := theme.List()

	keyW, nameW := 0, 0
	for _, e := range entries {
		keyW = max(keyW, runewidth.StringWidth(e.Key))
		nameW = max(nameW, runewidth.StringWidth(e.Name))
	}

	// Swatches are plain text when out is not a color terminal
	r := lipgloss.NewRenderer(out)

	fmt.Fprintln(out, "Available themes:")
	for _, e := range entries {
		marker := "  "
		if e.Key == active {
			marker = "* "
		}
		t, _ := theme.Lookup(e.Key)
		line := marker + runewidth.FillRight(e.Key, keyW) + " - " + runewidth.FillRight(e.Name, nameW) + "  " + swatch(r, t)
		fmt.Fprintln(out, strings.TrimRight(line, " "))
	}
	return nil
}

// swatch previews each role of t as a small colored block.
func swatch(r *lipgloss.Renderer, t theme.Theme) string {
	roles := []theme.Pair{t.Model, t.Version, t.Branch, t.CtxGood, t.CtxWarn, t.CtxBad}
	var b strings.Builder
	for _, p := range roles {
		st := r.NewStyle().
			Foreground(lipgloss.Color(strconv.Itoa(int(p.FG)))).
			Background(lipgloss.Color(strconv.Itoa(int(p.BG))))
		b.WriteString(st.Render("▪"))
	}
	return b.String()
}

func runSetTheme(out io.Writer, name string) error {
	name = strings.TrimSpace(name)
	if _, ok := theme.Lookup(name); !ok {
		msg := fmt.Sprintf("unknown theme: %s", name)
		if s := theme.Suggest(name); s != "" {
			msg += fmt.Sprintf(" (did you mean %q?)", s)
		}
		return fmt.Errorf("%s\nUse --list-themes to see available themes", msg)
	}
	if err := config.SaveTheme(name); err != nil {
		return fmt.Errorf("failed to save theme: %w", err)
	}
	system.Logger.Info("theme saved", "path", config.ThemeFile())
	fmt.Fprintf(out, "Theme set to: %s\n", name)
	return nil
}
