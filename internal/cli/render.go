package cli

import (
	"context"
	"fmt"
	"io"

	"quadstat/internal/config"
	"quadstat/internal/hook"
	"quadstat/internal/render"
	"quadstat/internal/system"
	"quadstat/internal/theme"
	"quadstat/internal/vcs"
)

func runRender(ctx context.Context, in io.Reader, out io.Writer, d deps) error {
	payload, err := hook.Parse(in)
	if err != nil {
		return err
	}

	cwd := payload.CwdOrDefault()
	info := vcs.Inspect(ctx, d.runner, cwd)
	th := theme.Current(config.LoadTheme)
	width := d.termWidth()

	system.Logger.Debug("rendering",
		"theme", th.Key,
		"cwd", cwd,
		"term_width", width,
		"effective_width", render.EffectiveWidth(width),
		"branch", info.Branch,
	)

	lines := render.Lines(th, render.Status{
		Dir:            cwd,
		Version:        payload.VersionOrDefault(),
		Model:          payload.ModelName(),
		ContextPercent: payload.ContextPercent(),
		VCS:            info,
		Tokens: render.Tokens{
			Total:      payload.TotalTokens(),
			WindowSize: payload.WindowSize(),
		},
	}, width)

	for i, l := range lines {
		if over := render.Overflow(l, width); over > 0 {
			system.Logger.Warn("line wider than terminal", "line", i+1, "over", over)
		}
		if _, err := fmt.Fprintln(out, l); err != nil {
			return err
		}
	}
	return nil
}
