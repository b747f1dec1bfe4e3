package cli

import (
	"fmt"
	"io"
	"os"

	"quadstat/internal/config"
	"quadstat/internal/store"
	"quadstat/internal/system"
)

// statusLineSetting is the settings.json entry Claude Code reads.
type statusLineSetting struct {
	Type    string `json:"type"`
	Command string `json:"command"`
}

func runInit(out io.Writer) error {
	script := config.ScriptPath()
	if _, err := os.Stat(script); err != nil {
		return fmt.Errorf("%s binary not found at %s\nPlease copy the binary first:\n  mkdir -p ~/.claude/scripts && cp %s %s",
			config.AppName, script, config.AppName, script)
	}

	settings := config.SettingsFile()
	if err := store.SetJSONKey(settings, "statusLine", statusLineSetting{Type: "command", Command: script}); err != nil {
		return fmt.Errorf("failed to update settings.json: %w", err)
	}
	system.Logger.Info("settings updated", "path", settings)

	fmt.Fprintln(out, "Claude Code settings updated")
	fmt.Fprintf(out, "  statusLine command: %s\n", script)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Restart Claude Code to apply changes")
	return nil
}
