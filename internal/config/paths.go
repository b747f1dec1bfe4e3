package config

import (
	"os"
	"path/filepath"
	"strings"

	"quadstat/internal/store"
)

// AppName is both the binary name and the config directory name.
const AppName = "cc-quadstat"

// Home returns $HOME, falling back to the system temp dir when unset so
// a render never fails for lack of a home directory.
func Home() string {
	if home := strings.TrimSpace(os.Getenv("HOME")); home != "" {
		return home
	}
	return os.TempDir()
}

// Dir returns the cc-quadstat config directory ($HOME/.config/cc-quadstat).
func Dir() string {
	return filepath.Join(Home(), ".config", AppName)
}

// ThemeFile holds the persisted theme key.
func ThemeFile() string {
	return filepath.Join(Dir(), "theme")
}

// ClaudeDir is the assistant's per-user directory.
func ClaudeDir() string {
	return filepath.Join(Home(), ".claude")
}

// SettingsFile is the assistant's settings.json that --init edits.
func SettingsFile() string {
	return filepath.Join(ClaudeDir(), "settings.json")
}

// ScriptPath is where --init expects the installed binary.
func ScriptPath() string {
	return filepath.Join(ClaudeDir(), "scripts", AppName)
}

// LoadTheme returns the persisted theme key, "" when none is saved or the
// file cannot be read.
func LoadTheme() string {
	name, err := store.LoadLine(ThemeFile())
	if err != nil {
		return ""
	}
	return name
}

// SaveTheme persists key, creating the config directory as needed.
func SaveTheme(key string) error {
	return store.SaveLine(ThemeFile(), key)
}
