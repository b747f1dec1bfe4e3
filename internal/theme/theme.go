package theme

import (
	"os"
	"strings"

	"github.com/sahilm/fuzzy"
)

// EnvOverride names the environment variable that overrides the persisted
// theme for the current process only.
const EnvOverride = "CC_THEME"

// DefaultKey is used whenever a requested theme is not in the table.
const DefaultKey = "tokyo-night"

// Pair is a 256-color foreground/background combination.
type Pair struct {
	FG uint8
	BG uint8
}

// Theme maps each semantic role of the status line to a color pair.
type Theme struct {
	Key     string
	Name    string
	Model   Pair
	Version Pair
	Branch  Pair
	CtxGood Pair
	CtxWarn Pair
	CtxBad  Pair
}

// Entry is one row of List.
type Entry struct {
	Key  string
	Name string
}

var themes = []Theme{
	{
		Key:     "tokyo-night",
		Name:    "Tokyo Night",
		Model:   Pair{15, 57},
		Version: Pair{189, 60},
		Branch:  Pair{0, 179},
		CtxGood: Pair{0, 78},
		CtxWarn: Pair{0, 214},
		CtxBad:  Pair{15, 197},
	},
	{
		Key:     "nord",
		Name:    "Nord",
		Model:   Pair{0, 110},
		Version: Pair{254, 60},
		Branch:  Pair{0, 179},
		CtxGood: Pair{0, 108},
		CtxWarn: Pair{0, 222},
		CtxBad:  Pair{15, 167},
	},
	{
		Key:     "dracula",
		Name:    "Dracula",
		Model:   Pair{15, 141},
		Version: Pair{231, 61},
		Branch:  Pair{0, 228},
		CtxGood: Pair{0, 84},
		CtxWarn: Pair{0, 215},
		CtxBad:  Pair{15, 210},
	},
	{
		Key:     "gruvbox",
		Name:    "Gruvbox",
		Model:   Pair{230, 66},
		Version: Pair{223, 239},
		Branch:  Pair{235, 214},
		CtxGood: Pair{235, 142},
		CtxWarn: Pair{235, 208},
		CtxBad:  Pair{230, 124},
	},
	{
		Key:     "catppuccin",
		Name:    "Catppuccin",
		Model:   Pair{0, 183},
		Version: Pair{189, 60},
		Branch:  Pair{0, 223},
		CtxGood: Pair{0, 158},
		CtxWarn: Pair{0, 223},
		CtxBad:  Pair{15, 211},
	},
	{
		Key:     "monokai",
		Name:    "Monokai",
		Model:   Pair{15, 197},
		Version: Pair{231, 239},
		Branch:  Pair{0, 186},
		CtxGood: Pair{0, 148},
		CtxWarn: Pair{0, 208},
		CtxBad:  Pair{15, 196},
	},
	{
		Key:     "solarized",
		Name:    "Solarized",
		Model:   Pair{230, 37},
		Version: Pair{230, 240},
		Branch:  Pair{235, 136},
		CtxGood: Pair{230, 64},
		CtxWarn: Pair{235, 166},
		CtxBad:  Pair{230, 124},
	},
	{
		Key:     "default",
		Name:    "Default",
		Model:   Pair{0, 44},
		Version: Pair{0, 242},
		Branch:  Pair{0, 178},
		CtxGood: Pair{0, 34},
		CtxWarn: Pair{0, 178},
		CtxBad:  Pair{15, 160},
	},
}

// Lookup returns the theme registered under key (case-sensitive).
func Lookup(key string) (Theme, bool) {
	for _, t := range themes {
		if t.Key == key {
			return t, true
		}
	}
	return Theme{}, false
}

// Resolve is Lookup with a fallback to DefaultKey; it never fails.
func Resolve(key string) Theme {
	if t, ok := Lookup(key); ok {
		return t
	}
	t, _ := Lookup(DefaultKey)
	return t
}

// List returns theme keys and display names in declaration order.
func List() []Entry {
	out := make([]Entry, 0, len(themes))
	for _, t := range themes {
		out = append(out, Entry{Key: t.Key, Name: t.Name})
	}
	return out
}

// Keys returns the registered keys in declaration order.
func Keys() []string {
	out := make([]string, 0, len(themes))
	for _, t := range themes {
		out = append(out, t.Key)
	}
	return out
}

// Suggest returns the closest registered key for an unknown name, or ""
// when nothing matches.
func Suggest(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	matches := fuzzy.Find(strings.ToLower(name), Keys())
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Str
}

// Selected picks the effective theme key: the env override first, then
// the persisted value, then DefaultKey. persisted may be nil.
func Selected(persisted func() string) string {
	if name := strings.TrimSpace(os.Getenv(EnvOverride)); name != "" {
		return name
	}
	if persisted != nil {
		if name := strings.TrimSpace(persisted()); name != "" {
			return name
		}
	}
	return DefaultKey
}

// Current resolves the effective theme for a render.
func Current(persisted func() string) Theme {
	return Resolve(Selected(persisted))
}
