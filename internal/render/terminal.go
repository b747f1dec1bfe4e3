package render

import (
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"quadstat/internal/system"
)

// DefaultTermWidth is used when no terminal can be queried.
const DefaultTermWidth = 80

// TermWidth asks the terminal for its column count. The host usually pipes
// stdout, so stderr and stdin are tried too, then $COLUMNS.
func TermWidth() int {
	for _, f := range []*os.File{os.Stdout, os.Stderr, os.Stdin} {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			return w
		}
	}
	if n, err := strconv.Atoi(strings.TrimSpace(os.Getenv("COLUMNS"))); err == nil && n > 0 {
		return n
	}
	system.Logger.Debug("terminal width unavailable, using default", "width", DefaultTermWidth)
	return DefaultTermWidth
}
