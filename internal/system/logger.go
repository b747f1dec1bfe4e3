package system

import (
	"os"
	"strings"

	clog "github.com/charmbracelet/log"
)

// EnvDebug enables debug logging when set to any non-empty value.
const EnvDebug = "CC_QUADSTAT_DEBUG"

// Logger is the shared application logger. It writes to stderr so the
// rendered status line on stdout stays clean, and stays quiet below warn
// unless EnvDebug is set.
var Logger = clog.NewWithOptions(os.Stderr, clog.Options{
	ReportTimestamp: true,
	Prefix:          "cc-quadstat",
	Level:           levelFromEnv(),
})

func levelFromEnv() clog.Level {
	if strings.TrimSpace(os.Getenv(EnvDebug)) != "" {
		return clog.DebugLevel
	}
	return clog.WarnLevel
}
