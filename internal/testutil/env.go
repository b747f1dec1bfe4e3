package testutil

import (
	"os"
	"testing"
)

// WithEnv sets key to val for the duration of a test; an empty val unsets
// it. The returned func restores the previous state and is meant for
// defer or t.Cleanup.
func WithEnv(t *testing.T, key, val string) func() {
	t.Helper()
	old, had := os.LookupEnv(key)
	if val == "" {
		_ = os.Unsetenv(key)
	} else {
		_ = os.Setenv(key, val)
	}
	return func() {
		if had {
			_ = os.Setenv(key, old)
			return
		}
		_ = os.Unsetenv(key)
	}
}
