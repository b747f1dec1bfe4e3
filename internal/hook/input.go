package hook

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"
)

// Defaults applied when the payload omits a field.
const (
	DefaultVersion = "?"
	DefaultCwd     = "."
	DefaultPercent = 100
)

// Input is the session snapshot the assistant pipes to its status line
// command. Every field is optional.
type Input struct {
	SessionID     string         `json:"session_id,omitempty"`
	Version       *string        `json:"version,omitempty"`
	Cwd           *string        `json:"cwd,omitempty"`
	Model         *Model         `json:"model,omitempty"`
	ContextWindow *ContextWindow `json:"context_window,omitempty"`
}

type Model struct {
	ID          string `json:"id,omitempty"`
	DisplayName string `json:"display_name,omitempty"`
}

type ContextWindow struct {
	// Some hosts send fractional percentages; they are truncated.
	RemainingPercentage *float64 `json:"remaining_percentage,omitempty"`
	TotalInputTokens    *int64   `json:"total_input_tokens,omitempty"`
	ContextWindowSize   *int64   `json:"context_window_size,omitempty"`
}

// Parse decodes a hook payload. Malformed JSON is an error; the caller
// must not render anything in that case.
func Parse(r io.Reader) (Input, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Input{}, fmt.Errorf("reading stdin: %w", err)
	}
	var in Input
	if err := json.Unmarshal(data, &in); err != nil {
		return Input{}, fmt.Errorf("parsing JSON: %w", err)
	}
	return in, nil
}

// VersionOrDefault returns the host version or "?".
func (in Input) VersionOrDefault() string {
	if in.Version == nil || strings.TrimSpace(*in.Version) == "" {
		return DefaultVersion
	}
	return strings.TrimSpace(*in.Version)
}

// CwdOrDefault returns the working directory or ".".
func (in Input) CwdOrDefault() string {
	if in.Cwd == nil || strings.TrimSpace(*in.Cwd) == "" {
		return DefaultCwd
	}
	return *in.Cwd
}

// ContextPercent is the remaining context window, clamped to 0..100.
func (in Input) ContextPercent() int {
	if in.ContextWindow == nil || in.ContextWindow.RemainingPercentage == nil {
		return DefaultPercent
	}
	// clamp before converting: int() of an out-of-range float is undefined
	p := *in.ContextWindow.RemainingPercentage
	switch {
	case math.IsNaN(p), p < 0:
		return 0
	case p > 100:
		return 100
	}
	return int(p)
}

// TotalTokens returns total input tokens, 0 when unknown.
func (in Input) TotalTokens() int64 {
	if in.ContextWindow == nil || in.ContextWindow.TotalInputTokens == nil {
		return 0
	}
	return *in.ContextWindow.TotalInputTokens
}

// WindowSize returns the context window size, 0 when unknown.
func (in Input) WindowSize() int64 {
	if in.ContextWindow == nil || in.ContextWindow.ContextWindowSize == nil {
		return 0
	}
	return *in.ContextWindow.ContextWindowSize
}

// ModelName prefers the display name over the id.
func (in Input) ModelName() string {
	if in.Model == nil {
		return ""
	}
	if name := strings.TrimSpace(in.Model.DisplayName); name != "" {
		return name
	}
	return strings.TrimSpace(in.Model.ID)
}
