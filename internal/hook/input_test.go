package hook

import (
	"errors"
	"strings"
	"testing"
)

func TestParse_Full(t *testing.T) {
	payload := `{
  "session_id": "abc",
  "version": "1.0.80",
  "cwd": "/work/proj",
  "model": {"id": "claude-x", "display_name": "Opus"},
  "context_window": {"remaining_percentage": 42, "total_input_tokens": 123456, "context_window_size": 200000}
}`
	in, err := Parse(strings.NewReader(payload))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if in.VersionOrDefault() != "1.0.80" || in.CwdOrDefault() != "/work/proj" {
		t.Fatalf("unexpected version/cwd: %q %q", in.VersionOrDefault(), in.CwdOrDefault())
	}
	if in.ContextPercent() != 42 {
		t.Fatalf("expected 42%%, got %d", in.ContextPercent())
	}
	if in.TotalTokens() != 123456 || in.WindowSize() != 200000 {
		t.Fatalf("unexpected tokens: %d/%d", in.TotalTokens(), in.WindowSize())
	}
	if in.ModelName() != "Opus" {
		t.Fatalf("expected display name, got %q", in.ModelName())
	}
}

func TestParse_Defaults(t *testing.T) {
	in, err := Parse(strings.NewReader(`{}`))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if in.VersionOrDefault() != DefaultVersion {
		t.Fatalf("expected version placeholder, got %q", in.VersionOrDefault())
	}
	if in.CwdOrDefault() != DefaultCwd {
		t.Fatalf("expected cwd default, got %q", in.CwdOrDefault())
	}
	if in.ContextPercent() != DefaultPercent {
		t.Fatalf("expected default percent, got %d", in.ContextPercent())
	}
	if in.TotalTokens() != 0 || in.WindowSize() != 0 || in.ModelName() != "" {
		t.Fatalf("expected zero optional values, got %+v", in)
	}
}

func TestContextPercent_ClampAndTruncate(t *testing.T) {
	cases := map[string]int{
		`{"context_window":{"remaining_percentage":-5}}`:     0,
		`{"context_window":{"remaining_percentage":150}}`:    100,
		`{"context_window":{"remaining_percentage":62.9}}`:   62,
		`{"context_window":{}}`:                              100,
		`{"context_window":{"remaining_percentage":0}}`:      0,
		`{"context_window":{"remaining_percentage":1e300}}`:  100,
		`{"context_window":{"remaining_percentage":-1e300}}`: 0,
	}
	for payload, want := range cases {
		in, err := Parse(strings.NewReader(payload))
		if err != nil {
			t.Fatalf("Parse(%s) error: %v", payload, err)
		}
		if got := in.ContextPercent(); got != want {
			t.Fatalf("Parse(%s): want %d, got %d", payload, want, got)
		}
	}
}

func TestModelName_FallsBackToID(t *testing.T) {
	in, err := Parse(strings.NewReader(`{"model":{"id":"claude-sonnet"}}`))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if in.ModelName() != "claude-sonnet" {
		t.Fatalf("expected id fallback, got %q", in.ModelName())
	}
}

func TestParse_Malformed(t *testing.T) {
	for _, payload := range []string{"", "{", `{"context_window": "nope"}`, "not json"} {
		if _, err := Parse(strings.NewReader(payload)); err == nil {
			t.Fatalf("expected error for %q", payload)
		}
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("boom") }

func TestParse_ReadError(t *testing.T) {
	_, err := Parse(failingReader{})
	if err == nil || !strings.Contains(err.Error(), "reading stdin") {
		t.Fatalf("expected wrapped read error, got %v", err)
	}
}
