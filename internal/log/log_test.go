package log

import (
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"Warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"bogus":   slog.LevelInfo,
	} {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q)=%v, want %v", in, got, want)
		}
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("GASKET_LOG_LEVEL", "debug")
	t.Setenv("GASKET_LOG_FORMAT", "json")
	t.Setenv("GASKET_LOG_FILE", "")
	opts := FromEnv()
	if opts.Level != "debug" || opts.Format != "json" || opts.File != "" {
		t.Errorf("FromEnv()=%+v", opts)
	}
}

func TestWithComponent(t *testing.T) {
	Init(Options{Level: "warn"})
	if l := WithComponent("test"); l == nil {
		t.Fatal("nil logger")
	}
}
