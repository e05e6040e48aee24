package telemetry

import (
	"context"
	"log/slog"
	"testing"
)

func TestInitSlogLevels(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	ctx := context.Background()
	cases := []struct {
		verbose bool
		quiet   bool
		level   slog.Level
		enabled bool
	}{
		{false, false, slog.LevelInfo, true},
		{false, false, slog.LevelDebug, false},
		{true, false, slog.LevelDebug, true},
		// quiet mode suppresses progress messages entirely
		{false, true, slog.LevelInfo, false},
		{false, true, slog.LevelError, true},
		// quiet wins over verbose
		{true, true, slog.LevelInfo, false},
	}
	for _, test := range cases {
		InitSlog(test.verbose, test.quiet)
		got := slog.Default().Enabled(ctx, test.level)
		if got != test.enabled {
			t.Fatalf(
				"verbose=%v quiet=%v: Enabled(%v) = %v, expected %v",
				test.verbose, test.quiet, test.level, got, test.enabled,
			)
		}
	}
}
