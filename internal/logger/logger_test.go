package logger

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestSetup(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	tests := []struct {
		name      string
		verbose   bool
		wantDebug bool
	}{
		{"quiet", false, false},
		{"verbose", true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Setup(&buf, tt.verbose)

			slog.Debug("wrote file", "path", "README.md")
			slog.Warn("something odd")

			out := buf.String()
			if got := strings.Contains(out, "wrote file"); got != tt.wantDebug {
				t.Errorf("debug record present = %v, want %v\n%s", got, tt.wantDebug, out)
			}
			if !strings.Contains(out, "something odd") {
				t.Errorf("warning should always be logged:\n%s", out)
			}
		})
	}
}
