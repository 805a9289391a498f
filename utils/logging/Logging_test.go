package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestSetupWithWriter(t *testing.T) {
	var buf bytes.Buffer
	logger, err := SetupWithWriter("info", &buf)
	if err != nil {
		t.Fatal(err)
	}

	logger.Debug().Msg("hidden")
	logger.Info().Int("steps", 3).Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug message logged at info level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "steps=3") {
		t.Errorf("info message missing: %q", out)
	}

	if _, err := SetupWithWriter("loud", &buf); err == nil {
		t.Error("setup: want error for unknown level")
	}
}
