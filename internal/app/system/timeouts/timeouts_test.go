package timeouts

import (
	"testing"
	"time"
)

func TestConfigureOverridesOnlyNonZero(t *testing.T) {
	t.Cleanup(Reset)

	Configure(Config{Short: 42 * time.Second})

	if got := Short(); got != 42*time.Second {
		t.Errorf("Short = %v, want 42s", got)
	}
	if got := Medium(); got != 10*time.Second {
		t.Errorf("Medium = %v, want the default 10s", got)
	}
}

func TestConfigureFromEnv(t *testing.T) {
	t.Cleanup(Reset)
	t.Setenv("TIMEOUT_PING", "750ms")
	t.Setenv("TIMEOUT_LONG", "not-a-duration")

	if n := ConfigureFromEnv(); n != 1 {
		t.Errorf("ConfigureFromEnv = %d, want 1", n)
	}
	if got := Ping(); got != 750*time.Millisecond {
		t.Errorf("Ping = %v, want 750ms", got)
	}
	if got := Long(); got != 30*time.Second {
		t.Errorf("Long = %v, want the default 30s", got)
	}
}
