package timeouts

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestConfigureAndReset(t *testing.T) {
	t.Cleanup(Reset)

	Configure(Config{Render: 3 * time.Second})
	if Render() != 3*time.Second {
		t.Errorf("Render = %v", Render())
	}
	if Ping() != DefaultPing {
		t.Errorf("Ping changed to %v by a zero value", Ping())
	}

	Reset()
	if Current() != (Config{Ping: DefaultPing, Render: DefaultRender}) {
		t.Errorf("Current after Reset = %+v", Current())
	}
}

func TestConfigureFromEnv(t *testing.T) {
	t.Cleanup(Reset)
	t.Setenv("TIMEOUT_PING", "750ms")
	t.Setenv("TIMEOUT_RENDER", "not-a-duration")

	if n := ConfigureFromEnv(); n != 1 {
		t.Errorf("configured = %d, want 1", n)
	}
	if Ping() != 750*time.Millisecond {
		t.Errorf("Ping = %v", Ping())
	}
	if Render() != DefaultRender {
		t.Errorf("Render = %v, want default", Render())
	}
}

func TestRun(t *testing.T) {
	want := errors.New("boom")
	if err := Run(context.Background(), func() error { return want }); !errors.Is(err, want) {
		t.Errorf("Run error = %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	release := make(chan struct{})
	defer close(release)
	err := Run(ctx, func() error { <-release; return nil })
	if !IsTimeout(err) {
		t.Errorf("Run = %v, want deadline exceeded", err)
	}
}
