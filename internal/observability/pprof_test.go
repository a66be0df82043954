package observability

import (
	"testing"
	"time"

	"github.com/klubhuset/mvp-tracker/internal/config"
)

func TestStartPprofServer_Disabled(t *testing.T) {
	srv, err := StartPprofServer(config.Config{PprofEnabled: false}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if srv != nil {
		t.Fatalf("expected nil server when pprof is disabled")
	}
}

func TestStopPprofServer_NilServer(t *testing.T) {
	if err := StopPprofServer(nil, nil, time.Second); err != nil {
		t.Fatalf("unexpected error stopping nil server: %v", err)
	}
}
