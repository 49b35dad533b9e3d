package main

import (
	"bytes"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/zapponejosh/prophecy-cycles/internal/api"
	"github.com/zapponejosh/prophecy-cycles/internal/config"
	"github.com/zapponejosh/prophecy-cycles/internal/prophecy"
)

func TestRunner_AgainstServer(t *testing.T) {
	svc, err := prophecy.Load()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}

	cfg := &config.Config{
		Port:            8080,
		Env:             config.EnvDevelopment,
		ShutdownTimeout: time.Second,
		ExportPath:      ":memory:",
		APIKey:          "smoke-key",
		LogLevel:        "error",
		LogFormat:       "text",
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	srv := httptest.NewServer(api.SetupRoutes(api.NewHandlers(svc, cfg, log), cfg, log))
	defer srv.Close()

	var out bytes.Buffer
	runner := NewTestRunner(srv.URL, "smoke-key", &out, true)
	runner.Run()

	if runner.errorCount != 0 {
		t.Errorf("smoke suite reported %d failure(s):\n%s", runner.errorCount, out.String())
	}
	if runner.successCount == 0 {
		t.Error("smoke suite recorded no passing checks")
	}
}
