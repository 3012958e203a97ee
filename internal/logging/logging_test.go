package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInitializeToFile(t *testing.T) {
	restore := Replace(Logger)
	defer restore()

	path := filepath.Join(t.TempDir(), "storefront.log")
	if err := Initialize(Config{Level: "debug", Format: "json", Output: path}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	Debug("chain priced", zap.String("description", "Coffee, Milk"))
	Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), `"description":"Coffee, Milk"`) {
		t.Errorf("expected structured field in log output, got %s", data)
	}
}

func TestInitializeBadLevelFallsBackToInfo(t *testing.T) {
	restore := Replace(Logger)
	defer restore()

	if err := Initialize(Config{Level: "loud", Format: "console", Output: "stderr"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if Logger.Core().Enabled(zapcore.DebugLevel) {
		t.Error("debug must be disabled after falling back to info")
	}
	if !Logger.Core().Enabled(zapcore.InfoLevel) {
		t.Error("info must be enabled after falling back to info")
	}
}

func TestReplaceRestores(t *testing.T) {
	original := Logger
	core, logs := observer.New(zapcore.DebugLevel)

	restore := Replace(zap.New(core))
	Named("payment").Info("refund")
	restore()

	if Logger != original {
		t.Error("expected original logger to be restored")
	}
	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].LoggerName != "payment" {
		t.Errorf("expected logger name payment, got %q", entries[0].LoggerName)
	}
}
