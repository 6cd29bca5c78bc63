package commands

import (
	"path/filepath"
	"testing"

	"github.com/DR-BoneZ/lightning-wire-msgs-go/pkg/log"
)

func createTestLogFile(t *testing.T, events []log.Event) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test"+log.FileExt)

	logger, err := log.NewFileLogger(path)
	if err != nil {
		t.Fatalf("failed to create test log: %v", err)
	}
	for _, e := range events {
		logger.Log(e)
	}
	if err := logger.Close(); err != nil {
		t.Fatalf("failed to close test log: %v", err)
	}
	return path
}
