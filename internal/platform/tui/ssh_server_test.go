package tui

import (
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
)

func TestNewSSHServer(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "keys", "host_key")
	cfg.IdleTimeout = time.Minute
	cfg.Logger = log.New(io.Discard)

	srv, err := NewSSHServer(cfg)
	if err != nil {
		t.Fatalf("NewSSHServer() failed: %v", err)
	}
	if srv.Addr() != "127.0.0.1:0" {
		t.Errorf("Addr() = %q, expected 127.0.0.1:0", srv.Addr())
	}
}

func TestNewSSHServerRejectsInvalidGameConfig(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "host_key")
	cfg.Logger = log.New(io.Discard)
	cfg.Game = config.Default()
	cfg.Game.TickRate = 0

	if _, err := NewSSHServer(cfg); err == nil {
		t.Error("NewSSHServer should reject an invalid game config")
	}
}
