package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew_ComponentAndLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "warn", "server")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info line should be filtered at warn level, got: %s", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, `"component":"server"`) {
		t.Errorf("expected warn line with component, got: %s", out)
	}
}

func TestNew_DefaultLevelIsInfo(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "", "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	logger.Debug().Msg("debug")
	logger.Info().Msg("info")

	if strings.Contains(buf.String(), `"message":"debug"`) {
		t.Error("debug should be filtered by default")
	}
	if !strings.Contains(buf.String(), `"message":"info"`) {
		t.Error("info should be logged by default")
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	if _, err := New(&bytes.Buffer{}, "loud", ""); err == nil {
		t.Error("expected error for invalid level")
	}
}

func TestConsole(t *testing.T) {
	var buf bytes.Buffer
	logger, err := Console(&buf, "info", "")
	if err != nil {
		t.Fatalf("Console: %v", err)
	}
	logger.Info().Msg("listening")
	if !strings.Contains(buf.String(), "listening") {
		t.Errorf("expected message in console output, got: %s", buf.String())
	}
}

func TestForFile_RegularFileGetsJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.log")
	f, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}

	logger, err := ForFile(f, "info", "server")
	if err != nil {
		t.Fatalf("ForFile: %v", err)
	}
	logger.Info().Msg("listening")
	f.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), `"message":"listening"`) || !strings.Contains(string(data), `"component":"server"`) {
		t.Errorf("expected a JSON line, got: %s", data)
	}
}

func TestOpenFile_CreatesParents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "app.log")
	f, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	f.WriteString("line\n")
	f.Close()

	data, err := os.ReadFile(path)
	if err != nil || string(data) != "line\n" {
		t.Errorf("unexpected file content %q (err %v)", data, err)
	}
}

func TestDefaultLogPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", dir)

	p, err := DefaultLogPath()
	if err != nil {
		t.Fatalf("DefaultLogPath: %v", err)
	}
	if want := filepath.Join(dir, "mathduel", "mathduel.log"); p != want {
		t.Errorf("DefaultLogPath = %q, want %q", p, want)
	}
}
