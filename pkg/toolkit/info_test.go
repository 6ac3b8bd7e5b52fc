package toolkit

import (
	"context"
	"strings"
	"testing"
)

func TestInterpreterInfo(t *testing.T) {
	l := &Locator{
		Runner: foundRunner(func(ctx context.Context, name string, args ...string) (string, string, error) {
			return `{"version": "3.11.4", "executable": "/opt/venv/bin/python", "prefix": "/opt/venv"}` + "\n", "", nil
		}),
	}

	info, err := l.InterpreterInfo(context.Background())
	if err != nil {
		t.Fatalf("InterpreterInfo() error = %v", err)
	}

	if info.Version != "3.11.4" {
		t.Errorf("Version = %q, want 3.11.4", info.Version)
	}
	if info.Executable != "/opt/venv/bin/python" {
		t.Errorf("Executable = %q", info.Executable)
	}
	if info.Prefix != "/opt/venv" {
		t.Errorf("Prefix = %q", info.Prefix)
	}
}

func TestInterpreterInfoInvalidJSON(t *testing.T) {
	l := &Locator{
		Runner: foundRunner(func(ctx context.Context, name string, args ...string) (string, string, error) {
			return "Python 3.11.4\n", "", nil
		}),
	}

	_, err := l.InterpreterInfo(context.Background())
	if err == nil || !strings.Contains(err.Error(), "not valid JSON") {
		t.Errorf("error = %v, want invalid-JSON", err)
	}
}

func TestInterpreterInfoMissingVersion(t *testing.T) {
	l := &Locator{
		Runner: foundRunner(func(ctx context.Context, name string, args ...string) (string, string, error) {
			return `{"executable": "/usr/bin/python"}`, "", nil
		}),
	}

	_, err := l.InterpreterInfo(context.Background())
	if err == nil || !strings.Contains(err.Error(), "missing a version") {
		t.Errorf("error = %v, want missing-version", err)
	}
}
