//go:build unix

package procexec

import (
	"errors"
	"testing"
)

func TestRealExecutorExec(t *testing.T) {
	originalExecFunc := execFunc
	defer func() { execFunc = originalExecFunc }()

	var capturedBinary string
	var capturedArgv []string
	var capturedEnv []string

	execFunc = func(binary string, argv []string, env []string) error {
		capturedBinary = binary
		capturedArgv = argv
		capturedEnv = env
		return nil
	}

	e := &RealExecutor{}
	env := []string{"PYTHONPATH=/opt/venv/lib/site-packages", "HOME=/home/op"}
	err := e.Exec("/usr/bin/pythonw", []string{"-S", "notes.jott"}, env)

	if err != nil {
		t.Errorf("Exec() error = %v, want nil", err)
	}
	if capturedBinary != "/usr/bin/pythonw" {
		t.Errorf("binary = %q, want /usr/bin/pythonw", capturedBinary)
	}
	if len(capturedArgv) != 3 || capturedArgv[0] != "/usr/bin/pythonw" ||
		capturedArgv[1] != "-S" || capturedArgv[2] != "notes.jott" {
		t.Errorf("argv = %v, want [/usr/bin/pythonw -S notes.jott]", capturedArgv)
	}
	if len(capturedEnv) != 2 || capturedEnv[0] != "PYTHONPATH=/opt/venv/lib/site-packages" {
		t.Errorf("env = %v", capturedEnv)
	}
}

func TestRealExecutorExecError(t *testing.T) {
	originalExecFunc := execFunc
	defer func() { execFunc = originalExecFunc }()

	expectedErr := errors.New("exec format error")
	execFunc = func(binary string, argv []string, env []string) error {
		return expectedErr
	}

	e := &RealExecutor{}
	err := e.Exec("/usr/bin/pythonw", nil, nil)

	if !errors.Is(err, expectedErr) {
		t.Errorf("Exec() error = %v, want %v", err, expectedErr)
	}
}

func TestRealExecutorExecEmptyArgs(t *testing.T) {
	originalExecFunc := execFunc
	defer func() { execFunc = originalExecFunc }()

	var capturedArgv []string
	execFunc = func(binary string, argv []string, env []string) error {
		capturedArgv = argv
		return nil
	}

	e := &RealExecutor{}
	if err := e.Exec("/usr/bin/pythonw", []string{}, nil); err != nil {
		t.Errorf("Exec() error = %v, want nil", err)
	}

	if len(capturedArgv) != 1 || capturedArgv[0] != "/usr/bin/pythonw" {
		t.Errorf("argv = %v, want [/usr/bin/pythonw]", capturedArgv)
	}
}
