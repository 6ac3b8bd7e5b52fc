//go:build windows

package procexec

import (
	"errors"
	"os"
	"os/exec"
)

// Exec approximates process replacement on Windows, which has no exec
// syscall: the runtime runs as a child with inherited stdio, and the
// launcher exits with the child's exit code.
func (e *RealExecutor) Exec(path string, args []string, env []string) error {
	// #nosec G204 -- launching the operator-configured runtime is the whole
	// point of this program.
	cmd := exec.Command(path, args...)
	cmd.Env = env
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		os.Exit(exitErr.ExitCode())
	}
	if err != nil {
		return err
	}
	os.Exit(0)
	return nil
}
