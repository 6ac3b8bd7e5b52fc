// Package procexec hands the launcher process over to the GUI runtime.
package procexec

// Executor replaces the current process with the runtime after checks pass.
type Executor interface {
	// Exec runs path with args and the given environment.
	// On Unix the current process image is replaced and the call does not
	// return on success. On Windows the runtime runs as a child and the
	// launcher exits with the child's exit code.
	Exec(path string, args []string, env []string) error
}

// RealExecutor is the production implementation.
type RealExecutor struct{}

// MockExecutor is a test double for Executor.
type MockExecutor struct {
	ExecFunc func(path string, args []string, env []string) error
}

// Exec calls the mock function, or succeeds when none is set.
func (m *MockExecutor) Exec(path string, args []string, env []string) error {
	if m.ExecFunc != nil {
		return m.ExecFunc(path, args, env)
	}
	return nil
}
