//go:build unix

package procexec

import (
	"syscall"
)

// execFunc is swappable in tests; syscall.Exec never returns on success.
var execFunc = syscall.Exec

// Exec replaces the current process image with the runtime.
// argv[0] is the runtime path by convention.
func (e *RealExecutor) Exec(path string, args []string, env []string) error {
	argv := append([]string{path}, args...)
	// #nosec G204 -- launching the operator-configured runtime is the whole
	// point of this program.
	return execFunc(path, argv, env)
}
