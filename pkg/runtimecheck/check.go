// Package runtimecheck validates the environment variable naming the GUI-capable
// Python runtime that the launcher will exec into.
package runtimecheck

import (
	"fmt"
	"os"

	"github.com/hkmshb/jottlaunch/pkg/check"
)

// DefaultVar is the environment variable consulted for the runtime path.
const DefaultVar = "FXPYTHON"

// Check verifies that the runtime variable names an existing regular file.
type Check struct {
	Var    string     // env var name, normally DefaultVar
	Getter EnvGetter  // injected for testing
	Stat   FileStater // injected for testing
}

// Validate returns the runtime executable path, or an error describing why the
// configured path is unusable. The error text is the operator-facing diagnostic.
func (c *Check) Validate() (string, error) {
	value, exists := c.Getter.LookupEnv(c.Var)
	if !exists {
		return "", fmt.Errorf("%s is not set", c.Var)
	}
	if value == "" {
		return "", fmt.Errorf("%s is empty", c.Var)
	}

	info, err := c.Stat.Stat(value)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%s references %q: no such file", c.Var, value)
		}
		return "", fmt.Errorf("%s references %q: %w", c.Var, value, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s references %q: is a directory, not a file", c.Var, value)
	}

	return value, nil
}

// Run executes the runtime check and reports it as a Result.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name: fmt.Sprintf("runtime: $%s", c.Var),
	}

	path, err := c.Validate()
	if err != nil {
		return result.Fail(err.Error(), err)
	}

	result.Status = check.StatusOK
	result.AddDetailf("path: %s", path)
	return result
}
