// Package toolkit locates the wxPython installation that the Jott runtime needs
// on its module search path. The location is computed by the companion
// general-purpose interpreter, which may differ in architecture or version from
// the runtime itself; matching the two is the operator's responsibility.
package toolkit

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// DefaultInterpreter is the companion interpreter resolved via PATH.
const DefaultInterpreter = "python"

// DefaultTimeout bounds the interpreter query.
const DefaultTimeout = 30 * time.Second

// locateExpr prints the directory two levels above the wx package itself,
// i.e. the site-packages root of the active virtual environment.
const locateExpr = "import os, wx; print(os.path.dirname(os.path.dirname(wx.__file__)))"

// Locator discovers the site-packages root containing the wx toolkit.
type Locator struct {
	Interpreter string        // interpreter name (default: DefaultInterpreter)
	Timeout     time.Duration // per-query timeout (default: DefaultTimeout)
	Runner      Runner        // injected for testing
}

func (l *Locator) interpreter() string {
	if l.Interpreter == "" {
		return DefaultInterpreter
	}
	return l.Interpreter
}

func (l *Locator) query(ctx context.Context, expr string) (string, error) {
	name := l.interpreter()
	if _, err := l.Runner.LookPath(name); err != nil {
		return "", fmt.Errorf("interpreter %q not found in PATH: %w", name, err)
	}

	timeout := l.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	stdout, stderr, err := l.Runner.RunCommandContext(ctx, name, "-c", expr)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", fmt.Errorf("interpreter query timed out after %s", timeout)
		}
		if msg := strings.TrimSpace(stderr); msg != "" {
			return "", fmt.Errorf("interpreter query failed: %w: %s", err, msg)
		}
		return "", fmt.Errorf("interpreter query failed: %w", err)
	}

	out := strings.TrimSpace(stdout)
	if out == "" {
		return "", fmt.Errorf("interpreter query produced no output")
	}
	return out, nil
}

// SitePackages returns the site-packages root of the environment holding wx.
// The result is deterministic for a given toolkit installation.
func (l *Locator) SitePackages(ctx context.Context) (string, error) {
	return l.query(ctx, locateExpr)
}
