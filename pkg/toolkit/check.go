package toolkit

import (
	"context"

	"github.com/Masterminds/semver/v3"

	"github.com/hkmshb/jottlaunch/pkg/check"
)

// Check reports whether the wx toolkit can be located.
type Check struct {
	Locator *Locator
}

// Run executes the toolkit location check.
func (c *Check) Run() check.Result {
	result := check.Result{Name: "toolkit: wx"}

	root, err := c.Locator.SitePackages(context.Background())
	if err != nil {
		return result.Fail(err.Error(), err)
	}

	result.Status = check.StatusOK
	result.AddDetailf("site-packages: %s", root)
	return result
}

// InterpreterCheck reports on the companion interpreter and optionally
// enforces a minimum version.
type InterpreterCheck struct {
	Locator    *Locator
	MinVersion *semver.Version // nil = report only
}

// Run executes the interpreter check.
func (c *InterpreterCheck) Run() check.Result {
	result := check.Result{Name: "interpreter: " + c.Locator.interpreter()}

	info, err := c.Locator.InterpreterInfo(context.Background())
	if err != nil {
		return result.Fail(err.Error(), err)
	}

	result.AddDetailf("version: %s", info.Version)
	if info.Executable != "" {
		result.AddDetailf("executable: %s", info.Executable)
	}
	if info.Prefix != "" {
		result.AddDetailf("prefix: %s", info.Prefix)
	}

	if c.MinVersion != nil {
		v, err := semver.NewVersion(info.Version)
		if err != nil {
			return result.Failf("could not parse interpreter version %q: %v", info.Version, err)
		}
		if v.LessThan(c.MinVersion) {
			return result.Failf("interpreter version %s below minimum %s", v, c.MinVersion)
		}
	}

	result.Status = check.StatusOK
	return result
}
