package main

import (
	"errors"
	"io"

	"github.com/hkmshb/jottlaunch/pkg/check"
	"github.com/hkmshb/jottlaunch/pkg/output"
)

// ErrCheckFailed is returned when a diagnostic check fails.
var ErrCheckFailed = errors.New("check failed")

// runChecks executes checks in order, prints each result, and returns
// ErrCheckFailed if any failed. The returned error causes cobra to exit
// with code 1.
func runChecks(w io.Writer, checks ...check.Checker) error {
	failed := false
	for _, c := range checks {
		result := c.Run()
		output.Fprint(w, result)
		if !result.OK() {
			failed = true
		}
	}
	if failed {
		return ErrCheckFailed
	}
	return nil
}
