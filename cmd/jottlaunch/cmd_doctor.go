package main

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/spf13/cobra"

	"github.com/hkmshb/jottlaunch/pkg/envfile"
	"github.com/hkmshb/jottlaunch/pkg/runtimecheck"
	"github.com/hkmshb/jottlaunch/pkg/toolkit"
)

var (
	doctorInterpreter string
	doctorMinPython   string
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose the launch environment without starting the runtime",
	Args:  cobra.NoArgs,
	RunE:  runDoctor,
}

func init() {
	doctorCmd.Flags().StringVar(&doctorInterpreter, "interpreter", toolkit.DefaultInterpreter, "companion interpreter used to locate the toolkit")
	doctorCmd.Flags().StringVar(&doctorMinPython, "min-python", "", "minimum interpreter version (e.g. 3.9.0)")
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	var minVersion *semver.Version
	if doctorMinPython != "" {
		v, err := semver.NewVersion(doctorMinPython)
		if err != nil {
			return fmt.Errorf("invalid --min-python %q: %w", doctorMinPython, err)
		}
		minVersion = v
	}

	if loaded, err := envfile.Load(); err != nil {
		return err
	} else if loaded != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "env file: %s\n", loaded)
	}

	loc := &toolkit.Locator{Interpreter: doctorInterpreter, Runner: &toolkit.RealRunner{}}

	return runChecks(cmd.OutOrStdout(),
		&runtimecheck.Check{
			Var:    runtimecheck.DefaultVar,
			Getter: &runtimecheck.RealEnvGetter{},
			Stat:   &runtimecheck.RealFileStater{},
		},
		&toolkit.Check{Locator: loc},
		&toolkit.InterpreterCheck{Locator: loc, MinVersion: minVersion},
	)
}
