package main

import (
	"github.com/spf13/cobra"

	"github.com/hkmshb/jottlaunch/pkg/toolkit"
)

var (
	launchDryRun      bool
	launchVerbose     bool
	launchInterpreter string
)

var launchCmd = &cobra.Command{
	Use:   "launch [args...]",
	Short: "Validate the environment and hand the process over to the Jott runtime",
	Long: `launch validates FXPYTHON, puts the wx site-packages root on PYTHONPATH,
and replaces the process with the runtime, forwarding args verbatim.

Arguments that start with a dash must come after a -- separator so they are
forwarded to the runtime instead of being read as launch flags:

  jottlaunch launch -- -v notes.jott`,
	Args: cobra.ArbitraryArgs,
	RunE: runLaunch,
}

func init() {
	launchCmd.Flags().BoolVar(&launchDryRun, "dry-run", false, "validate and print the command without exec'ing")
	launchCmd.Flags().BoolVar(&launchVerbose, "verbose", false, "log launch steps to stderr")
	launchCmd.Flags().StringVar(&launchInterpreter, "interpreter", toolkit.DefaultInterpreter, "companion interpreter used to locate the toolkit")
	// Forwarded arguments must never be parsed as launch flags.
	launchCmd.Flags().SetInterspersed(false)
	rootCmd.AddCommand(launchCmd)
}

func runLaunch(cmd *cobra.Command, args []string) error {
	l := newLauncher(launchInterpreter, launchDryRun, newLogger(launchVerbose), cmd.OutOrStdout())
	return l.launch(cmd.Context(), args)
}
