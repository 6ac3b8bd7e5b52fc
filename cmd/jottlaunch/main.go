package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// knownCommands are first arguments dispatched to cobra instead of being
// forwarded to the runtime.
var knownCommands = []string{"launch", "doctor", "env", "version", "completion", "help"}

func main() {
	os.Args = rewriteArgsForLaunch(os.Args, knownCommands)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "jottlaunch",
	Short: "Launcher shim for the Jott desktop note editor",
	Long: `jottlaunch validates the FXPYTHON runtime, puts the wxPython site-packages
root of the active virtual environment on PYTHONPATH, and replaces itself with
the runtime, forwarding all arguments unchanged.`,
	Version:      Version,
	SilenceUsage: true,
}

// rewriteArgsForLaunch routes invocations whose first argument is not a known
// subcommand or flag into the launch path, so `jottlaunch notes.jott` forwards
// the file to the runtime instead of failing as an unknown command. A bare
// `jottlaunch` launches with no forwarded arguments.
func rewriteArgsForLaunch(args []string, known []string) []string {
	if len(args) < 2 {
		return append(args[:1:1], "launch")
	}

	first := args[1]
	if strings.HasPrefix(first, "-") && first != "--" {
		return args
	}
	for _, cmd := range known {
		if first == cmd {
			return args
		}
	}

	return append([]string{args[0], "launch"}, args[1:]...)
}
