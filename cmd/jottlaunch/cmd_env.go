package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hkmshb/jottlaunch/pkg/toolkit"
)

var envInterpreter string

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Print the module search path the runtime would receive",
	Long: `env runs the same validations as launch and prints a shell-evalable
PYTHONPATH assignment instead of replacing the process.`,
	Args: cobra.NoArgs,
	RunE: runEnv,
}

func init() {
	envCmd.Flags().StringVar(&envInterpreter, "interpreter", toolkit.DefaultInterpreter, "companion interpreter used to locate the toolkit")
	rootCmd.AddCommand(envCmd)
}

func runEnv(cmd *cobra.Command, _ []string) error {
	l := newLauncher(envInterpreter, false, newLogger(false), cmd.OutOrStdout())

	_, sitePackages, err := l.resolve(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", modulePathVar, sitePackages)
	return nil
}
