package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/hkmshb/jottlaunch/pkg/envfile"
	"github.com/hkmshb/jottlaunch/pkg/procexec"
	"github.com/hkmshb/jottlaunch/pkg/runtimecheck"
	"github.com/hkmshb/jottlaunch/pkg/toolkit"
)

// modulePathVar receives the discovered site-packages root.
const modulePathVar = "PYTHONPATH"

// launcher wires the two validation steps to the process replacement.
// All side-effecting collaborators are injected so the full launch flow
// can run under test.
type launcher struct {
	runtimeVar  string
	interpreter string
	dryRun      bool
	log         zerolog.Logger
	stdout      io.Writer

	env      runtimecheck.EnvGetter
	stat     runtimecheck.FileStater
	runner   toolkit.Runner
	executor procexec.Executor
	environ  func() []string
	loadEnv  func() (string, error)
}

func newLauncher(interpreter string, dryRun bool, log zerolog.Logger, stdout io.Writer) *launcher {
	return &launcher{
		runtimeVar:  runtimecheck.DefaultVar,
		interpreter: interpreter,
		dryRun:      dryRun,
		log:         log,
		stdout:      stdout,
		env:         &runtimecheck.RealEnvGetter{},
		stat:        &runtimecheck.RealFileStater{},
		runner:      &toolkit.RealRunner{},
		executor:    &procexec.RealExecutor{},
		environ:     os.Environ,
		loadEnv:     envfile.Load,
	}
}

// resolve runs both validations and returns the runtime executable and the
// site-packages root. The returned errors are the two operator-facing
// diagnostics; each maps to exit status 1.
func (l *launcher) resolve(ctx context.Context) (runtimePath, sitePackages string, err error) {
	if loaded, err := l.loadEnv(); err != nil {
		return "", "", err
	} else if loaded != "" {
		l.log.Debug().Str("file", loaded).Msg("loaded env file")
	}

	rt := &runtimecheck.Check{Var: l.runtimeVar, Getter: l.env, Stat: l.stat}
	runtimePath, err = rt.Validate()
	if err != nil {
		return "", "", fmt.Errorf("runtime missing or invalid path: %w", err)
	}
	l.log.Debug().Str("runtime", runtimePath).Msg("runtime validated")

	loc := &toolkit.Locator{Interpreter: l.interpreter, Runner: l.runner}
	sitePackages, err = loc.SitePackages(ctx)
	if err != nil {
		return "", "", fmt.Errorf("wx toolkit not located: %w", err)
	}
	l.log.Debug().Str("site_packages", sitePackages).Msg("toolkit located")

	return runtimePath, sitePackages, nil
}

// launch validates the environment and replaces the process with the runtime.
// args are forwarded verbatim after the -S flag, which keeps the runtime from
// running its default site initialization.
func (l *launcher) launch(ctx context.Context, args []string) error {
	runtimePath, sitePackages, err := l.resolve(ctx)
	if err != nil {
		return err
	}

	env := procexec.EnvWith(l.environ(), modulePathVar, sitePackages)
	argv := append([]string{"-S"}, args...)

	if l.dryRun {
		fmt.Fprintf(l.stdout, "%s=%s\n", modulePathVar, sitePackages)
		fmt.Fprintf(l.stdout, "exec %s %s\n", runtimePath, strings.Join(argv, " "))
		return nil
	}

	l.log.Debug().Str("runtime", runtimePath).Strs("argv", argv).Msg("replacing process")
	return l.executor.Exec(runtimePath, argv, env)
}
