package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/shlex"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/zero-vault/internal/workers"
)

const shellPrompt = "zero-vault> "

func (a *App) shellCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive session that keeps the vault unlocked until it idles",
		Long: "shell asks for the master password once and then reads commands line by\n" +
			"line. The password is forgotten after SESSION_IDLE_TIMEOUT of inactivity,\n" +
			"on `lock` and on exit.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runShell(cmd.Context())
		},
	}
}

func (a *App) runShell(ctx context.Context) error {
	if err := a.unlock(false); err != nil {
		return err
	}

	jobs := workers.New(workers.NewAutoLock(a.session, a.idleTimeout(), a.logger))
	jobs.Start(ctx)
	defer jobs.Stop()

	fmt.Fprintln(a.out, "type help for commands, lock to forget the password, exit to quit")

	for ctx.Err() == nil {
		line, err := a.prompter.Line(shellPrompt)
		if errors.Is(err, ErrInputClosed) {
			return nil
		}
		if err != nil {
			return err
		}

		args, err := shlex.Split(line)
		if err != nil {
			a.printError(fmt.Errorf("parse command: %w", err))
			continue
		}
		if len(args) == 0 {
			continue
		}

		switch args[0] {
		case "exit", "quit":
			return nil
		case "lock":
			a.session.Clear()
			a.success("locked")
			continue
		case "shell":
			a.warn("already in a shell")
			continue
		}

		sub := a.newRootCommand()
		sub.SetArgs(args)
		sub.SetOut(a.out)
		sub.SetErr(a.errOut)
		if err = sub.ExecuteContext(ctx); err != nil {
			a.printError(err)
		}
	}

	return nil
}

func (a *App) idleTimeout() time.Duration {
	if a.cfg == nil {
		return 0
	}
	return a.cfg.Session.IdleTimeout
}
