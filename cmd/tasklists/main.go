package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/tasklists/internal/buildinfo"
	"github.com/dmitrijs2005/tasklists/internal/cli"
	"github.com/dmitrijs2005/tasklists/internal/common"
	"github.com/dmitrijs2005/tasklists/internal/config"
	"github.com/dmitrijs2005/tasklists/internal/logging"
	"github.com/dmitrijs2005/tasklists/internal/ui"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var register bool

	cmd := &cobra.Command{
		Use:   "tasklists",
		Short: "Tasklists - log in to your task lists, or create a profile with -n.",
		Long: `Tasklists keeps user profiles in a plain YAML file next to your task lists.

Run without flags to log in. Run with -n to create a new profile first.
Once logged in, type 'help' to see the available commands.`,
		Args:          cobra.NoArgs,
		Version:       buildinfo.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(cmd.Flags())
			if err != nil {
				return err
			}

			logger, err := logging.New(stderr, cfg.LogLevel)
			if err != nil {
				return err
			}
			log := logger.With("session", uuid.NewString())

			app, err := cli.NewApp(cfg, log, stdin, stdout)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			log.Debug(ctx, "starting", "users_file", cfg.UsersFile, "register", register)
			return app.Run(ctx, register)
		},
	}

	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	config.RegisterFlags(cmd.Flags())
	cmd.Flags().BoolVarP(&register, "new", "n", false, "create a new profile before logging in")

	return cmd
}

// alreadyReported is true for errors the flows have shown to the user.
func alreadyReported(err error) bool {
	return errors.Is(err, common.ErrRegistrationDeclined) ||
		errors.Is(err, common.ErrNoUsersConfigured) ||
		errors.Is(err, common.ErrTooManyAttempts)
}

func main() {
	err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).ExecuteContext(context.Background())
	if err != nil && !alreadyReported(err) {
		fmt.Fprint(os.Stderr, ui.ErrorBlock(err.Error()))
	}
	os.Exit(common.ExitCode(err))
}
