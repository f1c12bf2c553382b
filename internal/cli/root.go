package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"todo/internal/action"
	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/logging"
	"todo/internal/storage/jsonfile"
)

// Main runs the todo command with args, reading commands from in.
// The storage file is resolved on fs. Returns the exit code.
func Main(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer, fs afero.Fs) int {
	code := exitcode.Success

	cmd, err := newRootCommand(fs, &code)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UsageError
	}
	cmd.SetArgs(args)
	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UsageError
	}
	return code
}

func newRootCommand(fs afero.Fs, code *int) (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:           "todo",
		Short:         "Keep a task list from the command line",
		Long:          longHelp(action.DefaultRegistry),
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetVersionTemplate("todo {{.Version}}\n")

	config.RegisterFlags(cmd.Flags())
	v, err := config.NewViper(cmd.Flags())
	if err != nil {
		return nil, err
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(v)
		if err != nil {
			return err
		}

		logger, err := logging.New(cfg.LogLevel, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		store := jsonfile.New(fs, cfg.File)
		session := NewSession(store, logger, cfg.Color)
		*code = session.Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		return nil
	}
	return cmd, nil
}

func longHelp(registry *action.Registry) string {
	var b strings.Builder
	b.WriteString("todo reads commands from standard input, one per line:\n\n")
	for _, p := range registry.All() {
		fmt.Fprintf(&b, "  %-16s %s\n", p.Usage(), p.Synopsis())
	}
	b.WriteString("\nThe task list is saved to --file after every change. The file must exist\n")
	b.WriteString("before the first run; an empty list is {\"tasks\":[]}.\n")
	return b.String()
}
