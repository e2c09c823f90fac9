package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

// usageError reports a command invoked with the wrong arguments. Only the
// usage line is printed for it.
type usageError struct {
	usage string
}

func (e *usageError) Error() string {
	return e.usage
}

// app holds the flags and logger shared by all subcommands.
type app struct {
	verbose bool
	logger  *slog.Logger
}

func newRootCommand(stdout, stderr io.Writer, stdin io.Reader) *cobra.Command {
	a := &app{
		logger: slog.New(slog.NewTextHandler(stderr, nil)),
	}

	root := &cobra.Command{
		Use:   "vexdse",
		Short: "VLIW design-space exploration toolkit",
		Long: "vexdse enumerates VLIW resource configurations, estimates their\n" +
			"silicon area and prints machine configuration records for the\n" +
			"VEX simulator.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if a.verbose {
				level = slog.LevelDebug
			}
			a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(),
				&slog.HandlerOptions{Level: level}))
		},
	}

	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetIn(stdin)
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Verbose output")

	root.AddCommand(
		a.newAreaCommand(),
		a.newGenConfigCommand(),
		a.newGetIntCommand(),
		a.newPermuteCommand(),
		a.newExploreCommand(),
	)

	return root
}

// reportError prints err to w in the form the user should see it.
func reportError(w io.Writer, err error) {
	var ue *usageError
	if errors.As(err, &ue) {
		fmt.Fprintln(w, ue.usage)
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}
