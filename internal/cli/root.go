package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/alexanderramin/systematics/internal/builder"
	"github.com/alexanderramin/systematics/internal/cli/formatter"
	"github.com/alexanderramin/systematics/internal/prompt"
	"github.com/spf13/cobra"
)

// App holds the dependencies shared by CLI commands.
type App struct {
	Logger   *slog.Logger
	Observer builder.Observer

	// Format is the default output format for built systems.
	Format formatter.Format

	// IsInteractive reports whether input comes from a terminal. Form mode
	// is only used when it returns true.
	IsInteractive func() bool
}

func (app *App) logger() *slog.Logger {
	if app.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return app.Logger
}

func (app *App) interactive() bool {
	return app.IsInteractive != nil && app.IsInteractive()
}

func (app *App) newBuilder(session *prompt.Session) *builder.Builder {
	return builder.New(session,
		builder.WithLogger(app.logger()),
		builder.WithObserver(app.Observer),
	)
}

// NewRootCmd creates the top-level "systematics" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	opts := &buildOptions{format: app.Format}
	if opts.format == "" {
		opts.format = formatter.FormatText
	}

	root := &cobra.Command{
		Use:   "systematics [1|2|3|4|5|6|7|8|12|P]",
		Short: "Describe a system of terms and the connectives between them",
		Long: `Describe a system of N terms, one per canonical position, and optionally
label the connective between every pair of positions.

Run without arguments to choose the number of terms interactively.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			session := prompt.New(cmd.InOrStdin(), cmd.OutOrStdout())

			var choice string
			if len(args) == 1 {
				choice = args[0]
			} else {
				line, err := session.Ask(menuPrompt + "\n")
				if err != nil {
					if errors.Is(err, io.EOF) {
						fmt.Fprintln(cmd.OutOrStdout(), invalidInputMessage)
						return nil
					}
					return fmt.Errorf("reading choice: %w", err)
				}
				choice = line
			}

			return app.dispatch(cmd, session, choice, opts)
		},
	}

	root.PersistentFlags().Var(newFormatValue(&opts.format), "format", "Output format for built systems (text|yaml|json)")
	root.PersistentFlags().BoolVar(&opts.form, "form", false, "Use a full-screen form instead of line prompts (terminal only)")

	root.AddCommand(
		newBuildCmd(app, opts),
		newPermuteCmd(app),
		newAritiesCmd(),
		newPositionsCmd(),
	)

	return root
}
