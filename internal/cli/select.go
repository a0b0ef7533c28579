package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/systematics/internal/cli/formatter"
	"github.com/alexanderramin/systematics/internal/domain"
	"github.com/alexanderramin/systematics/internal/prompt"
	"github.com/spf13/cobra"
)

const (
	menuPrompt           = "How many terms in your system? (1, 2, 3, 4, 5, 6, 7, 8, 12, or P for permutations)"
	invalidNumberMessage = "Invalid number of terms. Please enter 1, 2, 3, 4, 5, 6, 7, 8, 12, or P for permutations."
	invalidInputMessage  = "Invalid input. Please enter a number (1, 2, 3, 4, 5, 6, 7, 8, 12) or P for permutations."
)

// buildOptions are the flags shared by the root shortcut and "build".
type buildOptions struct {
	format formatter.Format
	form   bool
}

// selection is a parsed menu choice.
type selection struct {
	permutations bool
	arity        domain.Arity
}

// parseSelection interprets a menu choice. The returned message is shown to
// the user when the choice is not valid.
func parseSelection(choice string) (selection, string, bool) {
	trimmed := strings.ToLower(strings.TrimSpace(choice))
	if trimmed == "p" || trimmed == "permutations" {
		return selection{permutations: true}, "", true
	}

	if _, err := strconv.Atoi(trimmed); err != nil {
		return selection{}, invalidInputMessage, false
	}
	a, err := domain.ParseArity(trimmed)
	if err != nil {
		return selection{}, invalidNumberMessage, false
	}
	return selection{arity: a}, "", true
}

// dispatch runs the flow for a menu choice. Invalid choices and failed
// builds are reported without failing the command.
func (app *App) dispatch(cmd *cobra.Command, session *prompt.Session, choice string, opts *buildOptions) error {
	sel, msg, ok := parseSelection(choice)
	if !ok {
		fmt.Fprintln(cmd.OutOrStdout(), msg)
		return nil
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var err error
	label := "permutations"
	switch {
	case sel.permutations:
		err = app.runPermutations(ctx, cmd, session)
	case sel.arity == domain.Monad:
		label = "monad"
		err = app.runMonad(ctx, cmd, session)
	default:
		label = strings.ToLower(sel.arity.Name())
		err = app.runSystem(ctx, cmd, session, sel.arity, opts)
	}

	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s\n", formatter.Error(fmt.Sprintf("Error creating %s: %v", label, err)))
		app.logger().ErrorContext(ctx, "flow failed", "flow", label, "error", err)
	}
	return nil
}

func (app *App) runSystem(ctx context.Context, cmd *cobra.Command, session *prompt.Session, a domain.Arity, opts *buildOptions) error {
	table, err := domain.LookupTable(a)
	if err != nil {
		return err
	}

	var sys *domain.System
	if opts.form && app.interactive() {
		sys, err = runSystemForm(ctx, cmd, table)
	} else {
		if opts.form {
			app.logger().WarnContext(ctx, "form mode needs a terminal, using line prompts")
		}
		sys, err = app.newBuilder(session).BuildSystem(ctx, table)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout())
	return formatter.WriteSystem(cmd.OutOrStdout(), sys, opts.format)
}

func (app *App) runMonad(ctx context.Context, cmd *cobra.Command, session *prompt.Session) error {
	m, err := app.newBuilder(session).BuildMonad(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout())
	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatMonad(m))
	return nil
}

func (app *App) runPermutations(ctx context.Context, cmd *cobra.Command, session *prompt.Session) error {
	a, b, c, err := app.newBuilder(session).PermutationTerms(ctx)
	if err != nil {
		return err
	}
	printPermutations(cmd, a, b, c)
	return nil
}

func printPermutations(cmd *cobra.Command, a, b, c string) {
	fmt.Fprintln(cmd.OutOrStdout())
	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPermutations(a, b, c, domain.GeneratePermutations(a, b, c)))
}
