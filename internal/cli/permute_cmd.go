package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/systematics/internal/prompt"
	"github.com/alexanderramin/systematics/internal/validate"
	"github.com/spf13/cobra"
)

var permutationFields = [3]string{"Initiating term", "Colouring term", "Outcome term"}

func newPermuteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "permute [initiating colouring outcome]",
		Short: "List the six orderings of three terms",
		Long: `List the six orderings of an initiating, colouring and outcome term.

Pass all three terms as arguments, or none to be prompted for them.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 3 {
				return fmt.Errorf("permute takes 0 or 3 terms, got %d", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				ctx := cmd.Context()
				if ctx == nil {
					ctx = context.Background()
				}
				session := prompt.New(cmd.InOrStdin(), cmd.OutOrStdout())
				if err := app.runPermutations(ctx, cmd, session); err != nil {
					return fmt.Errorf("creating permutations: %w", err)
				}
				return nil
			}

			var terms [3]string
			for i, raw := range args {
				v, err := validate.Field(permutationFields[i], raw)
				if err != nil {
					return err
				}
				terms[i] = v
			}
			printPermutations(cmd, terms[0], terms[1], terms[2])
			return nil
		},
	}
}
