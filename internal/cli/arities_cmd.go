package cli

import (
	"fmt"

	"github.com/alexanderramin/systematics/internal/cli/formatter"
	"github.com/alexanderramin/systematics/internal/domain"
	"github.com/spf13/cobra"
)

func newAritiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "arities",
		Short: "List the supported system sizes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			supported := domain.SupportedArities()
			tables := make([]*domain.Table, 0, len(supported))
			for _, a := range supported {
				tables = append(tables, domain.MustTable(a))
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatArities(tables))
			return nil
		},
	}
}

func newPositionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "positions <N>",
		Short: "Print the canonical position labels for a system size",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := domain.ParseArity(args[0])
			if err != nil {
				return err
			}
			table, err := domain.LookupTable(a)
			if err != nil {
				return err
			}

			format, err := formatFlag(cmd)
			if err != nil {
				return err
			}
			return formatter.WritePositions(cmd.OutOrStdout(), table, format)
		},
	}
}
