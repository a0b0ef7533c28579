package cli

import (
	"github.com/alexanderramin/systematics/internal/prompt"
	"github.com/spf13/cobra"
)

func newBuildCmd(app *App, opts *buildOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "build <1|2|3|4|5|6|7|8|12|P>",
		Short: "Build a system of the given size",
		Long: `Build a system of the given size by answering one prompt per field.

With --form and a terminal, the fields are collected in a full-screen form
instead. Use --format yaml or --format json to export the result.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session := prompt.New(cmd.InOrStdin(), cmd.OutOrStdout())
			return app.dispatch(cmd, session, args[0], opts)
		},
	}
}
