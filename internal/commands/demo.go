package commands

import (
	"github.com/spf13/cobra"

	"github.com/olehluchkiv/gosolid/internal/catalog"
)

func demoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo [principle...]",
		Short: "Run the principle demonstrations (srp, ocp, lsp, isp, dip)",
		RunE: func(cmd *cobra.Command, args []string) error {
			demos, err := catalog.Select(args)
			if err != nil {
				return err
			}
			return catalog.Run(cmd.Context(), cmd.OutOrStdout(), demos, a.logger)
		},
	}
}
