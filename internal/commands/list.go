package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/olehluchkiv/gosolid/internal/catalog"
)

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available demonstrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, d := range catalog.All() {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s  %-22s %s\n", d.Principle.Code(), d.Principle, d.Title); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
