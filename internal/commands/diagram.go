package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/olehluchkiv/gosolid/internal/analyzer"
	"github.com/olehluchkiv/gosolid/internal/diagram"
	"github.com/olehluchkiv/gosolid/internal/enricher"
)

func diagramCmd(a *app) *cobra.Command {
	var (
		output            string
		filter            string
		focus             []string
		includeStdlib     bool
		includeUnexported bool
		maxMethods        int
		maxNodes          int
	)
	cmd := &cobra.Command{
		Use:   "diagram [path]",
		Short: "Render contracts, variants and contexts as a Mermaid class diagram",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := analyzer.AnalyzeOptions{
				Filter:            filter,
				IncludeStdlib:     includeStdlib,
				IncludeUnexported: includeUnexported,
			}
			result, err := a.analyze(cmd.Context(), pathArg(args), opts)
			if err != nil {
				return err
			}
			result = diagram.Focus(result, focus)
			for _, e := range []enricher.Enricher{enricher.NewDefaultSimplifier(maxNodes)} {
				result = e.Enrich(result)
			}

			diagramOpts := diagram.DefaultDiagramOptions()
			diagramOpts.MaxMethodsPerBox = maxMethods

			if output == "" {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), diagram.GenerateMermaid(result, diagramOpts))
				return err
			}

			// File output: include %%{init:}%% for standalone .mmd rendering
			diagramOpts.IncludeInit = true
			if err := os.WriteFile(output, []byte(diagram.GenerateMermaid(result, diagramOpts)), 0o644); err != nil {
				a.logger.Error("failed to write output file", "error", err)
				return fmt.Errorf("writing %s: %w", output, err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Wrote diagram to %s\n", output)
			return err
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the diagram to a file instead of stdout")
	cmd.Flags().StringVar(&filter, "filter", a.cfg.Filter, "package path prefix filter")
	cmd.Flags().StringSliceVar(&focus, "focus", nil, "only draw these node IDs and their neighbours")
	cmd.Flags().BoolVar(&includeStdlib, "include-stdlib", false, "include standard library interfaces")
	cmd.Flags().BoolVar(&includeUnexported, "include-unexported", false, "include unexported types and interfaces")
	cmd.Flags().IntVar(&maxNodes, "max-nodes", 0, "keep only the most connected nodes, 0 for all")
	cmd.Flags().IntVar(&maxMethods, "max-methods", 5, "methods listed per interface box, 0 for all")
	return cmd
}
