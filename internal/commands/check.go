package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/olehluchkiv/gosolid/internal/analyzer"
	"github.com/olehluchkiv/gosolid/internal/enricher"
)

func checkCmd(a *app) *cobra.Command {
	var (
		strict            bool
		filter            string
		includeUnexported bool
	)
	cmd := &cobra.Command{
		Use:   "check [path]",
		Short: "Report identity branches, forced no-ops and concrete dependencies",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := analyzer.AnalyzeOptions{
				Filter:            filter,
				IncludeUnexported: includeUnexported,
			}
			result, err := a.analyze(cmd.Context(), pathArg(args), opts)
			if err != nil {
				return err
			}

			if err := writeReport(cmd.OutOrStdout(), result); err != nil {
				return err
			}
			if strict && len(result.Findings) > 0 {
				return fmt.Errorf("%d findings: %w", len(result.Findings), ErrFindings)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "exit with an error when anything is reported")
	cmd.Flags().StringVar(&filter, "filter", a.cfg.Filter, "package path prefix filter")
	cmd.Flags().BoolVar(&includeUnexported, "include-unexported", false, "include unexported types and interfaces")
	return cmd
}

// writeReport prints findings, detected strategies and a summary line.
func writeReport(w io.Writer, result *analyzer.Result) error {
	for _, f := range result.Findings {
		if _, err := fmt.Fprintln(w, f); err != nil {
			return err
		}
	}
	for _, p := range enricher.NewStrategyDetector().Detect(result) {
		if _, err := fmt.Fprintf(w, "%s: %s\n", p.Name, p.Description); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%d findings, %d contexts, %d relationships\n",
		len(result.Findings), len(result.Contexts), len(result.Relations))
	return err
}
