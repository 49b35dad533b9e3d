package cli

import (
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/prophecy-cycles/internal/calendar"
)

func (a *app) convergenceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convergence",
		Short: "Show the cycles that converge on a single year",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conv := a.svc.ConvergenceSummary()

			return render(cmd.OutOrStdout(), a.format, conv, func(tw *tabwriter.Writer) {
				row(tw, conv.Title)
				row(tw, conv.Description)
				row(tw)
				row(tw, "TRADITION", "START", "END", "YEARS", "CONVERGENCE")
				for _, e := range conv.Entries {
					row(tw, e.Tradition, calendar.FormatYear(e.Start), calendar.FormatYear(e.End),
						formatDuration(e.Duration), e.Convergence)
				}
			})
		},
	}
}
