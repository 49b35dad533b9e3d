package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/prophecy-cycles/internal/calendar"
	"github.com/zapponejosh/prophecy-cycles/internal/comparison"
	"github.com/zapponejosh/prophecy-cycles/internal/prophecy"
)

// barWidth is the character width of a full duration bar.
const barWidth = 30

// comparisonOutput is the structured form of `prophecy compare`.
type comparisonOutput struct {
	prophecy.Comparison `yaml:",inline"`
	Empty               bool `json:"empty" yaml:"empty"`
}

func (a *app) compareCmd() *cobra.Command {
	var traditions []string

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare cycle durations and ranges across traditions",
		Long: `Scales each selected cycle against a 5000-year duration cap and the
2100 BCE to 3300 CE window. Without --tradition the default selection is
used: ` + fmt.Sprint(comparison.DefaultSelection) + `.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			selected := comparison.DefaultSelection
			if cmd.Flags().Changed("tradition") {
				selected = nonEmpty(traditions)
			}

			view := a.svc.Compare(selected)
			out := comparisonOutput{Comparison: view, Empty: view.Empty()}

			return render(cmd.OutOrStdout(), a.format, out, func(tw *tabwriter.Writer) {
				if view.Empty() {
					row(tw, comparison.ErrEmptySet.Error())
					return
				}

				row(tw, "CYCLE", "TRADITION", "SPAN", "YEARS", "DURATION")
				for _, b := range view.Bars {
					row(tw, b.Cycle.Name, b.Cycle.Tradition,
						calendar.FormatSpan(b.Cycle.StartYear, b.Cycle.EndYear),
						formatDuration(b.Cycle.Duration), bar(b.BarPct, barWidth))
				}
				row(tw)
				row(tw, fmt.Sprintf("%d cycles, longest %s years, average %d years",
					view.Stats.Count, formatDuration(view.Stats.MaxDuration), view.Stats.RoundedMean()))
			})
		},
	}

	cmd.Flags().StringSliceVarP(&traditions, "tradition", "t", nil, "tradition label to compare (repeatable)")
	return cmd
}
