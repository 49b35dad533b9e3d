package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/prophecy-cycles/internal/calendar"
	"github.com/zapponejosh/prophecy-cycles/internal/catalog"
	"github.com/zapponejosh/prophecy-cycles/internal/comparison"
)

func (a *app) cyclesCmd() *cobra.Command {
	var (
		traditions []string
		year       string
	)

	cmd := &cobra.Command{
		Use:   "cycles [id]",
		Short: "List cycles, or show one by id",
		Long: `Lists every cycle in catalog order. --year keeps cycles that start or
end in that year (538, -2100, 2100BCE, 33CE). --tradition keeps cycles whose
tradition label matches; repeat it to select several. Passing --tradition=""
selects nothing.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return a.showCycle(cmd, args[0])
			}

			cycles := a.svc.AllCycles()
			if year != "" {
				y, err := calendar.ParseYear(year)
				if err != nil {
					return err
				}
				cycles = a.svc.FindCyclesAtYear(y)
			}
			if cmd.Flags().Changed("tradition") {
				cycles = comparison.FilterByTraditions(cycles, nonEmpty(traditions))
			}

			return render(cmd.OutOrStdout(), a.format, cycles, func(tw *tabwriter.Writer) {
				row(tw, "ID", "NAME", "TRADITION", "SPAN", "YEARS")
				for _, c := range cycles {
					row(tw, c.ID, c.Name, c.Tradition,
						calendar.FormatSpan(c.StartYear, c.EndYear), formatDuration(c.Duration))
				}
			})
		},
	}

	cmd.Flags().StringSliceVarP(&traditions, "tradition", "t", nil, "tradition label to keep (repeatable)")
	cmd.Flags().StringVarP(&year, "year", "y", "", "keep cycles starting or ending in this year")
	return cmd
}

func (a *app) showCycle(cmd *cobra.Command, id string) error {
	c, ok := a.svc.FindCycle(id)
	if !ok {
		return fmt.Errorf("cycle %q not found", id)
	}

	return render(cmd.OutOrStdout(), a.format, c, func(tw *tabwriter.Writer) {
		writeCycleDetail(tw, c)
	})
}

func writeCycleDetail(tw *tabwriter.Writer, c catalog.Cycle) {
	row(tw, "ID", c.ID)
	row(tw, "Name", c.Name)
	row(tw, "Tradition", c.Tradition)
	row(tw, "Span", calendar.FormatSpan(c.StartYear, c.EndYear))
	row(tw, "Duration", formatDuration(c.Duration)+" years")
	row(tw, "Key prophecy", c.KeyProphecy)
	if c.Leader != "" {
		row(tw, "Leader", c.Leader)
	}
	row(tw, "Source", c.Source)
	row(tw, "References", strings.Join(c.References, "; "))
	row(tw, "Description", c.Description)
}

// nonEmpty drops blank labels so --tradition="" selects nothing.
func nonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
