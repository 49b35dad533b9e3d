package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/prophecy-cycles/internal/calendar"
)

func (a *app) traditionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "traditions [id]",
		Short: "List traditions with their cycles, or show one by id",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return a.showTradition(cmd, args[0])
			}

			traditions := a.svc.AllTraditions()
			return render(cmd.OutOrStdout(), a.format, traditions, func(tw *tabwriter.Writer) {
				row(tw, "ID", "LABEL", "ORIGIN", "CYCLES")
				for _, t := range traditions {
					ids := make([]string, 0, t.CycleCount())
					for _, c := range t.Cycles {
						ids = append(ids, c.ID)
					}
					row(tw, t.ID, t.Name, t.Origin, strings.Join(ids, ", "))
				}
			})
		},
	}
}

func (a *app) showTradition(cmd *cobra.Command, id string) error {
	t, ok := a.svc.FindTradition(id)
	if !ok {
		return fmt.Errorf("tradition %q not found", id)
	}

	return render(cmd.OutOrStdout(), a.format, t, func(tw *tabwriter.Writer) {
		row(tw, "ID", t.ID)
		row(tw, "Title", t.Title)
		row(tw, "Label", t.Name)
		row(tw, "Origin", t.Origin)
		row(tw, "Key texts", strings.Join(t.KeyTexts, "; "))
		row(tw, "Significance", t.Significance)
		row(tw, "Description", t.Description)
		for _, c := range t.Cycles {
			row(tw, "Cycle", fmt.Sprintf("%s (%s)", c.Name, calendar.FormatSpan(c.StartYear, c.EndYear)))
		}
	})
}
