package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/prophecy-cycles/internal/calendar"
	"github.com/zapponejosh/prophecy-cycles/internal/timeline"
)

// axisWidth is the marker axis length at 100% zoom.
const axisWidth = 40

func (a *app) timelineCmd() *cobra.Command {
	var (
		zoom    int
		step    int
		related bool
	)

	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "Show catalog events on a normalized axis",
		Long: `Prints catalog events in year order with their position between the
earliest and latest event. --zoom (50-200) widens or narrows the axis and
--step moves it by steps of 10 from there (negative zooms out);
--related adds the cycles that start or end in each event's year.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			zoom = timeline.StepZoom(zoom, step)
			p := a.svc.Timeline()
			width := axisWidth * zoom / timeline.DefaultZoom

			return render(cmd.OutOrStdout(), a.format, p, func(tw *tabwriter.Writer) {
				header := []any{"YEAR", "POS", "AXIS", "TRADITION", "EVENT"}
				if related {
					header = append(header, "RELATED")
				}
				row(tw, header...)

				for i, pt := range p.Points {
					cells := []any{
						calendar.FormatYear(pt.Event.Year),
						fmt.Sprintf("%5.1f%%", pt.Position),
						marker(pt.Position, width),
						pt.Event.Tradition,
						pt.Event.Event,
					}
					if related {
						var ids []string
						for _, c := range p.RelatedCycles(i) {
							ids = append(ids, c.ID)
						}
						cells = append(cells, strings.Join(ids, ", "))
					}
					row(tw, cells...)
				}
			})
		},
	}

	cmd.Flags().IntVarP(&zoom, "zoom", "z", timeline.DefaultZoom, "axis zoom in percent (50-200)")
	cmd.Flags().IntVar(&step, "step", 0, "zoom steps of 10 applied after --zoom")
	cmd.Flags().BoolVarP(&related, "related", "r", false, "list cycles bounded by each event's year")
	return cmd
}
