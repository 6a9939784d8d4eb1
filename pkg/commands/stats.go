package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/commands/options"
	"tableflip.dev/daybook/pkg/runner/stats"
)

func addStats(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show how many items are done",
		Example: `
daybook stats
daybook stats --json
`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx := context.Background()
			svc, err := openService(ctx)
			if err != nil {
				return output.HandleError(err)
			}
			s := stats.Stats{
				JSON:    output.JSON,
				Service: svc,
			}
			err = s.Do(ctx)
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addReport(topLevel *cobra.Command) {
	wo := &options.WindowOptions{}

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Summarize completion day by day",
		Example: `
daybook report
daybook report --last 2w
daybook report --last 3d --until 2024-3-1
`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx := context.Background()
			since, until, _, err := wo.Range()
			if err != nil {
				return output.HandleError(err)
			}
			svc, err := openService(ctx)
			if err != nil {
				return output.HandleError(err)
			}
			s := stats.Report{
				Since:   since,
				Until:   until,
				JSON:    output.JSON,
				Service: svc,
			}
			err = s.Do(ctx)
			return output.HandleError(err)
		},
	}

	options.AddWindowArgs(cmd, wo)

	topLevel.AddCommand(cmd)
}

func addMonth(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	months := 1
	long := false

	cmd := &cobra.Command{
		Use:     "month",
		Aliases: []string{"calendar", "cal"},
		Short:   "Show a month calendar with the days that have items",
		Example: `
daybook month
daybook month --on 2024-2-1 --months 3
daybook month --long
`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx := context.Background()
			on, err := oo.GetOn()
			if err != nil {
				return output.HandleError(err)
			}
			svc, err := openService(ctx)
			if err != nil {
				return output.HandleError(err)
			}
			s := stats.Month{
				On:      on,
				Months:  months,
				Long:    long,
				Service: svc,
			}
			err = s.Do(ctx)
			return output.HandleError(err)
		},
	}

	options.AddOnArgs(cmd, oo, "A day in the first month to show, defaults to today.")
	cmd.Flags().IntVarP(&months, "months", "n", 1, "Number of months to show.")
	cmd.Flags().BoolVarP(&long, "long", "l", false, "List each day's items instead of a grid.")

	topLevel.AddCommand(cmd)
}
