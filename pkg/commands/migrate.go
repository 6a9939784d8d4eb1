package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/commands/options"
	"tableflip.dev/daybook/pkg/runner/migrate"
)

func addMigrate(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	from := &options.OnOptions{}
	to := &options.OnOptions{}
	dryRun := false

	cmd := &cobra.Command{
		Use:     "migrate",
		Aliases: []string{"migration"},
		Short:   "Carry pending items forward to today",
		Long: "Move every pending item left on an earlier day onto today, or onto --to. " +
			"With --from only that day is migrated. Completed items stay where they are.",
		Example: `
daybook migrate --dry-run
daybook migrate
daybook migrate --from yesterday --to tomorrow
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := context.Background()
			s := migrate.Migrate{
				DryRun: dryRun,
				ShowID: io.ShowID,
				JSON:   output.JSON,
			}
			var err error
			if cmd.Flags().Changed("from") {
				if s.From, err = from.GetDayKey(); err != nil {
					return output.HandleError(err)
				}
			}
			if s.To, err = to.GetDayKey(); err != nil {
				return output.HandleError(err)
			}
			if s.Service, err = openService(ctx); err != nil {
				return output.HandleError(err)
			}
			err = s.Do(ctx)
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&from.OnString, "from", "", "Only migrate this day.")
	cmd.Flags().StringVar(&to.OnString, "to", "", "Day to move items onto, defaults to today.")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "List what would move without changing anything.")
	_ = cmd.RegisterFlagCompletionFunc("from", dayCompletions)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
