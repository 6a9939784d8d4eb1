package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/commands/options"
	"tableflip.dev/daybook/pkg/runner/remove"
)

func addRemove(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "rm <item id>...",
		Aliases: []string{"remove", "delete"},
		Short:   "Delete items",
		Long:    "Delete items. When several ids are given, either all of them are deleted or none are.",
		Example: `
daybook rm <item id>
daybook rm <item id> <item id>
`,
		Args: func(_ *cobra.Command, args []string) error {
			return io.SetIDs(args)
		},
		ValidArgsFunction: idCompletions,
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx := context.Background()
			svc, err := openService(ctx)
			if err != nil {
				return output.HandleError(err)
			}
			s := remove.Remove{
				IDs:     io.IDs,
				Service: svc,
			}
			err = s.Do(ctx)
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addClear(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	all := false

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every item on a day, or everything",
		Example: `
daybook clear --on yesterday
daybook clear --all
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := context.Background()
			if !all && !cmd.Flags().Changed("on") {
				return output.HandleError(errors.New("choose a day with --on, or --all"))
			}
			day, err := oo.GetDayKey()
			if err != nil {
				return output.HandleError(err)
			}
			svc, err := openService(ctx)
			if err != nil {
				return output.HandleError(err)
			}
			s := remove.Clear{
				Day:     day,
				All:     all,
				Service: svc,
			}
			err = s.Do(ctx)
			return output.HandleError(err)
		},
	}

	options.AddOnArgs(cmd, oo, "Day to clear.")
	cmd.Flags().BoolVar(&all, "all", false, "Delete the whole daybook.")
	_ = cmd.RegisterFlagCompletionFunc("on", dayCompletions)

	topLevel.AddCommand(cmd)
}
