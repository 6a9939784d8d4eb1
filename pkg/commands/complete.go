package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/commands/options"
	"tableflip.dev/daybook/pkg/item"
	"tableflip.dev/daybook/pkg/runner/complete"
)

func addComplete(topLevel *cobra.Command) {
	addCompleteCommand(topLevel, &cobra.Command{
		Use:     "done <item id>...",
		Aliases: []string{"complete", "completed"},
		Short:   "Mark items done",
		Example: `
daybook done <item id>
daybook done <item id> <item id>
`,
	}, item.Ref(true))

	addCompleteCommand(topLevel, &cobra.Command{
		Use:     "undo <item id>...",
		Aliases: []string{"reopen"},
		Short:   "Mark items pending again",
		Example: `
daybook undo <item id>
`,
	}, item.Ref(false))

	addCompleteCommand(topLevel, &cobra.Command{
		Use:   "toggle <item id>",
		Short: "Flip an item between done and pending",
		Example: `
daybook toggle <item id>
`,
	}, nil)
}

func addCompleteCommand(topLevel, cmd *cobra.Command, completed *bool) {
	io := &options.IDOptions{}

	cmd.Args = func(_ *cobra.Command, args []string) error {
		return io.SetIDs(args)
	}
	cmd.ValidArgsFunction = idCompletions
	cmd.RunE = func(_ *cobra.Command, _ []string) error {
		ctx := context.Background()
		svc, err := openService(ctx)
		if err != nil {
			return output.HandleError(err)
		}
		s := complete.Complete{
			IDs:       io.IDs,
			Completed: completed,
			JSON:      output.JSON,
			Service:   svc,
		}
		err = s.Do(ctx)
		return output.HandleError(err)
	}

	topLevel.AddCommand(cmd)
}
