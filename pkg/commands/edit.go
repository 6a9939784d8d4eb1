package commands

import (
	"context"
	"errors"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/commands/options"
	"tableflip.dev/daybook/pkg/runner/edit"
)

func addEdit(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	ito := &options.ItemOptions{}
	oo := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:   "edit <item id>",
		Short: "Change the title, description or day of an item",
		Example: `
daybook edit <item id> --title "buy oat milk"
daybook edit <item id> --description ""
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires exactly one item id")
			}
			return io.SetIDs(args)
		},
		ValidArgsFunction: idCompletions,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := context.Background()
			on, err := oo.GetOn()
			if err != nil {
				return output.HandleError(err)
			}
			s := edit.Edit{
				ID:     io.IDs[0],
				On:     on,
				ShowID: io.ShowID,
				JSON:   output.JSON,
			}
			if cmd.Flags().Changed("title") {
				s.Title = &ito.Title
			}
			if cmd.Flags().Changed("description") {
				s.Description = &ito.Description
			}
			if s.Service, err = openService(ctx); err != nil {
				return output.HandleError(err)
			}
			err = s.Do(ctx)
			return output.HandleError(err)
		},
	}

	options.AddTitleArg(cmd, ito)
	options.AddDescriptionArg(cmd, ito)
	options.AddOnArgs(cmd, oo, "Move the item to this day.")
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}

func addMove(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "move <item id> <day>",
		Short: "Move an item to another day",
		Example: `
daybook move <item id> tomorrow
daybook move <item id> 2024-3-1
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("requires an item id and a day")
			}
			return io.SetIDs(args[:1])
		},
		ValidArgsFunction: idCompletions,
		RunE: func(_ *cobra.Command, args []string) error {
			ctx := context.Background()
			on, err := options.ParseDay(args[1], time.Now())
			if err != nil {
				return output.HandleError(err)
			}
			if on.IsZero() {
				return output.HandleError(errors.New("requires a day"))
			}
			svc, err := openService(ctx)
			if err != nil {
				return output.HandleError(err)
			}
			s := edit.Edit{
				ID:      io.IDs[0],
				On:      on,
				ShowID:  io.ShowID,
				JSON:    output.JSON,
				Service: svc,
			}
			err = s.Do(ctx)
			return output.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
