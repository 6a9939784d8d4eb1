package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/commands/options"
	"tableflip.dev/daybook/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	ito := &options.ItemOptions{}
	oo := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add an item to a day",
		Example: `
daybook add buy milk
daybook add call the bank --on tomorrow -d "ask about the fee"
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a title")
			}
			ito.Title = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := context.Background()
			on, err := oo.GetOn()
			if err != nil {
				return output.HandleError(err)
			}
			svc, err := openService(ctx)
			if err != nil {
				return output.HandleError(err)
			}
			s := add.Add{
				Title:       ito.Title,
				Description: ito.Description,
				On:          on,
				ShowID:      io.ShowID,
				JSON:        output.JSON,
				Service:     svc,
			}
			err = s.Do(ctx)
			return output.HandleError(err)
		},
	}

	options.AddDescriptionArg(cmd, ito)
	options.AddOnArgs(cmd, oo, "Day to file the item under, defaults to today.")
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
