package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/commands/options"
	"tableflip.dev/daybook/pkg/glyph"
	"tableflip.dev/daybook/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	lo := &options.ListOptions{}
	oo := &options.OnOptions{}

	long := strings.Builder{}
	long.WriteString("List the items filed under a day, or every day with --all.\n\n")
	long.WriteString("Status glyphs:\n")
	for _, g := range glyph.Legend() {
		long.WriteString(fmt.Sprintf("%s: %s\n", g.Symbol, g.Meaning))
	}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"get", "ls"},
		Short:   "List items",
		Long:    long.String(),
		Example: `
daybook list
daybook list --on yesterday --status pending
daybook list --all --sort title --order desc
daybook list --watch
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
			defer cancel()

			day, err := oo.GetDayKey()
			if err != nil {
				return output.HandleError(err)
			}
			svc, err := openService(ctx)
			if err != nil {
				return output.HandleError(err)
			}
			s := get.Get{
				Day:     day,
				All:     lo.All,
				Status:  lo.Status,
				Key:     lo.SortKey(),
				Order:   lo.SortOrder(),
				ShowID:  io.ShowID,
				JSON:    output.JSON,
				Watch:   lo.Watch,
				Service: svc,
			}
			err = s.Do(ctx)
			return output.HandleError(err)
		},
	}

	options.AddListArgs(cmd, lo)
	options.AddWatchArg(cmd, lo)
	options.AddOnArgs(cmd, oo, "Day to list, defaults to today.")
	options.AddShowIDArgs(cmd, io)
	_ = cmd.RegisterFlagCompletionFunc("on", dayCompletions)
	_ = cmd.RegisterFlagCompletionFunc("status", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"any", "pending", "done"}, cobra.ShellCompDirectiveNoFileComp
	})

	topLevel.AddCommand(cmd)
}
