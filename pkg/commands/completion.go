package commands

import (
	"context"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/store"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(daybook completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(daybook completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(os.Stdout)
		},
	}

	topLevel.AddCommand(cmd)
}

// quietService opens the daybook for shell completion, which must not print.
func quietService() *app.Service {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil
	}
	blob, err := store.Load(cfg)
	if err != nil {
		return nil
	}
	log, _ := newLogger("panic")
	svc, err := app.Open(context.Background(), blob, app.WithKey(cfg.Key()), app.WithLogger(log))
	if err != nil {
		return nil
	}
	return svc
}

func dayCompletions(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	svc := quietService()
	if svc == nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var days []string
	for _, d := range svc.Days() {
		if strings.HasPrefix(d, toComplete) {
			days = append(days, d)
		}
	}
	return days, cobra.ShellCompDirectiveNoFileComp
}

func idCompletions(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	svc := quietService()
	if svc == nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var ids []string
	for _, it := range svc.AllItems() {
		if strings.HasPrefix(it.ID, toComplete) {
			ids = append(ids, it.ID+"\t"+it.Title)
		}
	}
	return ids, cobra.ShellCompDirectiveNoFileComp
}
