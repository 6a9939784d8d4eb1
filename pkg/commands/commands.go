package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/daybook/pkg/commands/options"
)

var (
	output = &options.OutputOptions{}
	logs   = &options.LogOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "daybook",
		Short: base.Wrap80("Day-by-day task list on the command line."),
		Long: base.Wrap80("daybook files tasks under the calendar day they belong to. " +
			"Items can be completed, edited, moved to another day, searched and summarized. " +
			"The daybook is stored as a single JSON document under the configured path."),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	options.AddOutputArg(cmd, output)
	options.AddLogArgs(cmd, logs)

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addKey(topLevel)
	addAdd(topLevel)
	addGet(topLevel)
	addSearch(topLevel)
	addComplete(topLevel)
	addEdit(topLevel)
	addMove(topLevel)
	addRemove(topLevel)
	addClear(topLevel)
	addStats(topLevel)
	addReport(topLevel)
	addMonth(topLevel)
	addMigrate(topLevel)
	addCompletions(topLevel)
	addVersion(topLevel)
}
