package options

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// LogOptions
type LogOptions struct {
	Level string
}

// AddLogArgs registers --log-level and binds it to the log-level config key,
// so the flag wins over DAYBOOK_LOG_LEVEL and the config file.
func AddLogArgs(cmd *cobra.Command, o *LogOptions) {
	cmd.PersistentFlags().StringVar(&o.Level, "log-level", "",
		"Log level: trace, debug, info, warn, error.")
	_ = viper.BindPFlag("log-level", cmd.PersistentFlags().Lookup("log-level"))
}
