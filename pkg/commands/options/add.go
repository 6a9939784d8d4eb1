package options

import (
	"github.com/spf13/cobra"
)

// ItemOptions carries the editable fields of an item.
type ItemOptions struct {
	Title       string
	Description string
}

func AddDescriptionArg(cmd *cobra.Command, o *ItemOptions) {
	cmd.Flags().StringVarP(&o.Description, "description", "d", "",
		"Longer notes for the item.")
}

func AddTitleArg(cmd *cobra.Command, o *ItemOptions) {
	cmd.Flags().StringVarP(&o.Title, "title", "t", "",
		"New title for the item.")
}
