package options

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"
)

// IDOptions
type IDOptions struct {
	ShowID bool
	IDs    []string
}

func AddShowIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().BoolVarP(&o.ShowID, "show-id", "k", false,
		"Show the ID of each item.")
}

// SetIDs takes item ids from positional args. At least one is required.
func (o *IDOptions) SetIDs(args []string) error {
	o.IDs = o.IDs[:0]
	for _, a := range args {
		if id := strings.TrimSpace(a); id != "" {
			o.IDs = append(o.IDs, id)
		}
	}
	if len(o.IDs) == 0 {
		return errors.New("requires an item id")
	}
	return nil
}
