package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/collection"
	"tableflip.dev/daybook/pkg/glyph"
)

// ListOptions selects and orders the items a listing shows.
type ListOptions struct {
	Status glyph.Status
	Key    sortKeyValue
	Order  orderValue
	All    bool
	Watch  bool
}

func AddListArgs(cmd *cobra.Command, o *ListOptions) {
	o.Key = sortKeyValue(collection.SortCreated)
	o.Order = orderValue(collection.Asc)
	cmd.Flags().VarP(&o.Status, "status", "s",
		"Only show items with this status: any, pending or done.")
	cmd.Flags().Var(&o.Key, "sort",
		"Order items within a day by created, title or completed.")
	cmd.Flags().Var(&o.Order, "order",
		"Sort order, asc or desc.")
	cmd.Flags().BoolVar(&o.All, "all", false,
		"Show every day.")
}

func AddWatchArg(cmd *cobra.Command, o *ListOptions) {
	cmd.Flags().BoolVarP(&o.Watch, "watch", "w", false,
		"Keep running and print again whenever the daybook changes.")
}

func (o *ListOptions) SortKey() collection.SortKey { return collection.SortKey(o.Key) }
func (o *ListOptions) SortOrder() collection.Order { return collection.Order(o.Order) }

type sortKeyValue collection.SortKey

func (v *sortKeyValue) String() string { return string(*v) }
func (v *sortKeyValue) Type() string   { return "key" }

func (v *sortKeyValue) Set(raw string) error {
	k, err := collection.ParseSortKey(raw)
	if err != nil {
		return err
	}
	*v = sortKeyValue(k)
	return nil
}

type orderValue collection.Order

func (v *orderValue) String() string { return string(*v) }
func (v *orderValue) Type() string   { return "order" }

func (v *orderValue) Set(raw string) error {
	o, err := collection.ParseOrder(raw)
	if err != nil {
		return err
	}
	*v = orderValue(o)
	return nil
}
