package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/isobib"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := isobib.ItemFilter{Limit: c.Limit}
	if c.Prefix != "" {
		filter.DocIDPrefix = &c.Prefix
	}

	items, err := deps.Items.FindItems(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", isobib.ErrorMessage(err))
		return err
	}

	if len(items) == 0 {
		fmt.Fprintln(deps.Stdout, "No items found. Use 'isobib fetch --save' to store one.")
		return nil
	}

	for _, it := range items {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", it.DocID, it.SavedAt.Format(time.DateOnly), mainTitle(it.Item))
	}

	return nil
}

// mainTitle returns the main title in the default language, or the first
// title when there is none.
func mainTitle(item *isobib.Item) string {
	for _, t := range item.Titles {
		if t.Language == isobib.DefaultLanguage {
			return t.Main
		}
	}
	if len(item.Titles) > 0 {
		return item.Titles[0].Main
	}
	return ""
}
