package main

import (
	"fmt"

	"github.com/fwojciec/isobib"
)

// Run executes the fetch command.
func (c *FetchCmd) Run(deps *Dependencies) error {
	hit := isobib.Hit{Path: c.Path, Title: c.Title}

	item, err := deps.Scraper.ParsePage(deps.Ctx, hit)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", isobib.ErrorMessage(err))
		return err
	}
	if item == nil {
		fmt.Fprintf(deps.Stderr, "error: %q does not end in a document number\n", c.Path)
		return isobib.Errorf(isobib.EINVALID, "%q is not a document page", c.Path)
	}

	if c.Save {
		stored, err := deps.Items.SaveItem(deps.Ctx, item)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", isobib.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stderr, "Saved %s (%s)\n", stored.DocID, stored.ID)
	}

	if err := output(deps, item, c.Format, c.Out); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", isobib.ErrorMessage(err))
		return err
	}
	return nil
}
