package main

import (
	"fmt"

	"github.com/fwojciec/isobib"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	stored, err := deps.Items.FindItemByDocID(deps.Ctx, c.DocID)
	if isobib.ErrorCode(err) == isobib.ENOTFOUND {
		fmt.Fprintf(deps.Stderr, "error: item %q not found. Use 'isobib list' to see saved items.\n", c.DocID)
		return err
	} else if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", isobib.ErrorMessage(err))
		return err
	}

	if err := output(deps, stored.Item, c.Format, ""); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", isobib.ErrorMessage(err))
		return err
	}
	return nil
}
