package main

import (
	"fmt"

	"github.com/fwojciec/isobib"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return isobib.Errorf(isobib.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Items.DeleteItem(deps.Ctx, c.DocID); err != nil {
		if isobib.ErrorCode(err) == isobib.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: item %q not found. Use 'isobib list' to see saved items.\n", c.DocID)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", isobib.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted item %q\n", c.DocID)
	return nil
}
