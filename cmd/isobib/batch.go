package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/isobib"
	"github.com/fwojciec/isobib/scrape"
	"github.com/fwojciec/isobib/yaml"
)

// Run executes the batch command.
func (c *BatchCmd) Run(deps *Dependencies) error {
	f, err := os.Open(c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}
	defer f.Close()

	hits, err := yaml.DecodeHits(f)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", isobib.ErrorMessage(err))
		return err
	}
	hits = uniqueHits(hits)

	if c.Concurrency > 0 {
		deps.Scraper.Concurrency = c.Concurrency
	}

	progress := func(event scrape.ProgressEvent) {
		if event.Error != nil {
			fmt.Fprintf(deps.Stderr, "  [%d/%d] fail %s: %s\n", event.Completed, event.Total, event.Hit.Title, isobib.ErrorMessage(event.Error))
			return
		}
		fmt.Fprintf(deps.Stderr, "  [%d/%d] %s\n", event.Completed, event.Total, event.Hit.Title)
	}

	results, err := deps.Scraper.ParseAll(deps.Ctx, hits, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	var resolved, skipped, failed int
	for _, r := range results {
		switch {
		case r.Skipped():
			skipped++
		case r.Err != nil:
			failed++
		default:
			if err := c.emit(deps, r); err != nil {
				failed++
			} else {
				resolved++
			}
		}
	}

	fmt.Fprintf(deps.Stderr, "Resolved %d of %d hits (%d skipped, %d failed)\n", resolved, len(results), skipped, failed)
	if failed > 0 {
		return isobib.Errorf(isobib.EFETCH, "%d of %d hits failed", failed, len(results))
	}
	return nil
}

// emit saves and outputs one resolved item. Errors are reported on stderr.
func (c *BatchCmd) emit(deps *Dependencies, r scrape.Result) error {
	item := r.Item
	if err := item.Validate(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s: %s\n", r.Hit.Title, isobib.ErrorMessage(err))
		return err
	}

	if c.Save {
		if _, err := deps.Items.SaveItem(deps.Ctx, item); err != nil {
			fmt.Fprintf(deps.Stderr, "error: saving %s: %s\n", item.PrimaryID(), isobib.ErrorMessage(err))
			return err
		}
	}
	if c.Out != "" || !c.Save {
		if c.Out == "" && c.Format == "yaml" {
			fmt.Fprintln(deps.Stdout, "---")
		}
		if err := output(deps, item, c.Format, c.Out); err != nil {
			fmt.Fprintf(deps.Stderr, "error: writing %s: %s\n", item.PrimaryID(), isobib.ErrorMessage(err))
			return err
		}
	}
	return nil
}

// uniqueHits drops hits pointing at a document already listed. Hits that
// are not document pages are kept so they are reported as skipped.
func uniqueHits(hits []isobib.Hit) []isobib.Hit {
	seen := make(map[string]bool, len(hits))
	out := hits[:0:0]
	for _, h := range hits {
		if n, ok := h.DocumentNumber(); ok {
			if seen[n] {
				continue
			}
			seen[n] = true
		}
		out = append(out, h)
	}
	return out
}
