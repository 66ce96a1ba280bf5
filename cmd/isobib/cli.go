package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/isobib"
	"github.com/fwojciec/isobib/scrape"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Scraper  *scrape.Scraper
	Items    isobib.ItemService
	Encoders map[string]isobib.ItemEncoder
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB      string        `name:"db" env:"ISOBIB_DB" help:"Database path (default ~/.isobib/isobib.db)"`
	BaseURL string        `name:"base-url" env:"ISOBIB_BASE_URL" default:"https://www.iso.org" help:"Site root standard pages are fetched from"`
	Timeout time.Duration `env:"ISOBIB_TIMEOUT" default:"10s" help:"Timeout for each HTTP request"`
	Verbose bool          `short:"v" help:"Log every request"`

	Fetch  FetchCmd  `cmd:"" help:"Fetch one standard and print its bibliographic item"`
	Batch  BatchCmd  `cmd:"" help:"Fetch every standard listed in a YAML hit file"`
	List   ListCmd   `cmd:"" help:"List saved items"`
	Show   ShowCmd   `cmd:"" help:"Print a saved item"`
	Delete DeleteCmd `cmd:"" help:"Delete a saved item"`
}

// FetchCmd is the "fetch" subcommand.
type FetchCmd struct {
	Path   string `arg:"" help:"Hit path ending in the document number, e.g. /contents/data/standard/05/37/53798"`
	Title  string `arg:"" help:"Hit title, e.g. 'ISO 19115-1:2014'"`
	Format string `short:"f" enum:"yaml,xml,json" default:"yaml" help:"Output format (yaml, xml, json)"`
	Out    string `short:"o" type:"path" help:"Write the item to a file in this directory instead of stdout"`
	Save   bool   `short:"s" help:"Save the item in the database"`
}

// BatchCmd is the "batch" subcommand.
type BatchCmd struct {
	File        string `arg:"" type:"existingfile" help:"YAML list of hits with path and title"`
	Format      string `short:"f" enum:"yaml,xml,json" default:"yaml" help:"Output format (yaml, xml, json)"`
	Out         string `short:"o" type:"path" help:"Write one file per item to this directory"`
	Save        bool   `short:"s" help:"Save the items in the database"`
	Concurrency int    `short:"c" env:"ISOBIB_CONCURRENCY" default:"1" help:"Standards fetched at once"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Prefix string `short:"p" help:"Only list references starting with this prefix"`
	Limit  int    `short:"n" help:"Maximum number of items to list"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	DocID  string `arg:"" name:"docid" help:"Reference of the item, e.g. 'ISO 19115-1:2014'"`
	Format string `short:"f" enum:"yaml,xml,json" default:"yaml" help:"Output format (yaml, xml, json)"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	DocID string `arg:"" name:"docid" help:"Reference of the item"`
	Force bool   `help:"Confirm deletion"`
}
