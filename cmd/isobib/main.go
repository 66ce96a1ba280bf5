package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/isobib"
	"github.com/fwojciec/isobib/etree"
	isohttp "github.com/fwojciec/isobib/http"
	"github.com/fwojciec/isobib/scrape"
	isoslog "github.com/fwojciec/isobib/slog"
	"github.com/fwojciec/isobib/sqlite"
	"github.com/fwojciec/isobib/yaml"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path used when neither --db nor ISOBIB_DB is set.
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Items is opened on demand by commands that read or save items.
	Items isobib.ItemService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Encoders: map[string]isobib.ItemEncoder{
			"yaml": yaml.NewEncoder(),
			"xml":  etree.NewEncoder(),
			"json": jsonEncoder{},
		},
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("isobib"),
		kong.Description("Fetch bibliographic items for ISO standards from www.iso.org."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'isobib --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	deps.Scraper = &scrape.Scraper{
		Fetcher: isoslog.NewLoggingFetcher(
			isohttp.NewFetcher(
				isohttp.WithBaseURL(cli.BaseURL),
				isohttp.WithTimeout(cli.Timeout),
			),
			deps.Logger,
		),
		Domain: strings.TrimSuffix(cli.BaseURL, "/"),
	}

	if needsDB(cmd, cli) {
		if err := m.openItems(cli.DB, stderr); err != nil {
			return err
		}
		defer m.Close()
		deps.Items = isoslog.NewLoggingItemService(m.Items, deps.Logger)
	}

	return kongCtx.Run(deps)
}

// openItems opens the database unless an item service was injected.
func (m *Main) openItems(path string, stderr io.Writer) error {
	if m.Items != nil {
		return nil
	}
	if path == "" {
		path = m.DBPath
	}

	m.DB = sqlite.NewDB(path)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set ISOBIB_DB or --db to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", path, err)
	}
	m.Items = sqlite.NewItemService(m.DB)
	return nil
}

func needsDB(cmd string, cli *CLI) bool {
	switch cmd {
	case "list", "show", "delete":
		return true
	case "fetch":
		return cli.Fetch.Save
	case "batch":
		return cli.Batch.Save
	}
	return false
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "isobib.db"
	}
	dir := filepath.Join(home, ".isobib")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "isobib.db")
}
