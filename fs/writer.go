// Package fs provides file-based output for bibliographic items.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/fwojciec/isobib"
)

// ItemFileName converts an item reference to a file name with the given
// extension. Characters other than letters, digits, dots and hyphens
// become underscores.
// Example: ISO/TS 19139:2007 → ISO_TS_19139_2007.yaml
func ItemFileName(ref, ext string) string {
	name := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '.' {
			return r
		}
		return '_'
	}, ref)
	return name + "." + ext
}

// Ensure Writer implements isobib.ItemWriter at compile time.
var _ isobib.ItemWriter = (*Writer)(nil)

// Writer writes each item to its own file in a directory.
type Writer struct {
	baseDir string
	encoder isobib.ItemEncoder
}

// NewWriter creates a new Writer that encodes items with encoder and writes
// them to the given base directory.
func NewWriter(baseDir string, encoder isobib.ItemEncoder) *Writer {
	return &Writer{baseDir: baseDir, encoder: encoder}
}

// WriteItem encodes item and writes it to disk, replacing any previous
// file for the same reference. Readers never observe a partial file.
func (w *Writer) WriteItem(ctx context.Context, item *isobib.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	data, err := w.encoder.Encode(item)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return err
	}

	fullPath := filepath.Join(w.baseDir, ItemFileName(item.PrimaryID(), w.encoder.Extension()))

	tmp, err := os.CreateTemp(w.baseDir, ".isobib-*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), fullPath)
}
