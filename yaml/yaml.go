// Package yaml reads hit lists and writes items as YAML.
package yaml

import (
	"bytes"
	"fmt"
	"io"

	"github.com/fwojciec/isobib"
	"gopkg.in/yaml.v3"
)

// Ensure Encoder implements isobib.ItemEncoder.
var _ isobib.ItemEncoder = (*Encoder)(nil)

// Encoder renders items as YAML documents.
type Encoder struct{}

// NewEncoder creates a new Encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Encode renders item as a YAML document indented by two spaces.
func (e *Encoder) Encode(item *isobib.Item) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(item); err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", item.PrimaryID(), err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Extension returns "yaml".
func (e *Encoder) Extension() string {
	return "yaml"
}

// DecodeHits reads a YAML sequence of hits:
//
//	- path: /contents/data/standard/05/37/53798
//	  title: ISO 19115-1:2014
//
// An empty input yields no hits.
func DecodeHits(r io.Reader) ([]isobib.Hit, error) {
	var hits []isobib.Hit
	if err := yaml.NewDecoder(r).Decode(&hits); err != nil && err != io.EOF {
		return nil, isobib.Errorf(isobib.EINVALID, "invalid hit list: %v", err)
	}
	return hits, nil
}
