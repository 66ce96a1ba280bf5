package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/isobib"
	"github.com/fwojciec/isobib/fs"
)

// jsonEncoder renders items as indented JSON.
type jsonEncoder struct{}

func (jsonEncoder) Encode(item *isobib.Item) ([]byte, error) {
	data, err := json.MarshalIndent(item, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func (jsonEncoder) Extension() string {
	return "json"
}

// output writes item to a file in dir, or to stdout when dir is empty.
func output(deps *Dependencies, item *isobib.Item, format, dir string) error {
	enc, ok := deps.Encoders[format]
	if !ok {
		return isobib.Errorf(isobib.EINVALID, "unknown format %q", format)
	}

	if dir != "" {
		if err := fs.NewWriter(dir, enc).WriteItem(deps.Ctx, item); err != nil {
			return err
		}
		fmt.Fprintf(deps.Stdout, "Wrote %s\n", fs.ItemFileName(item.PrimaryID(), enc.Extension()))
		return nil
	}

	data, err := enc.Encode(item)
	if err != nil {
		return err
	}
	_, err = deps.Stdout.Write(data)
	return err
}
