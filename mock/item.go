package mock

import (
	"context"

	"github.com/fwojciec/isobib"
)

var _ isobib.ItemService = (*ItemService)(nil)

// ItemService is a mock implementation of isobib.ItemService.
type ItemService struct {
	SaveItemFn        func(ctx context.Context, item *isobib.Item) (*isobib.StoredItem, error)
	FindItemByDocIDFn func(ctx context.Context, docID string) (*isobib.StoredItem, error)
	FindItemsFn       func(ctx context.Context, filter isobib.ItemFilter) ([]*isobib.StoredItem, error)
	DeleteItemFn      func(ctx context.Context, docID string) error
}

func (s *ItemService) SaveItem(ctx context.Context, item *isobib.Item) (*isobib.StoredItem, error) {
	return s.SaveItemFn(ctx, item)
}

func (s *ItemService) FindItemByDocID(ctx context.Context, docID string) (*isobib.StoredItem, error) {
	return s.FindItemByDocIDFn(ctx, docID)
}

func (s *ItemService) FindItems(ctx context.Context, filter isobib.ItemFilter) ([]*isobib.StoredItem, error) {
	return s.FindItemsFn(ctx, filter)
}

func (s *ItemService) DeleteItem(ctx context.Context, docID string) error {
	return s.DeleteItemFn(ctx, docID)
}

var _ isobib.ItemWriter = (*ItemWriter)(nil)

// ItemWriter is a mock implementation of isobib.ItemWriter.
type ItemWriter struct {
	WriteItemFn func(ctx context.Context, item *isobib.Item) error
}

func (w *ItemWriter) WriteItem(ctx context.Context, item *isobib.Item) error {
	return w.WriteItemFn(ctx, item)
}

var _ isobib.ItemEncoder = (*ItemEncoder)(nil)

// ItemEncoder is a mock implementation of isobib.ItemEncoder.
type ItemEncoder struct {
	EncodeFn    func(item *isobib.Item) ([]byte, error)
	ExtensionFn func() string
}

func (e *ItemEncoder) Encode(item *isobib.Item) ([]byte, error) {
	return e.EncodeFn(item)
}

func (e *ItemEncoder) Extension() string {
	return e.ExtensionFn()
}
