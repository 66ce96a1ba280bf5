package isobib

import (
	"context"
	"time"
)

// StoredItem is an item persisted by an ItemService.
type StoredItem struct {
	ID          string    `json:"id"`
	DocID       string    `json:"docId"`
	Item        *Item     `json:"item"`
	ContentHash string    `json:"contentHash"`
	SavedAt     time.Time `json:"savedAt"`
}

// ItemService represents a service for managing fetched items.
type ItemService interface {
	// SaveItem stores the item under its primary identifier, replacing any
	// previous version. Saving unchanged content keeps the existing record.
	// Returns EINVALID if the item has no document identifier.
	SaveItem(ctx context.Context, item *Item) (*StoredItem, error)

	// FindItemByDocID retrieves an item by its primary identifier.
	// Returns ENOTFOUND if the item does not exist.
	FindItemByDocID(ctx context.Context, docID string) (*StoredItem, error)

	// FindItems retrieves items matching the filter, ordered by identifier.
	FindItems(ctx context.Context, filter ItemFilter) ([]*StoredItem, error)

	// DeleteItem permanently removes an item.
	// Returns ENOTFOUND if the item does not exist.
	DeleteItem(ctx context.Context, docID string) error
}

// ItemFilter represents a filter for FindItems.
type ItemFilter struct {
	// DocIDPrefix restricts results to identifiers starting with the prefix.
	DocIDPrefix *string `json:"docIdPrefix"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// ItemEncoder serializes items into an interchange format.
type ItemEncoder interface {
	// Encode renders the item.
	Encode(item *Item) ([]byte, error)

	// Extension returns the file extension of the format, without the dot.
	Extension() string
}

// ItemWriter writes items to an output destination.
type ItemWriter interface {
	WriteItem(ctx context.Context, item *Item) error
}
