package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/isobib"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ isobib.ItemService = (*ItemService)(nil)

// ItemService implements isobib.ItemService using SQLite. Items are stored
// as JSON documents keyed by their primary identifier.
type ItemService struct {
	db *DB
}

// NewItemService creates a new ItemService.
func NewItemService(db *DB) *ItemService {
	return &ItemService{db: db}
}

const itemColumns = "id, doc_id, data, content_hash, saved_at"

// SaveItem stores item under its primary identifier. The fetch date does
// not count as content, so refetching an unchanged standard keeps the
// existing record.
func (s *ItemService) SaveItem(ctx context.Context, item *isobib.Item) (*isobib.StoredItem, error) {
	if err := item.Validate(); err != nil {
		return nil, err
	}

	data, err := json.Marshal(item)
	if err != nil {
		return nil, fmt.Errorf("failed to encode item: %w", err)
	}
	hash, err := contentHash(item)
	if err != nil {
		return nil, err
	}

	docID := item.PrimaryID()
	sourceURL, _ := item.Link(isobib.LinkSource)

	existing, err := s.FindItemByDocID(ctx, docID)
	switch {
	case err == nil && existing.ContentHash == hash:
		return existing, nil
	case err != nil && isobib.ErrorCode(err) != isobib.ENOTFOUND:
		return nil, err
	}

	stored := &isobib.StoredItem{
		DocID:       docID,
		Item:        item,
		ContentHash: hash,
		SavedAt:     time.Now().UTC().Truncate(time.Second),
	}

	if existing != nil {
		stored.ID = existing.ID
		_, err = s.db.ExecContext(ctx, `
			UPDATE items
			SET source_url = ?, data = ?, content_hash = ?, saved_at = ?
			WHERE id = ?
		`, sourceURL, string(data), hash, stored.SavedAt.Format(time.RFC3339), stored.ID)
	} else {
		stored.ID = uuid.New().String()
		_, err = s.db.ExecContext(ctx, `
			INSERT INTO items (id, doc_id, source_url, data, content_hash, saved_at)
			VALUES (?, ?, ?, ?, ?, ?)
		`, stored.ID, docID, sourceURL, string(data), hash, stored.SavedAt.Format(time.RFC3339))
	}
	if err != nil {
		return nil, err
	}

	return stored, nil
}

// FindItemByDocID retrieves an item by its primary identifier.
func (s *ItemService) FindItemByDocID(ctx context.Context, docID string) (*isobib.StoredItem, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+itemColumns+" FROM items WHERE doc_id = ?", docID)
	stored, err := scanItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, isobib.Errorf(isobib.ENOTFOUND, "item %q not found", docID)
	}
	if err != nil {
		return nil, err
	}
	return stored, nil
}

// FindItems retrieves items matching the filter, ordered by identifier.
func (s *ItemService) FindItems(ctx context.Context, filter isobib.ItemFilter) ([]*isobib.StoredItem, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + itemColumns + " FROM items WHERE 1=1")

	if filter.DocIDPrefix != nil {
		query.WriteString(" AND substr(doc_id, 1, length(?)) = ?")
		args = append(args, *filter.DocIDPrefix, *filter.DocIDPrefix)
	}

	query.WriteString(" ORDER BY doc_id ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*isobib.StoredItem
	for rows.Next() {
		stored, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, stored)
	}

	return items, rows.Err()
}

// DeleteItem permanently removes an item.
func (s *ItemService) DeleteItem(ctx context.Context, docID string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM items WHERE doc_id = ?", docID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return isobib.Errorf(isobib.ENOTFOUND, "item %q not found", docID)
	}

	return nil
}

// scanner is implemented by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanItem(row scanner) (*isobib.StoredItem, error) {
	var stored isobib.StoredItem
	var data, savedAt string

	if err := row.Scan(&stored.ID, &stored.DocID, &data, &stored.ContentHash, &savedAt); err != nil {
		return nil, err
	}

	var item isobib.Item
	if err := json.Unmarshal([]byte(data), &item); err != nil {
		return nil, fmt.Errorf("failed to decode item %s: %w", stored.DocID, err)
	}
	stored.Item = &item

	var err error
	stored.SavedAt, err = parseRFC3339(savedAt, "saved_at")
	if err != nil {
		return nil, err
	}

	return &stored, nil
}

// contentHash hashes the item without its fetch date.
func contentHash(item *isobib.Item) (string, error) {
	c := *item
	c.Fetched = ""
	data, err := json.Marshal(&c)
	if err != nil {
		return "", fmt.Errorf("failed to encode item: %w", err)
	}
	return hashContent(data), nil
}
