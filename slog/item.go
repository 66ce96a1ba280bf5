package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/isobib"
)

// Ensure LoggingItemService implements isobib.ItemService.
var _ isobib.ItemService = (*LoggingItemService)(nil)

// LoggingItemService wraps an ItemService with debug logging.
type LoggingItemService struct {
	next   isobib.ItemService
	logger *slog.Logger
}

// NewLoggingItemService creates a new LoggingItemService.
func NewLoggingItemService(next isobib.ItemService, logger *slog.Logger) *LoggingItemService {
	return &LoggingItemService{next: next, logger: logger}
}

// SaveItem delegates to the wrapped service and logs the stored record.
func (s *LoggingItemService) SaveItem(ctx context.Context, item *isobib.Item) (stored *isobib.StoredItem, err error) {
	defer func(begin time.Time) {
		attrs := []any{"docid", item.PrimaryID(), "duration", time.Since(begin)}
		if stored != nil {
			attrs = append(attrs, "id", stored.ID, "hash", stored.ContentHash)
		}
		s.logger.Debug("save item", append(attrs, "err", err)...)
	}(time.Now())
	return s.next.SaveItem(ctx, item)
}

// FindItemByDocID delegates to the wrapped service.
func (s *LoggingItemService) FindItemByDocID(ctx context.Context, docID string) (stored *isobib.StoredItem, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find item",
			"docid", docID,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindItemByDocID(ctx, docID)
}

// FindItems delegates to the wrapped service and logs the result count.
func (s *LoggingItemService) FindItems(ctx context.Context, filter isobib.ItemFilter) (items []*isobib.StoredItem, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find items",
			"count", len(items),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindItems(ctx, filter)
}

// DeleteItem delegates to the wrapped service.
func (s *LoggingItemService) DeleteItem(ctx context.Context, docID string) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("delete item",
			"docid", docID,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteItem(ctx, docID)
}
