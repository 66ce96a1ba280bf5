package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/isobib"
	"github.com/fwojciec/isobib/mock"
	isoslog "github.com/fwojciec/isobib/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func debugLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestLoggingItemService_SaveItem(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	inner := &mock.ItemService{
		SaveItemFn: func(ctx context.Context, item *isobib.Item) (*isobib.StoredItem, error) {
			return &isobib.StoredItem{ID: "abc", DocID: item.PrimaryID(), Item: item, ContentHash: "00ff"}, nil
		},
	}

	svc := isoslog.NewLoggingItemService(inner, debugLogger(&buf))
	stored, err := svc.SaveItem(context.Background(), &isobib.Item{
		DocID: []isobib.DocumentIdentifier{{ID: "ISO 1:2002", Type: "ISO"}},
	})

	require.NoError(t, err)
	assert.Equal(t, "abc", stored.ID)
	output := buf.String()
	assert.Contains(t, output, "save item")
	assert.Contains(t, output, "docid=\"ISO 1:2002\"")
	assert.Contains(t, output, "id=abc")
	assert.Contains(t, output, "hash=00ff")
}

func TestLoggingItemService_FindItems(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	inner := &mock.ItemService{
		FindItemsFn: func(ctx context.Context, filter isobib.ItemFilter) ([]*isobib.StoredItem, error) {
			return []*isobib.StoredItem{{ID: "a"}, {ID: "b"}}, nil
		},
	}

	svc := isoslog.NewLoggingItemService(inner, debugLogger(&buf))
	items, err := svc.FindItems(context.Background(), isobib.ItemFilter{})

	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Contains(t, buf.String(), "count=2")
}

func TestLoggingItemService_FindItemByDocID(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	inner := &mock.ItemService{
		FindItemByDocIDFn: func(ctx context.Context, docID string) (*isobib.StoredItem, error) {
			return nil, isobib.Errorf(isobib.ENOTFOUND, "item %q not found", docID)
		},
	}

	svc := isoslog.NewLoggingItemService(inner, debugLogger(&buf))
	_, err := svc.FindItemByDocID(context.Background(), "ISO 404")

	require.Error(t, err)
	output := buf.String()
	assert.Contains(t, output, "find item")
	assert.Contains(t, output, "docid=\"ISO 404\"")
	assert.Contains(t, output, "err=")
}

func TestLoggingItemService_DeleteItem(t *testing.T) {
	t.Parallel()

	t.Run("logs at debug level only", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.ItemService{
			DeleteItemFn: func(ctx context.Context, docID string) error { return nil },
		}

		svc := isoslog.NewLoggingItemService(inner, logger)
		require.NoError(t, svc.DeleteItem(context.Background(), "ISO 1:2002"))
		assert.Empty(t, buf.String())
	})

	t.Run("passes through errors", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.ItemService{
			DeleteItemFn: func(ctx context.Context, docID string) error { return errors.New("disk full") },
		}

		svc := isoslog.NewLoggingItemService(inner, debugLogger(&buf))
		err := svc.DeleteItem(context.Background(), "ISO 1:2002")

		require.EqualError(t, err, "disk full")
		assert.Contains(t, buf.String(), "err=\"disk full\"")
	})
}
