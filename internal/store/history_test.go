package store

import (
	"context"
	"testing"

	"github.com/erazemk/evidenca/internal/db"
	"github.com/erazemk/evidenca/internal/model"
)

func TestItemHistoryAppendAndRead(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	item, _ := CreateItem(ctx, database, "Tracked", "", model.StatusNew, 1)

	if err := AddItemHistory(ctx, database, item.ID, model.StatusNew, model.StatusApproved); err != nil {
		t.Fatalf("AddItemHistory: %v", err)
	}
	if err := AddItemHistory(ctx, database, item.ID, model.StatusApproved, model.StatusEOL); err != nil {
		t.Fatalf("AddItemHistory: %v", err)
	}

	history, err := GetItemHistory(ctx, database, item.ID)
	if err != nil {
		t.Fatalf("GetItemHistory: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("expected 2 history rows, got %d", len(history))
	}

	// Newest first.
	if history[0].NewStatus != model.StatusEOL {
		t.Errorf("expected newest entry EOL, got %q", history[0].NewStatus)
	}
	if history[1].OldStatus != model.StatusNew {
		t.Errorf("expected oldest entry from NEW, got %q", history[1].OldStatus)
	}
}

func TestItemHistoryScopedToItem(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	first, _ := CreateItem(ctx, database, "First", "", model.StatusNew, 1)
	second, _ := CreateItem(ctx, database, "Second", "", model.StatusNew, 1)

	AddItemHistory(ctx, database, first.ID, model.StatusNew, model.StatusApproved)

	history, _ := GetItemHistory(ctx, database, second.ID)
	if len(history) != 0 {
		t.Errorf("expected no history for untouched item, got %d", len(history))
	}
}
