package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/erazemk/evidenca/internal/model"
)

// AddItemHistory appends one audit record for a status transition. There
// is no guard against oldStatus == newStatus; no-op transitions are
// recorded like any other.
func AddItemHistory(ctx context.Context, db *sql.DB, itemID int64, oldStatus, newStatus string) error {
	_, err := db.ExecContext(ctx,
		`INSERT INTO item_history (item_id, old_status, new_status) VALUES (?, ?, ?)`,
		itemID, oldStatus, newStatus,
	)
	if err != nil {
		return fmt.Errorf("recording item history: %w", err)
	}
	return nil
}

// GetItemHistory returns the audit trail for an item, newest first.
func GetItemHistory(ctx context.Context, db *sql.DB, itemID int64) ([]model.ItemHistory, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, item_id, old_status, new_status, change_date
		 FROM item_history WHERE item_id = ?
		 ORDER BY change_date DESC, id DESC`, itemID,
	)
	if err != nil {
		return nil, fmt.Errorf("getting item history: %w", err)
	}
	defer rows.Close()

	var history []model.ItemHistory
	for rows.Next() {
		var h model.ItemHistory
		if err := rows.Scan(&h.ID, &h.ItemID, &h.OldStatus, &h.NewStatus, &h.ChangeDate); err != nil {
			return nil, fmt.Errorf("scanning history entry: %w", err)
		}
		history = append(history, h)
	}
	return history, rows.Err()
}
