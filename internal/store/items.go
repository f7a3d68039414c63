package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/erazemk/evidenca/internal/model"
)

// CreateItem creates a new item attributed to ownerID. The owner is not
// checked against the users table; an orphaned reference is accepted.
func CreateItem(ctx context.Context, db *sql.DB, title, description, status string, ownerID int64) (*model.Item, error) {
	result, err := db.ExecContext(ctx,
		`INSERT INTO items (title, description, status, owner_id) VALUES (?, ?, ?, ?)`,
		title, description, status, ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("creating item: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting item id: %w", err)
	}

	return GetItem(ctx, db, id)
}

// GetItem returns an item by ID.
func GetItem(ctx context.Context, db *sql.DB, id int64) (*model.Item, error) {
	item := &model.Item{}
	var description, imageMime sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT id, title, description, status, owner_id, image_mime, created_at, updated_at
		 FROM items WHERE id = ?`, id,
	).Scan(&item.ID, &item.Title, &description, &item.Status, &item.OwnerID, &imageMime, &item.CreatedAt, &item.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting item: %w", err)
	}
	item.Description = description.String
	item.ImageMime = imageMime.String
	return item, nil
}

// ListItemsByStatus returns all items whose status equals status, in
// storage order.
func ListItemsByStatus(ctx context.Context, db *sql.DB, status string) ([]model.Item, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, title, description, status, owner_id, image_mime, created_at, updated_at
		 FROM items WHERE status = ?`, status,
	)
	if err != nil {
		return nil, fmt.Errorf("listing items by status: %w", err)
	}
	defer rows.Close()

	return scanItems(rows)
}

// ListItemsByOwner returns all items owned by ownerID.
func ListItemsByOwner(ctx context.Context, db *sql.DB, ownerID int64) ([]model.Item, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, title, description, status, owner_id, image_mime, created_at, updated_at
		 FROM items WHERE owner_id = ?`, ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing items by owner: %w", err)
	}
	defer rows.Close()

	return scanItems(rows)
}

// UpdateItemStatus sets an item's status and appends an audit record with
// the previous and requested status. Returns nil when the item does not
// exist, in which case no history row is written.
//
// The status write and the history append are two separate commits. A
// failure between them leaves the item updated with no matching audit
// entry; callers get the error but the status change stands.
func UpdateItemStatus(ctx context.Context, db *sql.DB, id int64, newStatus string) (*model.Item, error) {
	item, err := GetItem(ctx, db, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}

	_, err = db.ExecContext(ctx,
		`UPDATE items SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		newStatus, id,
	)
	if err != nil {
		return nil, fmt.Errorf("updating item status: %w", err)
	}

	if err := AddItemHistory(ctx, db, id, item.Status, newStatus); err != nil {
		return nil, err
	}

	return GetItem(ctx, db, id)
}

// SetItemImage sets an item's image data.
func SetItemImage(ctx context.Context, db *sql.DB, id int64, image []byte, mime string) error {
	_, err := db.ExecContext(ctx,
		`UPDATE items SET image = ?, image_mime = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		image, mime, id,
	)
	if err != nil {
		return fmt.Errorf("setting item image: %w", err)
	}
	return nil
}

// GetItemImage returns an item's image data and MIME type.
func GetItemImage(ctx context.Context, db *sql.DB, id int64) ([]byte, string, error) {
	var image []byte
	var mime sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT image, image_mime FROM items WHERE id = ?`, id,
	).Scan(&image, &mime)
	if err == sql.ErrNoRows {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("getting item image: %w", err)
	}
	return image, mime.String, nil
}

func scanItems(rows *sql.Rows) ([]model.Item, error) {
	var items []model.Item
	for rows.Next() {
		var item model.Item
		var description, imageMime sql.NullString
		if err := rows.Scan(&item.ID, &item.Title, &description, &item.Status, &item.OwnerID, &imageMime, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		item.Description = description.String
		item.ImageMime = imageMime.String
		items = append(items, item)
	}
	return items, rows.Err()
}
