package database

import (
	"context"
	"time"

	"questa/internal/models"
)

// Inventory returns all purchased rewards, oldest first.
func (d *Database) Inventory(ctx context.Context) ([]models.InventoryItem, error) {
	rows, err := d.DB.QueryContext(ctx,
		"SELECT id, item_id, acquired_at FROM inventory ORDER BY id ASC")
	if err != nil {
		return nil, &OpError{Op: "list", Resource: "inventory", Err: err}
	}
	defer rows.Close()

	var items []models.InventoryItem
	for rows.Next() {
		var it models.InventoryItem
		if err := rows.Scan(&it.ID, &it.ItemID, &it.AcquiredAt); err != nil {
			return nil, &OpError{Op: "scan", Resource: "inventory", Err: err}
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, &OpError{Op: "list", Resource: "inventory", Err: err}
	}
	return items, nil
}

// AddInventoryItem records a purchase.
func (d *Database) AddInventoryItem(ctx context.Context, itemID string, at time.Time) error {
	_, err := d.DB.ExecContext(ctx,
		"INSERT INTO inventory (item_id, acquired_at) VALUES (?, ?)", itemID, at)
	if err != nil {
		return &OpError{Op: "add", Resource: "inventory", ID: itemID, Err: err}
	}
	return nil
}
