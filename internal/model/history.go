package model

import "time"

// ItemHistory is an append-only audit record of one status transition.
type ItemHistory struct {
	ID         int64     `json:"id"`
	ItemID     int64     `json:"item_id"`
	OldStatus  string    `json:"old_status"`
	NewStatus  string    `json:"new_status"`
	ChangeDate time.Time `json:"change_date"`
}
