package product

import "time"

// HistoryEvent is one append-only change-log entry for a product. The
// history table supports no update or delete operation.
type HistoryEvent struct {
	ID        string
	ProductID string
	Field     string
	OldValue  string
	NewValue  string
	Actor     string
	CreatedAt time.Time
}
