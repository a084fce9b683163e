// Package deletionlog holds the append-only audit trail for deletions.
// The log is never consulted to determine entity state — only an audit
// record of what happened.
package deletionlog

import (
	"context"
	"time"
)

// Kind is the category of deletion an Entry records.
type Kind string

const (
	KindLogical  Kind = "Logical"
	KindPhysical Kind = "Physical"
	KindBatch    Kind = "Batch"
)

// Entry is one append-only deletion-log record.
type Entry struct {
	ID        string
	ProductID string
	Kind      Kind
	Actor     string
	Reason    string
	Snapshot  string
	CreatedAt time.Time
}

// Filter narrows a listing of deletion-log entries.
type Filter struct {
	ProductID *string
	Limit     int
	Offset    int
}

// Repository is the storage contract for the deletion log. Append is the
// only mutation: entries are never updated or removed.
type Repository interface {
	Append(ctx context.Context, entry Entry) (Entry, error)
	FindAll(ctx context.Context, filter Filter) ([]Entry, error)
}
