// Package deletion is the unified deletion subsystem: one strategy per
// deletable entity (Item, Category, Product), aggregated behind a single
// facade that is the sole public entry point for deleting those
// entities. The item, category and product services expose no delete
// methods — every deletion request for them routes through this package.
package deletion

// Kind selects which transition a deletion request performs. The caller
// decides the kind per request; there is no separate endpoint per kind.
type Kind string

const (
	KindLogical  Kind = "logical"
	KindPhysical Kind = "physical"
	KindRestore  Kind = "restore"
)
