package deletion

import "context"

// Strategy is the polymorphic per-entity deletion operation: a single
// Delete(id, kind) call that the facade dispatches to. Every concrete
// strategy (item, category, product) satisfies this with a string id —
// Facade.DeleteItem formats the uint64 item id as a string and
// ItemStrategy parses it back.
type Strategy interface {
	Delete(ctx context.Context, id string, kind Kind) error
}
