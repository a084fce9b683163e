package deletion

import (
	"context"
	"strconv"

	"github.com/catalogsvc/catalog/internal/apperr"
)

// Event is the fact published after a deletion strategy completes
// successfully. Publication is best-effort: a publish failure is logged
// by the Publisher and never fails the request that triggered it.
type Event struct {
	EntityType string
	EntityID   string
	Kind       Kind
}

// Publisher fans out Events to an external broker. Facade treats a nil
// Publisher as a no-op, so the deletion subsystem works unmodified
// without a broker configured.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// Facade is the sole public entry point for deletion: it holds exactly
// one strategy per deletable entity and exposes one operation per
// entity. The item, category and product services expose no delete
// methods; handlers and the deletion-batch endpoint call only through
// here. Users are outside this subsystem and are hard-deleted through
// UserService.Delete.
type Facade struct {
	item      *ItemStrategy
	category  *CategoryStrategy
	product   *ProductStrategy
	publisher Publisher
}

// NewFacade builds a Facade holding the three per-entity strategies.
func NewFacade(item *ItemStrategy, category *CategoryStrategy, product *ProductStrategy) *Facade {
	return &Facade{item: item, category: category, product: product}
}

// WithPublisher attaches a best-effort event publisher, returning f for
// chaining at construction time.
func (f *Facade) WithPublisher(publisher Publisher) *Facade {
	f.publisher = publisher
	return f
}

func (f *Facade) publish(ctx context.Context, entityType, id string, kind Kind) {
	if f.publisher == nil {
		return
	}

	_ = f.publisher.Publish(ctx, Event{EntityType: entityType, EntityID: id, Kind: kind})
}

// DeleteItem runs Kind against the Item identified by id.
func (f *Facade) DeleteItem(ctx context.Context, id uint64, kind Kind) error {
	stringID := strconv.FormatUint(id, 10)

	if err := toAppError("item", stringID, f.item.Delete(ctx, stringID, kind)); err != nil {
		return err
	}

	f.publish(ctx, "item", stringID, kind)

	return nil
}

// DeleteCategory runs Kind against the Category identified by id.
func (f *Facade) DeleteCategory(ctx context.Context, id string, kind Kind) error {
	if err := toAppError("category", id, f.category.Delete(ctx, id, kind)); err != nil {
		return err
	}

	f.publish(ctx, "category", id, kind)

	return nil
}

// DeleteProduct runs Kind against the Product identified by id. actor
// and reason populate the deletion-log entry on physical delete; force
// bypasses a validate_deletion blocker.
func (f *Facade) DeleteProduct(ctx context.Context, id string, kind Kind, actor, reason string, force bool) error {
	if err := toAppError("product", id, f.product.DeleteWithForce(ctx, id, kind, actor, reason, force)); err != nil {
		return err
	}

	f.publish(ctx, "product", id, kind)

	return nil
}

// BatchResult is one item's outcome from a batch delete.
type BatchResult struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// BatchReport aggregates a batch delete's per-item results. Batch
// delete is per-item atomic — there is no cross-item transaction — so a
// failure on one id never rolls back or blocks the others.
type BatchReport struct {
	Results      []BatchResult `json:"results"`
	SuccessCount int           `json:"successCount"`
	FailureCount int           `json:"failureCount"`
}

// DeleteProductsBatch runs DeleteProduct independently against each id
// in ids and reports each item's own outcome.
func (f *Facade) DeleteProductsBatch(ctx context.Context, ids []string, kind Kind, actor, reason string, force bool) BatchReport {
	report := BatchReport{Results: make([]BatchResult, 0, len(ids))}

	for _, id := range ids {
		if err := f.DeleteProduct(ctx, id, kind, actor, reason, force); err != nil {
			report.Results = append(report.Results, BatchResult{ID: id, Status: "failed", Error: string(apperr.As(err).Kind)})
			report.FailureCount++
			continue
		}

		report.Results = append(report.Results, BatchResult{ID: id, Status: "success"})
		report.SuccessCount++
	}

	return report
}

// toAppError rewraps a DeletionError back into an AppError at the
// facade boundary: each strategy wraps repository errors into a
// DeletionError internally, and the facade converts it back here so
// callers outside this package only ever see AppError.
func toAppError(entityType, id string, err error) error {
	if err == nil {
		return nil
	}

	de, ok := err.(Error)
	if !ok {
		return apperr.Internal(entityType, err)
	}

	switch de.Kind {
	case ErrorKindNotFound:
		return apperr.NotFound(entityType, id)
	case ErrorKindValidationFailed:
		return apperr.Validation(entityType, de.Reason)
	default:
		return apperr.Internal(entityType, de)
	}
}
