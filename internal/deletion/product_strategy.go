package deletion

import (
	"context"
	"encoding/json"
	"time"

	"github.com/catalogsvc/catalog/internal/domain/deletionlog"
	"github.com/catalogsvc/catalog/internal/domain/product"
)

// ProductStrategy maps each Kind to the corresponding Product repository
// call. Physical delete additionally pre-checks ValidateDeletion and, on
// success, appends a deletion-log snapshot before removing the rows —
// the one entity-specific behavior products require beyond the other
// strategies.
type ProductStrategy struct {
	repo   product.Repository
	logRepo deletionlog.Repository
}

// NewProductStrategy builds a ProductStrategy bound to repo and logRepo.
func NewProductStrategy(repo product.Repository, logRepo deletionlog.Repository) *ProductStrategy {
	return &ProductStrategy{repo: repo, logRepo: logRepo}
}

// Delete implements Strategy, with force defaulting to false. Callers
// that need to override a validate_deletion blocker use DeleteWithForce
// directly (only the product handler does; no other entity exposes a
// force override).
func (s *ProductStrategy) Delete(ctx context.Context, id string, kind Kind) error {
	return s.DeleteWithForce(ctx, id, kind, "", "", false)
}

// DeleteWithForce is the full product deletion operation: actor and
// reason populate the deletion-log entry; force bypasses a
// validate_deletion blocker on physical delete.
func (s *ProductStrategy) DeleteWithForce(ctx context.Context, id string, kind Kind, actor, reason string, force bool) error {
	switch kind {
	case KindLogical:
		return translate(s.repo.LogicalDelete(ctx, id))
	case KindRestore:
		return translate(s.repo.Restore(ctx, id))
	case KindPhysical:
		return s.physicalDelete(ctx, id, actor, reason, force)
	default:
		return ValidationFailed("unknown deletion kind: " + string(kind))
	}
}

func (s *ProductStrategy) physicalDelete(ctx context.Context, id, actor, reason string, force bool) error {
	check, err := s.repo.ValidateDeletion(ctx, id)
	if err != nil {
		return translate(err)
	}

	if len(check.Blockers) > 0 && !force {
		return ValidationFailed("product has blocking dependencies: " + check.Blockers[0])
	}

	agg, err := s.repo.FindByID(ctx, id, true)
	if err != nil {
		return translate(err)
	}

	snapshot, err := json.Marshal(agg)
	if err != nil {
		return Other("failed to snapshot product before deletion: " + err.Error())
	}

	if _, err := s.logRepo.Append(ctx, deletionlog.Entry{
		ProductID: id,
		Kind:      deletionlog.KindPhysical,
		Actor:     actor,
		Reason:    reason,
		Snapshot:  string(snapshot),
		CreatedAt: time.Now().UTC(),
	}); err != nil {
		return Other("failed to append deletion log entry: " + err.Error())
	}

	return translate(s.repo.PhysicalDelete(ctx, id))
}
