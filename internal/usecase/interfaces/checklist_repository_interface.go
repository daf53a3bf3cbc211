package interfaces

import (
	"context"

	"github.com/raisilvacor/clinicadomobile/internal/domain/entities"
)

// IChecklistRepository abstracts persistence for Checklist records.
//
// ListByRepairID must return every checklist whose repair_id matches,
// regardless of whether the owning repair still lists its id: the aggregate's
// checklist list accumulates and the two views can drift, so gating unions
// them.

type IChecklistRepository interface {
	Create(ctx context.Context, c entities.Checklist) (entities.Checklist, error)
	GetByID(ctx context.Context, id string) (entities.Checklist, error)
	ListAll(ctx context.Context) ([]entities.Checklist, error)
	ListByRepairID(ctx context.Context, repairID string) ([]entities.Checklist, error)
	Save(ctx context.Context, c entities.Checklist) (entities.Checklist, error)
	Delete(ctx context.Context, id string) error
}
