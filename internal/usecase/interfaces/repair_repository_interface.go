package interfaces

import (
	"context"

	"github.com/raisilvacor/clinicadomobile/internal/domain/entities"
)

// IRepairRepository abstracts persistence for the Repair aggregate.
//
// Repairs are stored as whole documents: Save replaces the full aggregate
// (history and messages included), matching how the use cases mutate a fully
// loaded Repair and hand it back. GetByID returns a zero-value Repair (empty
// ID) when nothing matches; "not found" is a domain decision taken upstream.

type IRepairRepository interface {
	Create(ctx context.Context, r entities.Repair) (entities.Repair, error)
	GetByID(ctx context.Context, id string) (entities.Repair, error)
	ListAll(ctx context.Context) ([]entities.Repair, error)
	Save(ctx context.Context, r entities.Repair) (entities.Repair, error)
	Delete(ctx context.Context, id string) error
}
