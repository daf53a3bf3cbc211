package interfaces

import (
	"context"

	"github.com/raisilvacor/clinicadomobile/internal/domain/entities"
)

// IOrderRepository abstracts persistence for pickup orders (ORs).
//
// CreateWithRepair persists the new Order AND the updated owning Repair in a
// single transaction. The legacy system wrote the two documents separately
// and a crash between the writes could leave an OR unlinked; the gate is
// at-most-once with no retry, so the pair must commit atomically.

type IOrderRepository interface {
	CreateWithRepair(ctx context.Context, o entities.Order, r entities.Repair) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	GetByRepairID(ctx context.Context, repairID string) (entities.Order, error)
	ListAll(ctx context.Context) ([]entities.Order, error)
}
