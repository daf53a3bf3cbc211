package repository

import (
	"context"
	"errors"
	"log"

	"github.com/raisilvacor/clinicadomobile/internal/domain/entities"
	"github.com/raisilvacor/clinicadomobile/internal/usecase/interfaces"
)

// Fallback decorators keep the shop floor working through a DynamoDB outage.
//
// Semantics:
//   - reads hit the primary and fall back on error;
//   - writes hit the primary and, on success, are mirrored to the fallback
//     best-effort so the local file tracks the primary;
//   - writes that fail on the primary land on the fallback instead. The write
//     is not replayed to the primary later; recovery is an operator task and
//     the local file is the source for it.
//
// Mirror failures are logged and swallowed. The fallback is a resilience
// layer, not a second system of record, and must never fail a request that
// the primary already accepted.

type FallbackRepairRepository struct {
	primary  interfaces.IRepairRepository
	fallback interfaces.IRepairRepository
}

var _ interfaces.IRepairRepository = (*FallbackRepairRepository)(nil)

func NewFallbackRepairRepository(primary, fallback interfaces.IRepairRepository) *FallbackRepairRepository {
	return &FallbackRepairRepository{primary: primary, fallback: fallback}
}

func (r *FallbackRepairRepository) Create(ctx context.Context, rep entities.Repair) (entities.Repair, error) {
	created, err := r.primary.Create(ctx, rep)
	if err != nil {
		log.Printf("[repository][fallback] repair create on primary failed id=%s err=%v", rep.ID, err)
		return r.fallback.Create(ctx, rep)
	}
	if _, err := r.fallback.Create(ctx, created); err != nil {
		log.Printf("[repository][fallback] repair mirror failed id=%s err=%v", created.ID, err)
	}
	return created, nil
}

func (r *FallbackRepairRepository) GetByID(ctx context.Context, id string) (entities.Repair, error) {
	rep, err := r.primary.GetByID(ctx, id)
	if err != nil {
		log.Printf("[repository][fallback] repair read on primary failed id=%s err=%v", id, err)
		return r.fallback.GetByID(ctx, id)
	}
	return rep, nil
}

func (r *FallbackRepairRepository) ListAll(ctx context.Context) ([]entities.Repair, error) {
	repairs, err := r.primary.ListAll(ctx)
	if err != nil {
		log.Printf("[repository][fallback] repair list on primary failed err=%v", err)
		return r.fallback.ListAll(ctx)
	}
	return repairs, nil
}

func (r *FallbackRepairRepository) Save(ctx context.Context, rep entities.Repair) (entities.Repair, error) {
	saved, err := r.primary.Save(ctx, rep)
	if err != nil {
		log.Printf("[repository][fallback] repair save on primary failed id=%s err=%v", rep.ID, err)
		return r.fallback.Save(ctx, rep)
	}
	if _, err := r.fallback.Save(ctx, saved); err != nil {
		log.Printf("[repository][fallback] repair mirror failed id=%s err=%v", saved.ID, err)
	}
	return saved, nil
}

func (r *FallbackRepairRepository) Delete(ctx context.Context, id string) error {
	if err := r.primary.Delete(ctx, id); err != nil {
		log.Printf("[repository][fallback] repair delete on primary failed id=%s err=%v", id, err)
		return r.fallback.Delete(ctx, id)
	}
	if err := r.fallback.Delete(ctx, id); err != nil {
		log.Printf("[repository][fallback] repair mirror delete failed id=%s err=%v", id, err)
	}
	return nil
}

type FallbackChecklistRepository struct {
	primary  interfaces.IChecklistRepository
	fallback interfaces.IChecklistRepository
}

var _ interfaces.IChecklistRepository = (*FallbackChecklistRepository)(nil)

func NewFallbackChecklistRepository(primary, fallback interfaces.IChecklistRepository) *FallbackChecklistRepository {
	return &FallbackChecklistRepository{primary: primary, fallback: fallback}
}

func (r *FallbackChecklistRepository) Create(ctx context.Context, c entities.Checklist) (entities.Checklist, error) {
	created, err := r.primary.Create(ctx, c)
	if err != nil {
		log.Printf("[repository][fallback] checklist create on primary failed id=%s err=%v", c.ID, err)
		return r.fallback.Create(ctx, c)
	}
	if _, err := r.fallback.Create(ctx, created); err != nil {
		log.Printf("[repository][fallback] checklist mirror failed id=%s err=%v", created.ID, err)
	}
	return created, nil
}

func (r *FallbackChecklistRepository) GetByID(ctx context.Context, id string) (entities.Checklist, error) {
	c, err := r.primary.GetByID(ctx, id)
	if err != nil {
		log.Printf("[repository][fallback] checklist read on primary failed id=%s err=%v", id, err)
		return r.fallback.GetByID(ctx, id)
	}
	return c, nil
}

func (r *FallbackChecklistRepository) ListAll(ctx context.Context) ([]entities.Checklist, error) {
	checklists, err := r.primary.ListAll(ctx)
	if err != nil {
		log.Printf("[repository][fallback] checklist list on primary failed err=%v", err)
		return r.fallback.ListAll(ctx)
	}
	return checklists, nil
}

func (r *FallbackChecklistRepository) ListByRepairID(ctx context.Context, repairID string) ([]entities.Checklist, error) {
	checklists, err := r.primary.ListByRepairID(ctx, repairID)
	if err != nil {
		log.Printf("[repository][fallback] checklist query on primary failed repair_id=%s err=%v", repairID, err)
		return r.fallback.ListByRepairID(ctx, repairID)
	}
	return checklists, nil
}

func (r *FallbackChecklistRepository) Save(ctx context.Context, c entities.Checklist) (entities.Checklist, error) {
	saved, err := r.primary.Save(ctx, c)
	if err != nil {
		log.Printf("[repository][fallback] checklist save on primary failed id=%s err=%v", c.ID, err)
		return r.fallback.Save(ctx, c)
	}
	if _, err := r.fallback.Save(ctx, saved); err != nil {
		log.Printf("[repository][fallback] checklist mirror failed id=%s err=%v", saved.ID, err)
	}
	return saved, nil
}

func (r *FallbackChecklistRepository) Delete(ctx context.Context, id string) error {
	if err := r.primary.Delete(ctx, id); err != nil {
		log.Printf("[repository][fallback] checklist delete on primary failed id=%s err=%v", id, err)
		return r.fallback.Delete(ctx, id)
	}
	if err := r.fallback.Delete(ctx, id); err != nil {
		log.Printf("[repository][fallback] checklist mirror delete failed id=%s err=%v", id, err)
	}
	return nil
}

type FallbackOrderRepository struct {
	primary  interfaces.IOrderRepository
	fallback interfaces.IOrderRepository
}

var _ interfaces.IOrderRepository = (*FallbackOrderRepository)(nil)

func NewFallbackOrderRepository(primary, fallback interfaces.IOrderRepository) *FallbackOrderRepository {
	return &FallbackOrderRepository{primary: primary, fallback: fallback}
}

func (r *FallbackOrderRepository) CreateWithRepair(ctx context.Context, o entities.Order, rep entities.Repair) (entities.Order, error) {
	created, err := r.primary.CreateWithRepair(ctx, o, rep)
	if errors.Is(err, ErrOrderExists) {
		// Domain refusal, not an outage. Emitting on the fallback here would
		// produce a second OR for the same repair.
		return entities.Order{}, err
	}
	if err != nil {
		log.Printf("[repository][fallback] order emit on primary failed id=%s repair_id=%s err=%v", o.ID, rep.ID, err)
		return r.fallback.CreateWithRepair(ctx, o, rep)
	}
	if _, err := r.fallback.CreateWithRepair(ctx, created, rep); err != nil {
		log.Printf("[repository][fallback] order mirror failed id=%s err=%v", created.ID, err)
	}
	return created, nil
}

func (r *FallbackOrderRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	o, err := r.primary.GetByID(ctx, id)
	if err != nil {
		log.Printf("[repository][fallback] order read on primary failed id=%s err=%v", id, err)
		return r.fallback.GetByID(ctx, id)
	}
	return o, nil
}

func (r *FallbackOrderRepository) GetByRepairID(ctx context.Context, repairID string) (entities.Order, error) {
	o, err := r.primary.GetByRepairID(ctx, repairID)
	if err != nil {
		log.Printf("[repository][fallback] order query on primary failed repair_id=%s err=%v", repairID, err)
		return r.fallback.GetByRepairID(ctx, repairID)
	}
	return o, nil
}

func (r *FallbackOrderRepository) ListAll(ctx context.Context) ([]entities.Order, error) {
	orders, err := r.primary.ListAll(ctx)
	if err != nil {
		log.Printf("[repository][fallback] order list on primary failed err=%v", err)
		return r.fallback.ListAll(ctx)
	}
	return orders, nil
}
