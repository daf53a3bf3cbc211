package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sort"
	"strings"

	"github.com/raisilvacor/clinicadomobile/internal/domain/entities"
	"github.com/raisilvacor/clinicadomobile/internal/usecase/interfaces"
)

var (
	ErrOrderNotFound              = errors.New("order not found")
	ErrInvalidOrderID             = errors.New("invalid order id")
	ErrOrderAlreadyEmitted        = errors.New("order already emitted for this repair")
	ErrRepairNotCompleted         = errors.New("repair is not completed")
	ErrMissingConclusionChecklist = errors.New("conclusion checklist missing")
	ErrPickupPaymentFailed        = errors.New("pickup payment failed")
)

// UnsignedChecklistsError reports which checklist types still lack the
// customer signature. The types are carried so the caller can tell the
// customer exactly what to sign before pickup is authorized.
type UnsignedChecklistsError struct {
	Types []entities.ChecklistType
}

func (e *UnsignedChecklistsError) Error() string {
	names := make([]string, 0, len(e.Types))
	for _, t := range e.Types {
		names = append(names, t.DisplayName())
	}
	return "Não é possível emitir a OR. Faltam assinaturas do cliente nos seguintes checklists: " + strings.Join(names, ", ")
}

// EmitOrderInput is the operator's input for OR emission. Payment is
// optional: when present and a gateway is configured, the approved budget is
// charged on release and the provider reference lands on the Order.
type EmitOrderInput struct {
	RepairID          string
	Observations      string
	EmittedBy         string
	CustomerReceived  bool
	CustomerSignature string
	Payment           json.RawMessage
}

// IOrderUseCase exposes pickup order (OR) operations. Emission is the hard
// gate of the system: it must refuse to release a device until every
// anti-fraud prerequisite is satisfied.
type IOrderUseCase interface {
	EmitOrder(ctx context.Context, in EmitOrderInput) (entities.Order, error)
	GetOrder(ctx context.Context, id string) (entities.Order, error)
	GetOrderByRepair(ctx context.Context, repairID string) (entities.Order, error)
	ListOrders(ctx context.Context) ([]entities.Order, error)
}

type OrderUseCase struct {
	repo          interfaces.IOrderRepository
	repairRepo    interfaces.IRepairRepository
	checklistRepo interfaces.IChecklistRepository
	gateway       interfaces.IPaymentGateway
	clock         interfaces.IClock
	ids           interfaces.IIDGenerator
	locks         *RepairLocker
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

// NewOrderUseCase wires the emission gate. gateway may be nil; pickup
// charges are then skipped even when the caller supplies a payment payload.
func NewOrderUseCase(
	repo interfaces.IOrderRepository,
	repairRepo interfaces.IRepairRepository,
	checklistRepo interfaces.IChecklistRepository,
	gateway interfaces.IPaymentGateway,
	clock interfaces.IClock,
	ids interfaces.IIDGenerator,
	locks *RepairLocker,
) *OrderUseCase {
	return &OrderUseCase{
		repo:          repo,
		repairRepo:    repairRepo,
		checklistRepo: checklistRepo,
		gateway:       gateway,
		clock:         clock,
		ids:           ids,
		locks:         locks,
	}
}

// EmitOrder creates the pickup authorization for a repair.
//
// The gate checks run in a fixed order and short-circuit, because the first
// failure determines the message the operator sees:
//  1. the repair must be completed;
//  2. a conclusion checklist must exist among ALL checklists of the repair
//     (the accumulated list, not just the convenience pointer);
//  3. every checklist of the repair must be signed, intake evidence
//     included. The customer has to acknowledge the device's condition both
//     at intake and at pickup; a signed conclusion alone proves nothing
//     about what came in.
//
// Emission is at-most-once: the Order put and the Repair link are committed
// in one transaction and there is no re-emit or retry path.
func (u *OrderUseCase) EmitOrder(ctx context.Context, in EmitOrderInput) (entities.Order, error) {
	repairID := strings.TrimSpace(in.RepairID)
	if repairID == "" {
		return entities.Order{}, ErrInvalidRepairID
	}

	unlock := u.locks.Lock(repairID)
	defer unlock()

	repair, err := u.repairRepo.GetByID(ctx, repairID)
	if err != nil {
		return entities.Order{}, err
	}
	if repair.ID == "" {
		return entities.Order{}, ErrRepairNotFound
	}
	if repair.OrderID != "" {
		return entities.Order{}, ErrOrderAlreadyEmitted
	}

	if !repair.Completed() {
		return entities.Order{}, ErrRepairNotCompleted
	}

	checklists, err := u.checklistsForRepair(ctx, repair)
	if err != nil {
		return entities.Order{}, err
	}

	hasConclusion := false
	for _, c := range checklists {
		if c.Type == entities.ChecklistTypeConclusao {
			hasConclusion = true
			break
		}
	}
	if !hasConclusion {
		return entities.Order{}, ErrMissingConclusionChecklist
	}

	var unsigned []entities.ChecklistType
	for _, c := range checklists {
		if !c.Signed() {
			unsigned = append(unsigned, c.Type)
		}
	}
	if len(unsigned) > 0 {
		return entities.Order{}, &UnsignedChecklistsError{Types: unsigned}
	}

	now := u.clock.Now()
	order := entities.Order{
		ID:                u.ids.NewID(),
		RepairID:          repairID,
		EmittedAt:         now,
		EmittedBy:         strings.TrimSpace(in.EmittedBy),
		Observations:      in.Observations,
		CustomerReceived:  in.CustomerReceived,
		CustomerSignature: strings.TrimSpace(in.CustomerSignature),
	}

	// Pickup charge happens after the gate passes but before the writes: a
	// declined card must not leave an emitted OR behind.
	if u.gateway != nil && len(in.Payment) > 0 {
		paymentID, paymentStatus, _, err := u.gateway.CreatePayment(ctx, in.Payment)
		if err != nil {
			log.Printf("[order][usecase] pickup payment failed repair_id=%s err=%v", repairID, err)
			return entities.Order{}, errors.Join(ErrPickupPaymentFailed, err)
		}
		order.PaymentID = paymentID
		order.PaymentStatus = paymentStatus
	}

	repair.OrderID = order.ID
	emittedAt := now
	repair.OrderEmittedAt = &emittedAt
	repair.UpdatedAt = now

	created, err := u.repo.CreateWithRepair(ctx, order, repair)
	if err != nil {
		return entities.Order{}, err
	}
	log.Printf("[order][usecase] emitted order_id=%s repair_id=%s by=%q", created.ID, repairID, created.EmittedBy)
	return created, nil
}

func (u *OrderUseCase) GetOrder(ctx context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *OrderUseCase) GetOrderByRepair(ctx context.Context, repairID string) (entities.Order, error) {
	repairID = strings.TrimSpace(repairID)
	if repairID == "" {
		return entities.Order{}, ErrInvalidRepairID
	}
	o, err := u.repo.GetByRepairID(ctx, repairID)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *OrderUseCase) ListOrders(ctx context.Context) ([]entities.Order, error) {
	orders, err := u.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].EmittedAt.After(orders[j].EmittedAt)
	})
	return orders, nil
}

// checklistsForRepair unions the ids the repair lists with the checklists
// whose repair_id points back. The two views drift in legacy data (the list
// accumulates replaced checklists, back-references survive list edits), and
// the gate must see everything.
func (u *OrderUseCase) checklistsForRepair(ctx context.Context, repair entities.Repair) ([]entities.Checklist, error) {
	byID := make(map[string]entities.Checklist)
	var ordered []string

	for _, id := range repair.ChecklistIDs {
		if _, ok := byID[id]; ok {
			continue
		}
		c, err := u.checklistRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if c.ID != "" {
			byID[c.ID] = c
			ordered = append(ordered, c.ID)
		}
	}

	linked, err := u.checklistRepo.ListByRepairID(ctx, repair.ID)
	if err != nil {
		return nil, err
	}
	for _, c := range linked {
		if _, ok := byID[c.ID]; ok {
			continue
		}
		byID[c.ID] = c
		ordered = append(ordered, c.ID)
	}

	out := make([]entities.Checklist, 0, len(ordered))
	for _, id := range ordered {
		out = append(out, byID[id])
	}
	return out, nil
}
