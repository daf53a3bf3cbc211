package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/raisilvacor/clinicadomobile/internal/domain/entities"
	"github.com/raisilvacor/clinicadomobile/internal/usecase/interfaces"
)

var (
	ErrRepairNotFound      = errors.New("repair not found")
	ErrInvalidRepairID     = errors.New("invalid repair id")
	ErrNoBudget            = errors.New("repair has no budget")
	ErrInvalidCPF          = errors.New("invalid cpf")
	ErrInvalidBudgetAmount = errors.New("invalid budget amount")
	ErrInvalidMessage      = errors.New("invalid message content")
)

// DeviceInfo is the device portion of an intake.
type DeviceInfo struct {
	Name               string
	Model              string
	IMEI               string
	ProblemDescription string
}

// CustomerInfo identifies the device owner. CPF, when present, must have 11
// digits (formatting punctuation is stripped before validation).
type CustomerInfo struct {
	Name    string
	Phone   string
	CPF     string
	Address string
	Email   string
}

// InitialBudget lets a repair be born already quoted: intake and quote happen
// in the same visit for most walk-in customers.
type InitialBudget struct {
	Amount      float64
	Description string
}

// CPFSearchResult is everything the admin search view shows for a customer
// CPF: their repairs with the related orders and checklists, plus the
// external anti-fraud score when the provider is configured.
type CPFSearchResult struct {
	Repairs    []entities.Repair
	Orders     []entities.Order
	Checklists []entities.Checklist
	Risk       *entities.RiskScore
}

// IRepairUseCase exposes the repair lifecycle operations.
//
// Every mutating operation appends exactly one history entry per state change
// and bumps UpdatedAt; history and messages are append-only.
type IRepairUseCase interface {
	CreateRepair(ctx context.Context, device DeviceInfo, customer CustomerInfo, initialBudget *InitialBudget) (entities.Repair, error)
	GetRepair(ctx context.Context, id string) (entities.Repair, error)
	ListRepairs(ctx context.Context) ([]entities.Repair, error)
	SetStatus(ctx context.Context, repairID string, newStatus entities.RepairStatus, actor string) (entities.Repair, error)
	ApproveBudget(ctx context.Context, repairID, actor string) (entities.Repair, error)
	RejectBudget(ctx context.Context, repairID, actor string) (entities.Repair, error)
	CompleteRepair(ctx context.Context, repairID string) (entities.Repair, error)
	RecordMessage(ctx context.Context, repairID string, msgType entities.MessageType, content string) (entities.Repair, error)
	UpdateDetails(ctx context.Context, repairID string, device DeviceInfo, customer CustomerInfo) (entities.Repair, error)
	DeleteRepair(ctx context.Context, repairID string) error
	SearchByCPF(ctx context.Context, cpf string) (CPFSearchResult, error)
}

type RepairUseCase struct {
	repo          interfaces.IRepairRepository
	checklistRepo interfaces.IChecklistRepository
	orderRepo     interfaces.IOrderRepository
	risk          interfaces.IRiskScoreProvider
	clock         interfaces.IClock
	ids           interfaces.IIDGenerator
	locks         *RepairLocker
}

var _ IRepairUseCase = (*RepairUseCase)(nil)

// NewRepairUseCase wires the lifecycle engine. risk may be nil; SearchByCPF
// then returns results without a score.
func NewRepairUseCase(
	repo interfaces.IRepairRepository,
	checklistRepo interfaces.IChecklistRepository,
	orderRepo interfaces.IOrderRepository,
	risk interfaces.IRiskScoreProvider,
	clock interfaces.IClock,
	ids interfaces.IIDGenerator,
	locks *RepairLocker,
) *RepairUseCase {
	return &RepairUseCase{
		repo:          repo,
		checklistRepo: checklistRepo,
		orderRepo:     orderRepo,
		risk:          risk,
		clock:         clock,
		ids:           ids,
		locks:         locks,
	}
}

func (u *RepairUseCase) CreateRepair(ctx context.Context, device DeviceInfo, customer CustomerInfo, initialBudget *InitialBudget) (entities.Repair, error) {
	cpf, err := normalizeCPF(customer.CPF)
	if err != nil {
		return entities.Repair{}, err
	}
	if initialBudget != nil && initialBudget.Amount < 0 {
		return entities.Repair{}, ErrInvalidBudgetAmount
	}

	now := u.clock.Now()
	r := entities.Repair{
		ID:                 u.ids.NewID(),
		DeviceName:         strings.TrimSpace(device.Name),
		DeviceModel:        strings.TrimSpace(device.Model),
		DeviceIMEI:         strings.TrimSpace(device.IMEI),
		ProblemDescription: device.ProblemDescription,
		CustomerName:       strings.TrimSpace(customer.Name),
		CustomerPhone:      strings.TrimSpace(customer.Phone),
		CustomerCPF:        cpf,
		CustomerAddress:    strings.TrimSpace(customer.Address),
		CustomerEmail:      strings.TrimSpace(customer.Email),
		Status:             entities.RepairStatusAguardando,
		Messages:           []entities.Message{},
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	r.AppendHistory(now, "Reparo criado")

	// A repair can be born already quoted: intake plus budget in one step.
	if initialBudget != nil {
		r.Budget = &entities.Budget{
			Amount:      initialBudget.Amount,
			Description: initialBudget.Description,
			Status:      entities.BudgetStatusPending,
		}
		r.Status = entities.RepairStatusOrcamento
		r.AppendHistory(now, fmt.Sprintf("Orçamento criado: R$ %.2f", initialBudget.Amount))
	}

	created, err := u.repo.Create(ctx, r)
	if err != nil {
		return entities.Repair{}, err
	}
	log.Printf("[repair][usecase] created repair_id=%s status=%s", created.ID, created.Status)
	return created, nil
}

func (u *RepairUseCase) GetRepair(ctx context.Context, id string) (entities.Repair, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Repair{}, ErrInvalidRepairID
	}
	return u.load(ctx, id)
}

func (u *RepairUseCase) ListRepairs(ctx context.Context) ([]entities.Repair, error) {
	repairs, err := u.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	sortRepairsNewestFirst(repairs)
	return repairs, nil
}

// SetStatus applies an unconditional status transition. There is no
// transition table: any status may move to any other, including straight to
// concluido via CompleteRepair. This permissiveness is deliberate.
func (u *RepairUseCase) SetStatus(ctx context.Context, repairID string, newStatus entities.RepairStatus, actor string) (entities.Repair, error) {
	return u.mutate(ctx, repairID, func(r *entities.Repair, now time.Time) error {
		old := r.Status
		r.Status = newStatus
		r.AppendHistory(now, fmt.Sprintf("Status alterado: %s → %s", old, newStatus))
		log.Printf("[repair][usecase] status change repair_id=%s actor=%s %s->%s", r.ID, actor, old, newStatus)
		return nil
	})
}

// ApproveBudget marks the budget approved and moves the repair to aprovado.
// The current budget status is NOT checked: re-approving an already decided
// budget is accepted, matching the behavior the shop relies on when a
// customer changes their mind at the counter.
func (u *RepairUseCase) ApproveBudget(ctx context.Context, repairID, actor string) (entities.Repair, error) {
	return u.mutate(ctx, repairID, func(r *entities.Repair, now time.Time) error {
		if r.Budget == nil {
			return ErrNoBudget
		}
		r.Budget.Status = entities.BudgetStatusApproved
		r.Status = entities.RepairStatusAprovado
		r.AppendHistory(now, "Orçamento aprovado pelo "+actorOrAdmin(actor))
		r.AppendMessage(now, entities.MessageTypeBudgetApproved,
			fmt.Sprintf("Orçamento de R$ %.2f foi aprovado. O reparo será iniciado em breve.", r.Budget.Amount))
		return nil
	})
}

// RejectBudget marks the budget rejected and reverts the repair to the intake
// state (aguardando, not orcamento): a rejected quote puts the device back in
// the "what do we do with this" queue.
func (u *RepairUseCase) RejectBudget(ctx context.Context, repairID, actor string) (entities.Repair, error) {
	return u.mutate(ctx, repairID, func(r *entities.Repair, now time.Time) error {
		if r.Budget == nil {
			return ErrNoBudget
		}
		r.Budget.Status = entities.BudgetStatusRejected
		r.Status = entities.RepairStatusAguardando
		r.AppendHistory(now, "Orçamento rejeitado pelo "+actorOrAdmin(actor))
		r.AppendMessage(now, entities.MessageTypeBudgetRejected,
			fmt.Sprintf("Orçamento de R$ %.2f foi rejeitado.", r.Budget.Amount))
		return nil
	})
}

// CompleteRepair moves the repair to concluido from any status (same-day
// completions skip the intermediate states entirely), stamps CompletedAt and
// activates the warranty exactly once.
func (u *RepairUseCase) CompleteRepair(ctx context.Context, repairID string) (entities.Repair, error) {
	return u.mutate(ctx, repairID, func(r *entities.Repair, now time.Time) error {
		r.Status = entities.RepairStatusConcluido
		completedAt := now
		r.CompletedAt = &completedAt

		validUntil := completedAt.AddDate(0, 0, entities.WarrantyPeriodDays)
		r.Warranty = &entities.Warranty{
			Period:     fmt.Sprintf("%d dias", entities.WarrantyPeriodDays),
			ValidUntil: validUntil,
			Coverage:   "Peças e mão de obra",
		}

		r.AppendHistory(now, fmt.Sprintf("Reparo concluído - Garantia de %d dias ativada", entities.WarrantyPeriodDays))
		r.AppendMessage(now, entities.MessageTypeCompleted,
			fmt.Sprintf("Seu reparo foi concluído com sucesso! Você possui %d dias de garantia. Obrigado pela confiança!", entities.WarrantyPeriodDays))
		return nil
	})
}

// RecordMessage appends a customer-facing notice without touching the
// lifecycle. History is untouched: messages are not audit entries.
func (u *RepairUseCase) RecordMessage(ctx context.Context, repairID string, msgType entities.MessageType, content string) (entities.Repair, error) {
	if strings.TrimSpace(content) == "" {
		return entities.Repair{}, ErrInvalidMessage
	}
	if msgType == "" {
		msgType = entities.MessageTypeAdmin
	}
	return u.mutate(ctx, repairID, func(r *entities.Repair, now time.Time) error {
		r.AppendMessage(now, msgType, content)
		return nil
	})
}

func (u *RepairUseCase) UpdateDetails(ctx context.Context, repairID string, device DeviceInfo, customer CustomerInfo) (entities.Repair, error) {
	cpf, err := normalizeCPF(customer.CPF)
	if err != nil {
		return entities.Repair{}, err
	}
	return u.mutate(ctx, repairID, func(r *entities.Repair, now time.Time) error {
		r.DeviceName = strings.TrimSpace(device.Name)
		r.DeviceModel = strings.TrimSpace(device.Model)
		r.DeviceIMEI = strings.TrimSpace(device.IMEI)
		r.ProblemDescription = device.ProblemDescription
		r.CustomerName = strings.TrimSpace(customer.Name)
		r.CustomerPhone = strings.TrimSpace(customer.Phone)
		r.CustomerCPF = cpf
		r.CustomerAddress = strings.TrimSpace(customer.Address)
		r.CustomerEmail = strings.TrimSpace(customer.Email)
		return nil
	})
}

func (u *RepairUseCase) DeleteRepair(ctx context.Context, repairID string) error {
	repairID = strings.TrimSpace(repairID)
	if repairID == "" {
		return ErrInvalidRepairID
	}
	unlock := u.locks.Lock(repairID)
	defer unlock()

	if _, err := u.load(ctx, repairID); err != nil {
		return err
	}
	return u.repo.Delete(ctx, repairID)
}

func (u *RepairUseCase) SearchByCPF(ctx context.Context, cpf string) (CPFSearchResult, error) {
	cpf, err := normalizeCPF(cpf)
	if err != nil {
		return CPFSearchResult{}, err
	}
	if cpf == "" {
		return CPFSearchResult{}, ErrInvalidCPF
	}

	repairs, err := u.repo.ListAll(ctx)
	if err != nil {
		return CPFSearchResult{}, err
	}

	result := CPFSearchResult{
		Repairs:    []entities.Repair{},
		Orders:     []entities.Order{},
		Checklists: []entities.Checklist{},
	}
	for _, r := range repairs {
		if r.CustomerCPF != cpf {
			continue
		}
		result.Repairs = append(result.Repairs, r)

		if r.OrderID != "" {
			if o, err := u.orderRepo.GetByID(ctx, r.OrderID); err == nil && o.ID != "" {
				result.Orders = append(result.Orders, o)
			}
		}
		cls, err := u.checklistRepo.ListByRepairID(ctx, r.ID)
		if err != nil {
			return CPFSearchResult{}, err
		}
		result.Checklists = append(result.Checklists, cls...)
	}
	sortRepairsNewestFirst(result.Repairs)

	if u.risk != nil {
		score, err := u.risk.ScoreFor(ctx, cpf)
		if err != nil {
			// The score is advisory; the search result is still useful without it.
			log.Printf("[repair][usecase] risk score unavailable cpf=%s err=%v", cpf, err)
		} else {
			result.Risk = &score
		}
	}
	return result, nil
}

// mutate runs load-mutate-save under the per-repair lock. The mutation sees a
// fully loaded aggregate and a single operation timestamp, so every append
// within one mutation carries the same instant; UpdatedAt is bumped after a
// successful mutation.
func (u *RepairUseCase) mutate(ctx context.Context, repairID string, fn func(r *entities.Repair, now time.Time) error) (entities.Repair, error) {
	repairID = strings.TrimSpace(repairID)
	if repairID == "" {
		return entities.Repair{}, ErrInvalidRepairID
	}

	unlock := u.locks.Lock(repairID)
	defer unlock()

	r, err := u.load(ctx, repairID)
	if err != nil {
		return entities.Repair{}, err
	}

	now := u.clock.Now()
	if err := fn(&r, now); err != nil {
		return entities.Repair{}, err
	}
	r.UpdatedAt = now

	return u.repo.Save(ctx, r)
}

func (u *RepairUseCase) load(ctx context.Context, id string) (entities.Repair, error) {
	r, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Repair{}, err
	}
	if r.ID == "" {
		return entities.Repair{}, ErrRepairNotFound
	}
	return r, nil
}

func actorOrAdmin(actor string) string {
	actor = strings.TrimSpace(actor)
	if actor == "" {
		return "administrador"
	}
	return actor
}

// normalizeCPF strips formatting punctuation and validates length. An empty
// CPF is allowed (walk-ins without documents); anything else must be exactly
// 11 digits.
func normalizeCPF(cpf string) (string, error) {
	cpf = strings.TrimSpace(cpf)
	if cpf == "" {
		return "", nil
	}
	var digits strings.Builder
	for _, c := range cpf {
		switch {
		case c >= '0' && c <= '9':
			digits.WriteRune(c)
		case c == '.' || c == '-' || c == ' ':
			// formatting, ignore
		default:
			return "", ErrInvalidCPF
		}
	}
	if digits.Len() != 11 {
		return "", ErrInvalidCPF
	}
	return digits.String(), nil
}

func sortRepairsNewestFirst(repairs []entities.Repair) {
	sort.Slice(repairs, func(i, j int) bool {
		return repairs[i].CreatedAt.After(repairs[j].CreatedAt)
	})
}
