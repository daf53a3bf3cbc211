package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/raisilvacor/clinicadomobile/internal/domain/entities"
	"github.com/raisilvacor/clinicadomobile/internal/usecase/interfaces"
)

var (
	ErrChecklistNotFound       = errors.New("checklist not found")
	ErrInvalidChecklistID      = errors.New("invalid checklist id")
	ErrInvalidChecklistType    = errors.New("invalid checklist type")
	ErrMissingRepairReference  = errors.New("checklist must reference a repair")
	ErrMissingSignatureContent = errors.New("signature not provided")
)

// IChecklistUseCase exposes anti-fraud checklist operations.
//
// A checklist without an owning repair is rejected at creation: the pickup
// order (OR) can only be emitted over a checklist graph rooted at a real
// repair, so an orphan record would be meaningless evidence.
type IChecklistUseCase interface {
	CreateChecklist(ctx context.Context, repairID string, checklistType entities.ChecklistType, photos map[string]string, tests map[string]bool) (entities.Checklist, error)
	GetChecklist(ctx context.Context, id string) (entities.Checklist, error)
	ListChecklists(ctx context.Context) ([]entities.Checklist, error)
	ListByRepair(ctx context.Context, repairID string) ([]entities.Checklist, error)
	AttachSignature(ctx context.Context, checklistID, signatureRef string) (entities.Checklist, error)
	DeleteChecklist(ctx context.Context, checklistID string) error
}

type ChecklistUseCase struct {
	repo       interfaces.IChecklistRepository
	repairRepo interfaces.IRepairRepository
	clock      interfaces.IClock
	ids        interfaces.IIDGenerator
	locks      *RepairLocker
}

var _ IChecklistUseCase = (*ChecklistUseCase)(nil)

func NewChecklistUseCase(
	repo interfaces.IChecklistRepository,
	repairRepo interfaces.IRepairRepository,
	clock interfaces.IClock,
	ids interfaces.IIDGenerator,
	locks *RepairLocker,
) *ChecklistUseCase {
	return &ChecklistUseCase{
		repo:       repo,
		repairRepo: repairRepo,
		clock:      clock,
		ids:        ids,
		locks:      locks,
	}
}

// CreateChecklist persists the checklist and links it to the owning repair.
//
// The repair's type pointer (initial/conclusion) is overwritten
// unconditionally: re-running a checklist of the same type replaces the
// pointer while the previous id stays in the repair's checklist list. Gating
// works over the full list, so the accumulated record still blocks emission
// until signed.
func (u *ChecklistUseCase) CreateChecklist(ctx context.Context, repairID string, checklistType entities.ChecklistType, photos map[string]string, tests map[string]bool) (entities.Checklist, error) {
	repairID = strings.TrimSpace(repairID)
	if repairID == "" {
		return entities.Checklist{}, ErrMissingRepairReference
	}
	if checklistType != entities.ChecklistTypeInicial && checklistType != entities.ChecklistTypeConclusao {
		return entities.Checklist{}, ErrInvalidChecklistType
	}

	unlock := u.locks.Lock(repairID)
	defer unlock()

	repair, err := u.repairRepo.GetByID(ctx, repairID)
	if err != nil {
		return entities.Checklist{}, err
	}
	if repair.ID == "" {
		return entities.Checklist{}, ErrRepairNotFound
	}

	now := u.clock.Now()
	c := entities.Checklist{
		ID:        u.ids.NewID(),
		Type:      checklistType,
		RepairID:  repairID,
		Photos:    filterPhotos(photos),
		Tests:     filterTests(checklistType, tests),
		CreatedAt: now,
	}

	created, err := u.repo.Create(ctx, c)
	if err != nil {
		return entities.Checklist{}, err
	}

	repair.ChecklistIDs = append(repair.ChecklistIDs, created.ID)
	switch checklistType {
	case entities.ChecklistTypeConclusao:
		repair.ConclusionChecklistID = created.ID
	case entities.ChecklistTypeInicial:
		repair.InitialChecklistID = created.ID
	}
	repair.UpdatedAt = now
	if _, err := u.repairRepo.Save(ctx, repair); err != nil {
		return entities.Checklist{}, err
	}

	log.Printf("[checklist][usecase] created checklist_id=%s type=%s repair_id=%s", created.ID, created.Type, repairID)
	return created, nil
}

func (u *ChecklistUseCase) GetChecklist(ctx context.Context, id string) (entities.Checklist, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Checklist{}, ErrInvalidChecklistID
	}
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Checklist{}, err
	}
	if c.ID == "" {
		return entities.Checklist{}, ErrChecklistNotFound
	}
	return c, nil
}

func (u *ChecklistUseCase) ListChecklists(ctx context.Context) ([]entities.Checklist, error) {
	return u.repo.ListAll(ctx)
}

func (u *ChecklistUseCase) ListByRepair(ctx context.Context, repairID string) ([]entities.Checklist, error) {
	repairID = strings.TrimSpace(repairID)
	if repairID == "" {
		return nil, ErrInvalidRepairID
	}
	return u.repo.ListByRepairID(ctx, repairID)
}

// AttachSignature sets the customer signature on a checklist. Last write
// wins: signing an already signed checklist replaces the asset without
// complaint. The shop asks customers to re-sign when the first capture is
// illegible, so an "already signed" rejection would get in the way.
func (u *ChecklistUseCase) AttachSignature(ctx context.Context, checklistID, signatureRef string) (entities.Checklist, error) {
	checklistID = strings.TrimSpace(checklistID)
	if checklistID == "" {
		return entities.Checklist{}, ErrInvalidChecklistID
	}
	if strings.TrimSpace(signatureRef) == "" {
		return entities.Checklist{}, ErrMissingSignatureContent
	}

	c, err := u.repo.GetByID(ctx, checklistID)
	if err != nil {
		return entities.Checklist{}, err
	}
	if c.ID == "" {
		return entities.Checklist{}, ErrChecklistNotFound
	}

	unlock := u.locks.Lock(c.RepairID)
	defer unlock()

	now := u.clock.Now()
	c.Signature = strings.TrimSpace(signatureRef)
	signedAt := now
	c.SignatureSignedAt = &signedAt

	saved, err := u.repo.Save(ctx, c)
	if err != nil {
		return entities.Checklist{}, err
	}

	// The owning repair records the confirmation. A missing repair (legacy
	// orphan data) doesn't fail the signature itself.
	repair, err := u.repairRepo.GetByID(ctx, c.RepairID)
	if err != nil {
		return entities.Checklist{}, err
	}
	if repair.ID != "" {
		repair.AppendHistory(now, fmt.Sprintf("Assinatura digital do checklist %s confirmada pelo cliente", c.ID))
		repair.AppendMessage(now, entities.MessageTypeChecklistSignature, "Assinatura digital do checklist confirmada. Obrigado pela confiança!")
		repair.UpdatedAt = now
		if _, err := u.repairRepo.Save(ctx, repair); err != nil {
			return entities.Checklist{}, err
		}
	}

	return saved, nil
}

// DeleteChecklist removes the checklist and every reference the owning repair
// holds to it, including the type pointers when they point at the deleted id.
func (u *ChecklistUseCase) DeleteChecklist(ctx context.Context, checklistID string) error {
	checklistID = strings.TrimSpace(checklistID)
	if checklistID == "" {
		return ErrInvalidChecklistID
	}

	c, err := u.repo.GetByID(ctx, checklistID)
	if err != nil {
		return err
	}
	if c.ID == "" {
		return ErrChecklistNotFound
	}

	unlock := u.locks.Lock(c.RepairID)
	defer unlock()

	repair, err := u.repairRepo.GetByID(ctx, c.RepairID)
	if err != nil {
		return err
	}
	if repair.ID != "" {
		repair.ChecklistIDs = removeID(repair.ChecklistIDs, checklistID)
		if repair.ConclusionChecklistID == checklistID {
			repair.ConclusionChecklistID = ""
		}
		if repair.InitialChecklistID == checklistID {
			repair.InitialChecklistID = ""
		}
		repair.UpdatedAt = u.clock.Now()
		if _, err := u.repairRepo.Save(ctx, repair); err != nil {
			return err
		}
	}

	return u.repo.Delete(ctx, checklistID)
}

// filterTests keeps only the test names valid for the checklist type.
// Unknown names are dropped silently, as the legacy form handling did, and
// every allowed name is materialized so a missing field reads as a fail.
func filterTests(t entities.ChecklistType, tests map[string]bool) map[string]bool {
	out := make(map[string]bool)
	for _, name := range entities.AllowedTests(t) {
		out[name] = tests[name]
	}
	return out
}

func filterPhotos(photos map[string]string) map[string]string {
	out := make(map[string]string)
	for _, slot := range entities.PhotoSlots() {
		if ref, ok := photos[slot]; ok && strings.TrimSpace(ref) != "" {
			out[slot] = strings.TrimSpace(ref)
		}
	}
	return out
}

func removeID(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
