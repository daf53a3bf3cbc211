package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/raisilvacor/clinicadomobile/internal/domain/entities"
	mock_interfaces "github.com/raisilvacor/clinicadomobile/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type repairFixture struct {
	repo          *mock_interfaces.MockIRepairRepository
	checklistRepo *mock_interfaces.MockIChecklistRepository
	orderRepo     *mock_interfaces.MockIOrderRepository
	risk          *mock_interfaces.MockIRiskScoreProvider
	clock         *mock_interfaces.MockIClock
	ids           *mock_interfaces.MockIIDGenerator
	uc            *RepairUseCase
	now           time.Time
}

func newRepairFixture(t *testing.T) *repairFixture {
	ctrl := gomock.NewController(t)
	f := &repairFixture{
		repo:          mock_interfaces.NewMockIRepairRepository(ctrl),
		checklistRepo: mock_interfaces.NewMockIChecklistRepository(ctrl),
		orderRepo:     mock_interfaces.NewMockIOrderRepository(ctrl),
		risk:          mock_interfaces.NewMockIRiskScoreProvider(ctrl),
		clock:         mock_interfaces.NewMockIClock(ctrl),
		ids:           mock_interfaces.NewMockIIDGenerator(ctrl),
		now:           time.Date(2025, 6, 10, 14, 30, 0, 0, time.UTC),
	}
	f.clock.EXPECT().Now().Return(f.now).AnyTimes()
	f.ids.EXPECT().NewID().Return("rep-1").AnyTimes()
	f.uc = NewRepairUseCase(f.repo, f.checklistRepo, f.orderRepo, f.risk, f.clock, f.ids, NewRepairLocker())
	return f
}

func passthroughSave(f *repairFixture) {
	f.repo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.Repair{})).DoAndReturn(
		func(_ context.Context, r entities.Repair) (entities.Repair, error) { return r, nil },
	)
}

func TestRepairUseCase_CreateRepair(t *testing.T) {
	device := DeviceInfo{Name: "iPhone 12", Model: "A2403", IMEI: "350000000000001", ProblemDescription: "Tela trincada"}
	customer := CustomerInfo{Name: "Maria Souza", Phone: "(11) 99999-0000", CPF: "123.456.789-01"}

	t.Run("without initial budget starts waiting", func(t *testing.T) {
		f := newRepairFixture(t)
		f.repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Repair{})).DoAndReturn(
			func(_ context.Context, r entities.Repair) (entities.Repair, error) { return r, nil },
		)

		r, err := f.uc.CreateRepair(context.Background(), device, customer, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.Status != entities.RepairStatusAguardando {
			t.Fatalf("expected aguardando, got %s", r.Status)
		}
		if r.Budget != nil {
			t.Fatalf("expected no budget, got %+v", r.Budget)
		}
		if len(r.History) != 1 || r.History[0].Action != "Reparo criado" {
			t.Fatalf("unexpected history: %+v", r.History)
		}
		if r.CustomerCPF != "12345678901" {
			t.Fatalf("expected normalized cpf, got %q", r.CustomerCPF)
		}
	})

	t.Run("with initial budget is born quoted", func(t *testing.T) {
		f := newRepairFixture(t)
		f.repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Repair{})).DoAndReturn(
			func(_ context.Context, r entities.Repair) (entities.Repair, error) { return r, nil },
		)

		r, err := f.uc.CreateRepair(context.Background(), device, customer, &InitialBudget{Amount: 150, Description: "Troca de tela"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.Status != entities.RepairStatusOrcamento {
			t.Fatalf("expected orcamento, got %s", r.Status)
		}
		if r.Budget == nil || r.Budget.Status != entities.BudgetStatusPending || r.Budget.Amount != 150 {
			t.Fatalf("unexpected budget: %+v", r.Budget)
		}
		if len(r.History) != 2 {
			t.Fatalf("expected 2 history entries, got %d", len(r.History))
		}
		if !strings.Contains(r.History[1].Action, "150.00") {
			t.Fatalf("expected quoted amount in history, got %q", r.History[1].Action)
		}
	})

	t.Run("invalid cpf rejected", func(t *testing.T) {
		f := newRepairFixture(t)
		_, err := f.uc.CreateRepair(context.Background(), device, CustomerInfo{CPF: "123"}, nil)
		if !errors.Is(err, ErrInvalidCPF) {
			t.Fatalf("expected ErrInvalidCPF, got %v", err)
		}
	})

	t.Run("negative initial budget rejected", func(t *testing.T) {
		f := newRepairFixture(t)
		_, err := f.uc.CreateRepair(context.Background(), device, customer, &InitialBudget{Amount: -1})
		if !errors.Is(err, ErrInvalidBudgetAmount) {
			t.Fatalf("expected ErrInvalidBudgetAmount, got %v", err)
		}
	})
}

func TestRepairUseCase_SetStatus(t *testing.T) {
	t.Run("any transition is legal", func(t *testing.T) {
		// No transition table exists on purpose: completed can go back to
		// waiting, waiting can jump straight to in-repair.
		transitions := []struct {
			from, to entities.RepairStatus
		}{
			{entities.RepairStatusAguardando, entities.RepairStatusEmReparo},
			{entities.RepairStatusConcluido, entities.RepairStatusAguardando},
			{entities.RepairStatusOrcamento, entities.RepairStatusConcluido},
		}
		for _, tr := range transitions {
			f := newRepairFixture(t)
			f.repo.EXPECT().GetByID(gomock.Any(), "rep-1").Return(entities.Repair{ID: "rep-1", Status: tr.from}, nil)
			passthroughSave(f)

			r, err := f.uc.SetStatus(context.Background(), "rep-1", tr.to, "admin")
			if err != nil {
				t.Fatalf("%s -> %s: unexpected error: %v", tr.from, tr.to, err)
			}
			if r.Status != tr.to {
				t.Fatalf("expected %s, got %s", tr.to, r.Status)
			}
			last := r.History[len(r.History)-1]
			want := "Status alterado: " + string(tr.from) + " → " + string(tr.to)
			if last.Action != want {
				t.Fatalf("expected %q, got %q", want, last.Action)
			}
		}
	})

	t.Run("not found", func(t *testing.T) {
		f := newRepairFixture(t)
		f.repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Repair{}, nil)
		_, err := f.uc.SetStatus(context.Background(), "missing", entities.RepairStatusEmReparo, "admin")
		if !errors.Is(err, ErrRepairNotFound) {
			t.Fatalf("expected ErrRepairNotFound, got %v", err)
		}
	})

	t.Run("history grows by exactly one", func(t *testing.T) {
		f := newRepairFixture(t)
		existing := entities.Repair{ID: "rep-1", Status: entities.RepairStatusAguardando, History: []entities.HistoryEntry{{Action: "Reparo criado"}}}
		f.repo.EXPECT().GetByID(gomock.Any(), "rep-1").Return(existing, nil)
		passthroughSave(f)

		r, err := f.uc.SetStatus(context.Background(), "rep-1", entities.RepairStatusEmAnalise, "admin")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(r.History) != len(existing.History)+1 {
			t.Fatalf("expected %d entries, got %d", len(existing.History)+1, len(r.History))
		}
	})
}

func TestRepairUseCase_BudgetDecisions(t *testing.T) {
	quoted := func() entities.Repair {
		return entities.Repair{
			ID:     "rep-1",
			Status: entities.RepairStatusOrcamento,
			Budget: &entities.Budget{Amount: 150, Status: entities.BudgetStatusPending},
		}
	}

	t.Run("approve", func(t *testing.T) {
		f := newRepairFixture(t)
		f.repo.EXPECT().GetByID(gomock.Any(), "rep-1").Return(quoted(), nil)
		passthroughSave(f)

		r, err := f.uc.ApproveBudget(context.Background(), "rep-1", "administrador")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.Status != entities.RepairStatusAprovado {
			t.Fatalf("expected aprovado, got %s", r.Status)
		}
		if r.Budget.Status != entities.BudgetStatusApproved {
			t.Fatalf("expected approved budget, got %s", r.Budget.Status)
		}
		if len(r.Messages) != 1 || !strings.Contains(r.Messages[0].Content, "150.00") {
			t.Fatalf("expected message with amount, got %+v", r.Messages)
		}
	})

	t.Run("reject reverts to intake not to quoted", func(t *testing.T) {
		f := newRepairFixture(t)
		f.repo.EXPECT().GetByID(gomock.Any(), "rep-1").Return(quoted(), nil)
		passthroughSave(f)

		r, err := f.uc.RejectBudget(context.Background(), "rep-1", "cliente")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.Status != entities.RepairStatusAguardando {
			t.Fatalf("expected aguardando, got %s", r.Status)
		}
		if r.Budget.Status != entities.BudgetStatusRejected {
			t.Fatalf("expected rejected budget, got %s", r.Budget.Status)
		}
		if r.History[len(r.History)-1].Action != "Orçamento rejeitado pelo cliente" {
			t.Fatalf("unexpected history action %q", r.History[len(r.History)-1].Action)
		}
	})

	t.Run("no budget fails regardless of status", func(t *testing.T) {
		for _, status := range []entities.RepairStatus{entities.RepairStatusAguardando, entities.RepairStatusConcluido} {
			f := newRepairFixture(t)
			f.repo.EXPECT().GetByID(gomock.Any(), "rep-1").Return(entities.Repair{ID: "rep-1", Status: status}, nil)
			_, err := f.uc.ApproveBudget(context.Background(), "rep-1", "administrador")
			if !errors.Is(err, ErrNoBudget) {
				t.Fatalf("status %s: expected ErrNoBudget, got %v", status, err)
			}
		}
	})

	t.Run("re-approval is permitted", func(t *testing.T) {
		// Permissive by design: the budget status is not checked before a
		// decision, so an already approved budget can be approved again.
		f := newRepairFixture(t)
		r := quoted()
		r.Budget.Status = entities.BudgetStatusApproved
		f.repo.EXPECT().GetByID(gomock.Any(), "rep-1").Return(r, nil)
		passthroughSave(f)

		if _, err := f.uc.ApproveBudget(context.Background(), "rep-1", "administrador"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestRepairUseCase_CompleteRepair(t *testing.T) {
	t.Run("completes from any status with warranty", func(t *testing.T) {
		for _, status := range []entities.RepairStatus{entities.RepairStatusAguardando, entities.RepairStatusAprovado, entities.RepairStatusEmReparo} {
			f := newRepairFixture(t)
			f.repo.EXPECT().GetByID(gomock.Any(), "rep-1").Return(entities.Repair{ID: "rep-1", Status: status}, nil)
			passthroughSave(f)

			r, err := f.uc.CompleteRepair(context.Background(), "rep-1")
			if err != nil {
				t.Fatalf("status %s: unexpected error: %v", status, err)
			}
			if r.Status != entities.RepairStatusConcluido {
				t.Fatalf("expected concluido, got %s", r.Status)
			}
			if r.CompletedAt == nil || !r.CompletedAt.Equal(f.now) {
				t.Fatalf("expected completedAt=%v, got %v", f.now, r.CompletedAt)
			}
			if r.Warranty == nil {
				t.Fatal("expected warranty")
			}
			wantUntil := f.now.AddDate(0, 0, entities.WarrantyPeriodDays)
			if !r.Warranty.ValidUntil.Equal(wantUntil) {
				t.Fatalf("expected valid until %v, got %v", wantUntil, r.Warranty.ValidUntil)
			}
			if r.Warranty.Coverage != "Peças e mão de obra" {
				t.Fatalf("unexpected coverage %q", r.Warranty.Coverage)
			}
		}
	})

	t.Run("invariants hold after completion", func(t *testing.T) {
		f := newRepairFixture(t)
		f.repo.EXPECT().GetByID(gomock.Any(), "rep-1").Return(entities.Repair{ID: "rep-1", Status: entities.RepairStatusAprovado}, nil)
		passthroughSave(f)

		r, _ := f.uc.CompleteRepair(context.Background(), "rep-1")
		if (r.CompletedAt != nil) != (r.Status == entities.RepairStatusConcluido) {
			t.Fatal("completedAt must be set iff status is concluido")
		}
		if (r.Warranty != nil) != (r.CompletedAt != nil) {
			t.Fatal("warranty must be set iff completedAt is set")
		}
	})
}

func TestRepairUseCase_RecordMessage(t *testing.T) {
	t.Run("appends without touching history", func(t *testing.T) {
		f := newRepairFixture(t)
		existing := entities.Repair{ID: "rep-1", Status: entities.RepairStatusEmReparo, History: []entities.HistoryEntry{{Action: "Reparo criado"}}}
		f.repo.EXPECT().GetByID(gomock.Any(), "rep-1").Return(existing, nil)
		passthroughSave(f)

		r, err := f.uc.RecordMessage(context.Background(), "rep-1", entities.MessageTypeAdmin, "Peça chegou, retomamos amanhã")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(r.Messages) != 1 {
			t.Fatalf("expected 1 message, got %d", len(r.Messages))
		}
		if len(r.History) != len(existing.History) {
			t.Fatal("RecordMessage must not append history")
		}
	})

	t.Run("empty content rejected", func(t *testing.T) {
		f := newRepairFixture(t)
		_, err := f.uc.RecordMessage(context.Background(), "rep-1", entities.MessageTypeAdmin, "   ")
		if !errors.Is(err, ErrInvalidMessage) {
			t.Fatalf("expected ErrInvalidMessage, got %v", err)
		}
	})
}

func TestRepairUseCase_SearchByCPF(t *testing.T) {
	t.Run("collects repairs orders checklists and score", func(t *testing.T) {
		f := newRepairFixture(t)
		repairs := []entities.Repair{
			{ID: "rep-1", CustomerCPF: "12345678901", OrderID: "or-1"},
			{ID: "rep-2", CustomerCPF: "99999999999"},
		}
		f.repo.EXPECT().ListAll(gomock.Any()).Return(repairs, nil)
		f.orderRepo.EXPECT().GetByID(gomock.Any(), "or-1").Return(entities.Order{ID: "or-1", RepairID: "rep-1"}, nil)
		f.checklistRepo.EXPECT().ListByRepairID(gomock.Any(), "rep-1").Return([]entities.Checklist{{ID: "cl-1", RepairID: "rep-1"}}, nil)
		f.risk.EXPECT().ScoreFor(gomock.Any(), "12345678901").Return(entities.RiskScore{Score: 0.2, Level: "low", Label: "Baixo risco"}, nil)

		res, err := f.uc.SearchByCPF(context.Background(), "123.456.789-01")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Repairs) != 1 || res.Repairs[0].ID != "rep-1" {
			t.Fatalf("unexpected repairs: %+v", res.Repairs)
		}
		if len(res.Orders) != 1 || len(res.Checklists) != 1 {
			t.Fatalf("unexpected related records: %+v", res)
		}
		if res.Risk == nil || res.Risk.Level != "low" {
			t.Fatalf("unexpected risk: %+v", res.Risk)
		}
	})

	t.Run("score failure does not fail the search", func(t *testing.T) {
		f := newRepairFixture(t)
		f.repo.EXPECT().ListAll(gomock.Any()).Return([]entities.Repair{}, nil)
		f.risk.EXPECT().ScoreFor(gomock.Any(), "12345678901").Return(entities.RiskScore{}, errors.New("provider down"))

		res, err := f.uc.SearchByCPF(context.Background(), "12345678901")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Risk != nil {
			t.Fatalf("expected no risk score, got %+v", res.Risk)
		}
	})

	t.Run("invalid cpf", func(t *testing.T) {
		f := newRepairFixture(t)
		if _, err := f.uc.SearchByCPF(context.Background(), "12-34"); !errors.Is(err, ErrInvalidCPF) {
			t.Fatalf("expected ErrInvalidCPF, got %v", err)
		}
	})
}

func TestRepairUseCase_DeleteRepair(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		f := newRepairFixture(t)
		f.repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Repair{}, nil)
		if err := f.uc.DeleteRepair(context.Background(), "missing"); !errors.Is(err, ErrRepairNotFound) {
			t.Fatalf("expected ErrRepairNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		f := newRepairFixture(t)
		f.repo.EXPECT().GetByID(gomock.Any(), "rep-1").Return(entities.Repair{ID: "rep-1"}, nil)
		f.repo.EXPECT().Delete(gomock.Any(), "rep-1").Return(nil)
		if err := f.uc.DeleteRepair(context.Background(), "rep-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
