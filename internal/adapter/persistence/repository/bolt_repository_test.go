package repository

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/raisilvacor/clinicadomobile/internal/domain/entities"

	bolt "github.com/boltdb/bolt"
)

func openTestBolt(t *testing.T) *bolt.DB {
	t.Helper()
	db, err := bolt.Open(filepath.Join(t.TempDir(), "test.db"), 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		t.Fatalf("opening bolt: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestRepairBoltRepository_RoundTrip(t *testing.T) {
	db := openTestBolt(t)
	repo, err := NewRepairBoltRepository(db)
	if err != nil {
		t.Fatalf("creating repository: %v", err)
	}
	ctx := context.Background()

	completedAt := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	rep := entities.Repair{
		ID:           "rep-1",
		DeviceName:   "iPhone 12",
		CustomerName: "Marina Lopes",
		CustomerCPF:  "12345678901",
		Status:       entities.RepairStatusConcluido,
		CompletedAt:  &completedAt,
		Budget:       &entities.Budget{Amount: 150, Description: "Troca de tela", Status: entities.BudgetStatusApproved},
		Warranty:     &entities.Warranty{Period: "30 dias", ValidUntil: completedAt.AddDate(0, 0, 30), Coverage: "Peças e mão de obra"},
		History:      []entities.HistoryEntry{{Timestamp: completedAt, Action: "Reparo criado", Status: entities.RepairStatusAguardando}},
		CreatedAt:    completedAt.AddDate(0, 0, -5),
		UpdatedAt:    completedAt,
	}

	if _, err := repo.Create(ctx, rep); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.GetByID(ctx, "rep-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != "rep-1" || got.Budget == nil || got.Budget.Amount != 150 || got.Warranty == nil {
		t.Fatalf("round trip lost data: %+v", got)
	}
	if got.CompletedAt == nil || !got.CompletedAt.Equal(completedAt) {
		t.Fatalf("completed_at did not survive: %+v", got.CompletedAt)
	}
	if len(got.History) != 1 || got.History[0].Action != "Reparo criado" {
		t.Fatalf("history did not survive: %+v", got.History)
	}

	missing, err := repo.GetByID(ctx, "nope")
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing.ID != "" {
		t.Fatalf("expected zero value for missing repair, got %+v", missing)
	}

	all, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 repair, got %d", len(all))
	}

	if err := repo.Delete(ctx, "rep-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := repo.Delete(ctx, "rep-1"); err != nil {
		t.Fatalf("second delete must be a no-op, got %v", err)
	}
}

func TestChecklistBoltRepository_ListByRepairID(t *testing.T) {
	db := openTestBolt(t)
	repo, err := NewChecklistBoltRepository(db)
	if err != nil {
		t.Fatalf("creating repository: %v", err)
	}
	ctx := context.Background()

	for _, c := range []entities.Checklist{
		{ID: "cl-1", Type: entities.ChecklistTypeInicial, RepairID: "rep-1"},
		{ID: "cl-2", Type: entities.ChecklistTypeConclusao, RepairID: "rep-1"},
		{ID: "cl-3", Type: entities.ChecklistTypeInicial, RepairID: "rep-2"},
	} {
		if _, err := repo.Create(ctx, c); err != nil {
			t.Fatalf("create %s: %v", c.ID, err)
		}
	}

	matched, err := repo.ListByRepairID(ctx, "rep-1")
	if err != nil {
		t.Fatalf("list by repair: %v", err)
	}
	if len(matched) != 2 {
		t.Fatalf("expected 2 checklists for rep-1, got %d", len(matched))
	}

	none, err := repo.ListByRepairID(ctx, "rep-9")
	if err != nil {
		t.Fatalf("list by repair: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected no checklists, got %+v", none)
	}
}

func TestOrderBoltRepository_CreateWithRepair(t *testing.T) {
	db := openTestBolt(t)
	orders, err := NewOrderBoltRepository(db)
	if err != nil {
		t.Fatalf("creating order repository: %v", err)
	}
	repairs, err := NewRepairBoltRepository(db)
	if err != nil {
		t.Fatalf("creating repair repository: %v", err)
	}
	ctx := context.Background()

	rep := entities.Repair{ID: "rep-1", Status: entities.RepairStatusConcluido}
	if _, err := repairs.Create(ctx, rep); err != nil {
		t.Fatalf("seeding repair: %v", err)
	}

	emittedAt := time.Date(2025, 6, 12, 16, 0, 0, 0, time.UTC)
	linked := rep
	linked.OrderID = "or-1"
	linked.OrderEmittedAt = &emittedAt
	order := entities.Order{ID: "or-1", RepairID: "rep-1", EmittedAt: emittedAt}

	if _, err := orders.CreateWithRepair(ctx, order, linked); err != nil {
		t.Fatalf("emit: %v", err)
	}

	// Both sides of the transaction must be visible.
	gotOrder, err := orders.GetByRepairID(ctx, "rep-1")
	if err != nil {
		t.Fatalf("get by repair: %v", err)
	}
	if gotOrder.ID != "or-1" {
		t.Fatalf("expected or-1, got %+v", gotOrder)
	}
	gotRepair, err := repairs.GetByID(ctx, "rep-1")
	if err != nil {
		t.Fatalf("get repair: %v", err)
	}
	if gotRepair.OrderID != "or-1" {
		t.Fatalf("repair not linked: %+v", gotRepair)
	}

	t.Run("refuses a second emission for the same repair", func(t *testing.T) {
		second := entities.Order{ID: "or-2", RepairID: "rep-1", EmittedAt: emittedAt}
		if _, err := orders.CreateWithRepair(ctx, second, linked); !errors.Is(err, ErrOrderExists) {
			t.Fatalf("expected ErrOrderExists, got %v", err)
		}
		if got, _ := orders.GetByID(ctx, "or-2"); got.ID != "" {
			t.Fatalf("rejected emission must not write the order, got %+v", got)
		}
	})

	t.Run("refuses a duplicate order id", func(t *testing.T) {
		dup := entities.Order{ID: "or-1", RepairID: "rep-9", EmittedAt: emittedAt}
		if _, err := orders.CreateWithRepair(ctx, dup, entities.Repair{ID: "rep-9"}); !errors.Is(err, ErrOrderExists) {
			t.Fatalf("expected ErrOrderExists, got %v", err)
		}
	})
}
