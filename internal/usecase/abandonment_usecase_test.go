package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/raisilvacor/clinicadomobile/internal/domain/entities"
	mock_interfaces "github.com/raisilvacor/clinicadomobile/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestAbandonmentUseCase_ListAbandonmentAlerts(t *testing.T) {
	now := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)

	completedDaysAgo := func(id string, days int) entities.Repair {
		completedAt := now.AddDate(0, 0, -days)
		return entities.Repair{
			ID:           id,
			Status:       entities.RepairStatusConcluido,
			CustomerName: "Marina Lopes",
			DeviceName:   "iPhone 12",
			CreatedAt:    completedAt.AddDate(0, 0, -3),
			CompletedAt:  &completedAt,
		}
	}

	newUC := func(t *testing.T, repairs []entities.Repair) *AbandonmentUseCase {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIRepairRepository(ctrl)
		clock := mock_interfaces.NewMockIClock(ctrl)
		repo.EXPECT().ListAll(gomock.Any()).Return(repairs, nil)
		clock.EXPECT().Now().Return(now).AnyTimes()
		return NewAbandonmentUseCase(repo, clock)
	}

	t.Run("threshold boundaries", func(t *testing.T) {
		uc := newUC(t, []entities.Repair{
			completedDaysAgo("rep-54", 54),
			completedDaysAgo("rep-55", 55),
			completedDaysAgo("rep-59", 59),
			completedDaysAgo("rep-60", 60),
			completedDaysAgo("rep-90", 90),
		})

		alerts, err := uc.ListAbandonmentAlerts(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(alerts) != 4 {
			t.Fatalf("expected 4 alerts, got %d: %+v", len(alerts), alerts)
		}

		byID := map[string]entities.AbandonmentAlert{}
		for _, a := range alerts {
			byID[a.RepairID] = a
		}
		if _, ok := byID["rep-54"]; ok {
			t.Fatal("54 days is below the warning threshold")
		}
		if a := byID["rep-55"]; a.Level != entities.AlertLevelWarning || a.DaysRemaining != 5 {
			t.Fatalf("unexpected alert for rep-55: %+v", a)
		}
		if a := byID["rep-59"]; a.Level != entities.AlertLevelWarning || a.DaysRemaining != 1 {
			t.Fatalf("unexpected alert for rep-59: %+v", a)
		}
		if a := byID["rep-60"]; a.Level != entities.AlertLevelCritical || a.DaysRemaining != 0 {
			t.Fatalf("unexpected alert for rep-60: %+v", a)
		}
		if a := byID["rep-90"]; a.Level != entities.AlertLevelCritical || a.DaysRemaining != 0 {
			t.Fatalf("unexpected alert for rep-90: %+v", a)
		}
	})

	t.Run("oldest abandonment first", func(t *testing.T) {
		uc := newUC(t, []entities.Repair{
			completedDaysAgo("rep-56", 56),
			completedDaysAgo("rep-70", 70),
			completedDaysAgo("rep-61", 61),
		})

		alerts, err := uc.ListAbandonmentAlerts(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got := []string{alerts[0].RepairID, alerts[1].RepairID, alerts[2].RepairID}
		want := []string{"rep-70", "rep-61", "rep-56"}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("expected order %v, got %v", want, got)
			}
		}
	})

	t.Run("claimed and unfinished repairs are ignored", func(t *testing.T) {
		claimed := completedDaysAgo("rep-claimed", 80)
		claimed.OrderID = "or-1"
		inProgress := completedDaysAgo("rep-open", 80)
		inProgress.Status = entities.RepairStatusEmReparo

		uc := newUC(t, []entities.Repair{claimed, inProgress})
		alerts, err := uc.ListAbandonmentAlerts(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(alerts) != 0 {
			t.Fatalf("expected no alerts, got %+v", alerts)
		}
	})

	t.Run("legacy record without completion date falls back to CreatedAt", func(t *testing.T) {
		legacy := entities.Repair{
			ID:        "rep-legacy",
			Status:    entities.RepairStatusConcluido,
			CreatedAt: now.AddDate(0, 0, -62),
		}

		uc := newUC(t, []entities.Repair{legacy})
		alerts, err := uc.ListAbandonmentAlerts(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(alerts) != 1 || alerts[0].Level != entities.AlertLevelCritical || alerts[0].DaysSince != 62 {
			t.Fatalf("unexpected alerts: %+v", alerts)
		}
	})
}
