package usecase

import (
	"context"
	"sort"

	"github.com/raisilvacor/clinicadomobile/internal/domain/entities"
	"github.com/raisilvacor/clinicadomobile/internal/usecase/interfaces"
)

// IAbandonmentUseCase is the read-only monitor over completed, unclaimed
// repairs. It never mutates anything.
type IAbandonmentUseCase interface {
	ListAbandonmentAlerts(ctx context.Context) ([]entities.AbandonmentAlert, error)
}

type AbandonmentUseCase struct {
	repairRepo interfaces.IRepairRepository
	clock      interfaces.IClock
}

var _ IAbandonmentUseCase = (*AbandonmentUseCase)(nil)

func NewAbandonmentUseCase(repairRepo interfaces.IRepairRepository, clock interfaces.IClock) *AbandonmentUseCase {
	return &AbandonmentUseCase{repairRepo: repairRepo, clock: clock}
}

// ListAbandonmentAlerts flags completed repairs with no emitted OR that have
// been sitting for 55 days or more, escalating to critical at 60. The
// reference date is CompletedAt, falling back to CreatedAt for legacy
// records completed before the field existed. Oldest abandonment first.
func (u *AbandonmentUseCase) ListAbandonmentAlerts(ctx context.Context) ([]entities.AbandonmentAlert, error) {
	repairs, err := u.repairRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	now := u.clock.Now()
	alerts := []entities.AbandonmentAlert{}
	for _, r := range repairs {
		if !r.Completed() || r.OrderID != "" {
			continue
		}

		reference := r.CreatedAt
		if r.CompletedAt != nil {
			reference = *r.CompletedAt
		}

		daysSince := int(now.Sub(reference).Hours() / 24)
		if daysSince < entities.AbandonmentWarningDays {
			continue
		}

		level := entities.AlertLevelWarning
		if daysSince >= entities.AbandonmentCriticalDays {
			level = entities.AlertLevelCritical
		}
		remaining := entities.AbandonmentCriticalDays - daysSince
		if remaining < 0 {
			remaining = 0
		}

		alerts = append(alerts, entities.AbandonmentAlert{
			RepairID:      r.ID,
			CustomerName:  r.CustomerName,
			CustomerPhone: r.CustomerPhone,
			DeviceName:    r.DeviceName,
			DaysSince:     daysSince,
			DaysRemaining: remaining,
			Level:         level,
		})
	}

	sort.Slice(alerts, func(i, j int) bool {
		return alerts[i].DaysSince > alerts[j].DaysSince
	})
	return alerts, nil
}
