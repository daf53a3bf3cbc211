package response

import "github.com/raisilvacor/clinicadomobile/internal/domain/entities"

type AbandonmentAlertResponse struct {
	RepairID      string `json:"repair_id"`
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	DeviceName    string `json:"device_name"`
	DaysSince     int    `json:"days_since"`
	DaysRemaining int    `json:"days_remaining"`
	Level         string `json:"level"`
}

func FromAbandonmentAlerts(alerts []entities.AbandonmentAlert) []AbandonmentAlertResponse {
	out := make([]AbandonmentAlertResponse, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, AbandonmentAlertResponse{
			RepairID:      a.RepairID,
			CustomerName:  a.CustomerName,
			CustomerPhone: a.CustomerPhone,
			DeviceName:    a.DeviceName,
			DaysSince:     a.DaysSince,
			DaysRemaining: a.DaysRemaining,
			Level:         string(a.Level),
		})
	}
	return out
}
