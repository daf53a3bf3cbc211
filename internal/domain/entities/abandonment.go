package entities

// Abandonment thresholds, in days since completion. A completed repair with
// no emitted OR starts alerting at the warning threshold and escalates at the
// critical one. Distinct from StorageFeeClauseDays (a contractual clause on
// printed documents, not an alerting rule).
const (
	AbandonmentWarningDays  = 55
	AbandonmentCriticalDays = 60
)

// AlertLevel is the severity of an abandonment alert.
type AlertLevel string

const (
	AlertLevelWarning  AlertLevel = "warning"
	AlertLevelCritical AlertLevel = "critical"
)

// AbandonmentAlert flags a completed, unclaimed repair approaching (or past)
// the abandonment threshold.
type AbandonmentAlert struct {
	RepairID      string     `json:"repair_id"`
	CustomerName  string     `json:"customer_name"`
	CustomerPhone string     `json:"customer_phone"`
	DeviceName    string     `json:"device_name"`
	DaysSince     int        `json:"days_since"`
	DaysRemaining int        `json:"days_remaining"`
	Level         AlertLevel `json:"level"`
}

// RiskScore is the external anti-fraud score for a customer CPF. The scoring
// algorithm lives in a separate service and is a black box here; only this
// contract is consumed.
type RiskScore struct {
	Score float64 `json:"score"`
	Level string  `json:"level"`
	Label string  `json:"label"`
}
