package entities

import "time"

// ChecklistType distinguishes the intake record from the pickup record.
type ChecklistType string

const (
	ChecklistTypeInicial   ChecklistType = "inicial"
	ChecklistTypeConclusao ChecklistType = "conclusao"
)

// Photo slots. Each slot is optional; values are opaque stored-asset
// references (the file layer is not this service's concern).
const (
	PhotoSlotIMEI       = "imei_photo"
	PhotoSlotPlaca      = "placa_photo"
	PhotoSlotConectores = "conectores_photo"
)

// PhotoSlots lists the valid photo slot names.
func PhotoSlots() []string {
	return []string{PhotoSlotIMEI, PhotoSlotPlaca, PhotoSlotConectores}
}

var testAreas = []string{"screen", "touch", "camera", "battery", "audio", "buttons"}

// AllowedTests returns the valid test names for a checklist type.
//
// An initial checklist covers the device before and after intake handling;
// a conclusion checklist only re-tests after the repair.
func AllowedTests(t ChecklistType) []string {
	var names []string
	if t != ChecklistTypeConclusao {
		for _, area := range testAreas {
			names = append(names, "test_before_"+area)
		}
	}
	for _, area := range testAreas {
		names = append(names, "test_after_"+area)
	}
	return names
}

// Checklist is the anti-fraud evidence record captured at intake (inicial) or
// at completion (conclusao).
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (repair_id-index): repair_id
//
// A checklist is "signed" iff Signature is non-empty. RepairID is required at
// creation: order emission depends on a checklist graph rooted at a real
// repair, so an orphan checklist is rejected at the boundary rather than
// tolerated downstream.
type Checklist struct {
	ID       string        `json:"id"`
	Type     ChecklistType `json:"type"`
	RepairID string        `json:"repair_id"`

	Photos map[string]string `json:"photos"`
	Tests  map[string]bool   `json:"tests"`

	Signature         string     `json:"signature,omitempty"`
	SignatureSignedAt *time.Time `json:"signature_signed_at,omitempty"`

	CreatedAt time.Time `json:"timestamp"`
}

// Signed reports whether the customer has signed this checklist.
func (c *Checklist) Signed() bool {
	return c.Signature != ""
}

// DisplayName is the user-facing name of the checklist type, used when
// reporting which signatures are still missing.
func (t ChecklistType) DisplayName() string {
	switch t {
	case ChecklistTypeConclusao:
		return "Checklist Antifraude de Conclusão"
	default:
		return "Checklist Antifraude Inicial"
	}
}
