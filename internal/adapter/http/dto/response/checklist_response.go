package response

import (
	"time"

	"github.com/raisilvacor/clinicadomobile/internal/domain/entities"
)

type ChecklistResponse struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	RepairID string `json:"repair_id"`

	Photos map[string]string `json:"photos"`
	Tests  map[string]bool   `json:"tests"`

	Signature         string     `json:"signature,omitempty"`
	SignatureSignedAt *time.Time `json:"signature_signed_at,omitempty"`
	Signed            bool       `json:"signed"`

	CreatedAt time.Time `json:"timestamp"`
}

func FromChecklist(c entities.Checklist) ChecklistResponse {
	photos := c.Photos
	if photos == nil {
		photos = map[string]string{}
	}
	tests := c.Tests
	if tests == nil {
		tests = map[string]bool{}
	}
	return ChecklistResponse{
		ID:                c.ID,
		Type:              string(c.Type),
		RepairID:          c.RepairID,
		Photos:            photos,
		Tests:             tests,
		Signature:         c.Signature,
		SignatureSignedAt: c.SignatureSignedAt,
		Signed:            c.Signed(),
		CreatedAt:         c.CreatedAt,
	}
}

func FromChecklists(checklists []entities.Checklist) []ChecklistResponse {
	out := make([]ChecklistResponse, 0, len(checklists))
	for _, c := range checklists {
		out = append(out, FromChecklist(c))
	}
	return out
}
