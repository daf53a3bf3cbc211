package request

// CreateChecklistRequest captures one anti-fraud checklist. Photos maps photo
// slot names to stored-asset references; Tests maps test names to pass/fail.
// Unknown slots and test names are dropped by the use case, not rejected.
type CreateChecklistRequest struct {
	RepairID string            `json:"repair_id" binding:"required"`
	Type     string            `json:"type" binding:"required"`
	Photos   map[string]string `json:"photos"`
	Tests    map[string]bool   `json:"tests"`
}

// AttachSignatureRequest records the customer's digital signature on a
// checklist. Signature is an opaque stored-asset reference.
type AttachSignatureRequest struct {
	Signature string `json:"signature" binding:"required"`
}
