package entities

import "time"

// StorageFeeClauseDays is the contractual clause printed on pickup documents:
// devices left in the shop for more than this many days after emission are
// subject to a daily storage fee. Independent of the abandonment-alert
// thresholds in the monitor; the two were never reconciled in the legacy
// system and are kept as separate constants on purpose.
const StorageFeeClauseDays = 90

// Order is the Ordem de Retirada (OR), the pickup authorization releasing the
// device to the customer. At most one per repair; creation is one-way, there
// is no update or replace operation.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (repair_id-index): repair_id
//
// The Order put and the owning Repair's order_id/order_emitted_at update are
// committed in a single transaction so a crash cannot leave an emitted OR
// unlinked (or vice versa).
type Order struct {
	ID       string `json:"id"`
	RepairID string `json:"repair_id"`

	EmittedAt time.Time `json:"emitted_at"`
	EmittedBy string    `json:"emitted_by"`

	Observations      string `json:"observations"`
	CustomerReceived  bool   `json:"customer_received"`
	CustomerSignature string `json:"customer_signature,omitempty"`

	// Pickup charge, when the customer paid the approved budget on release.
	PaymentID     string `json:"payment_id,omitempty"`
	PaymentStatus string `json:"payment_status,omitempty"`
}
