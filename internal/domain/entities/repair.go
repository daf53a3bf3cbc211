package entities

import "time"

// RepairStatus is the lifecycle status of a repair.
//
// Domain notes:
//   - The vocabulary is deliberately open: status is a plain string and
//     SetStatus accepts any source→target pair. The shop drives the board
//     manually and the legacy system never enforced a transition table, so
//     restricting it here would silently reject flows the shop uses today
//     (e.g. same-day completion straight from "aguardando").
//   - The canonical values below are the ones the admin board renders.

type RepairStatus string

const (
	RepairStatusAguardando RepairStatus = "aguardando"
	RepairStatusEmAnalise  RepairStatus = "em_analise"
	RepairStatusOrcamento  RepairStatus = "orcamento"
	RepairStatusAprovado   RepairStatus = "aprovado"
	RepairStatusEmReparo   RepairStatus = "em_reparo"
	RepairStatusConcluido  RepairStatus = "concluido"
)

// BudgetStatus is the approval state of a budget proposal.
//
// Kept in English ("pending"/"approved"/"rejected") while repair statuses are
// in Portuguese; the legacy data uses exactly this mix and migrating stored
// documents is not worth the churn.

type BudgetStatus string

const (
	BudgetStatusPending  BudgetStatus = "pending"
	BudgetStatusApproved BudgetStatus = "approved"
	BudgetStatusRejected BudgetStatus = "rejected"
)

// WarrantyPeriodDays is the warranty granted on completion. Earlier revisions
// issued 90 days; the shop settled on 30 and old documents were migrated.
const WarrantyPeriodDays = 30

// Budget is the price proposal for a repair. Absent until the shop quotes.
type Budget struct {
	Amount      float64      `json:"amount"`
	Description string       `json:"description"`
	Status      BudgetStatus `json:"status"`
}

// Warranty is created exactly once, at completion.
type Warranty struct {
	Period     string    `json:"period"`
	ValidUntil time.Time `json:"valid_until"`
	Coverage   string    `json:"coverage"`
}

// HistoryEntry is one line of the per-repair audit trail. The history log is
// append-only: entries are never rewritten or reordered, and every
// state-changing operation appends exactly one.
type HistoryEntry struct {
	Timestamp time.Time    `json:"timestamp"`
	Action    string       `json:"action"`
	Status    RepairStatus `json:"status"`
}

// MessageType classifies customer-facing notices.
type MessageType string

const (
	MessageTypeAdmin              MessageType = "admin"
	MessageTypeBudgetApproved     MessageType = "budget_approved"
	MessageTypeBudgetRejected     MessageType = "budget_rejected"
	MessageTypeCompleted          MessageType = "completed"
	MessageTypeChecklistSignature MessageType = "checklist_signature"
)

// Message is a customer-facing notice appended as a side effect of lifecycle
// operations. Append-only, like History.
type Message struct {
	Type    MessageType `json:"type"`
	Content string      `json:"content"`
	SentAt  time.Time   `json:"sent_at"`
}

// Repair is the aggregate tracking one device from intake to pickup.
//
// Storage model (DynamoDB):
//   - PK: id
//   - whole-document replace-on-save; the aggregate is always loaded and
//     written as a unit, which is why concurrent mutations of the same repair
//     must be serialized by the caller (the use cases hold a per-repair lock).
//
// Invariants:
//   - CompletedAt is set iff Status == concluido.
//   - Warranty is set iff CompletedAt is set.
//   - OrderID is set only by a successful order emission (the gate).
//   - ChecklistIDs accumulates; it is never deduplicated. Recreating a
//     checklist of the same type overwrites the type pointer but leaves the
//     old id in the list, so gating must consider the full list.
type Repair struct {
	ID string `json:"id"`

	DeviceName         string `json:"device_name"`
	DeviceModel        string `json:"device_model"`
	DeviceIMEI         string `json:"device_imei"`
	ProblemDescription string `json:"problem_description"`

	CustomerName    string `json:"customer_name"`
	CustomerPhone   string `json:"customer_phone"`
	CustomerCPF     string `json:"customer_cpf"`
	CustomerAddress string `json:"customer_address"`
	CustomerEmail   string `json:"customer_email"`

	Status RepairStatus `json:"status"`

	Budget      *Budget    `json:"budget,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	Warranty    *Warranty  `json:"warranty,omitempty"`

	OrderID        string     `json:"order_id,omitempty"`
	OrderEmittedAt *time.Time `json:"order_emitted_at,omitempty"`

	ChecklistIDs          []string `json:"checklists,omitempty"`
	InitialChecklistID    string   `json:"initial_checklist_id,omitempty"`
	ConclusionChecklistID string   `json:"conclusion_checklist_id,omitempty"`

	History  []HistoryEntry `json:"history"`
	Messages []Message      `json:"messages"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AppendHistory records an audit entry with the repair's current status.
func (r *Repair) AppendHistory(at time.Time, action string) {
	r.History = append(r.History, HistoryEntry{Timestamp: at, Action: action, Status: r.Status})
}

// AppendMessage records a customer-facing notice.
func (r *Repair) AppendMessage(at time.Time, msgType MessageType, content string) {
	r.Messages = append(r.Messages, Message{Type: msgType, Content: content, SentAt: at})
}

// Completed reports whether the repair reached the terminal completed status.
func (r *Repair) Completed() bool {
	return r.Status == RepairStatusConcluido
}
