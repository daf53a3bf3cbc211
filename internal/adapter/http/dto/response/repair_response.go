package response

import (
	"time"

	"github.com/raisilvacor/clinicadomobile/internal/domain/entities"
)

type BudgetResponse struct {
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
}

type WarrantyResponse struct {
	Period     string    `json:"period"`
	ValidUntil time.Time `json:"valid_until"`
	Coverage   string    `json:"coverage"`
}

type HistoryEntryResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Action    string    `json:"action"`
	Status    string    `json:"status"`
}

type MessageResponse struct {
	Type    string    `json:"type"`
	Content string    `json:"content"`
	SentAt  time.Time `json:"sent_at"`
}

type RepairResponse struct {
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

	Status string `json:"status"`

	Budget      *BudgetResponse   `json:"budget,omitempty"`
	CompletedAt *time.Time        `json:"completed_at,omitempty"`
	Warranty    *WarrantyResponse `json:"warranty,omitempty"`

	OrderID        string     `json:"order_id,omitempty"`
	OrderEmittedAt *time.Time `json:"order_emitted_at,omitempty"`

	ChecklistIDs          []string `json:"checklists"`
	InitialChecklistID    string   `json:"initial_checklist_id,omitempty"`
	ConclusionChecklistID string   `json:"conclusion_checklist_id,omitempty"`

	History  []HistoryEntryResponse `json:"history"`
	Messages []MessageResponse      `json:"messages"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromRepair(r entities.Repair) RepairResponse {
	resp := RepairResponse{
		ID:                 r.ID,
		DeviceName:         r.DeviceName,
		DeviceModel:        r.DeviceModel,
		DeviceIMEI:         r.DeviceIMEI,
		ProblemDescription: r.ProblemDescription,

		CustomerName:    r.CustomerName,
		CustomerPhone:   r.CustomerPhone,
		CustomerCPF:     r.CustomerCPF,
		CustomerAddress: r.CustomerAddress,
		CustomerEmail:   r.CustomerEmail,

		Status: string(r.Status),

		CompletedAt:    r.CompletedAt,
		OrderID:        r.OrderID,
		OrderEmittedAt: r.OrderEmittedAt,

		InitialChecklistID:    r.InitialChecklistID,
		ConclusionChecklistID: r.ConclusionChecklistID,

		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}

	if r.Budget != nil {
		resp.Budget = &BudgetResponse{
			Amount:      r.Budget.Amount,
			Description: r.Budget.Description,
			Status:      string(r.Budget.Status),
		}
	}
	if r.Warranty != nil {
		resp.Warranty = &WarrantyResponse{
			Period:     r.Warranty.Period,
			ValidUntil: r.Warranty.ValidUntil,
			Coverage:   r.Warranty.Coverage,
		}
	}

	// Empty collections serialize as [] so list-driven admin views never see
	// null.
	resp.ChecklistIDs = append([]string{}, r.ChecklistIDs...)
	resp.History = make([]HistoryEntryResponse, 0, len(r.History))
	for _, h := range r.History {
		resp.History = append(resp.History, HistoryEntryResponse{
			Timestamp: h.Timestamp,
			Action:    h.Action,
			Status:    string(h.Status),
		})
	}
	resp.Messages = make([]MessageResponse, 0, len(r.Messages))
	for _, m := range r.Messages {
		resp.Messages = append(resp.Messages, MessageResponse{
			Type:    string(m.Type),
			Content: m.Content,
			SentAt:  m.SentAt,
		})
	}
	return resp
}

func FromRepairs(repairs []entities.Repair) []RepairResponse {
	out := make([]RepairResponse, 0, len(repairs))
	for _, r := range repairs {
		out = append(out, FromRepair(r))
	}
	return out
}
