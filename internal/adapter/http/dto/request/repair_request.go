package request

import (
	"strings"

	"github.com/raisilvacor/clinicadomobile/internal/usecase"
)

// CreateRepairRequest is the intake payload. Field names follow the admin
// form the shop already uses; budget fields are optional and a positive
// amount creates the repair pre-quoted.
type CreateRepairRequest struct {
	DeviceName         string `json:"device_name" binding:"required"`
	DeviceModel        string `json:"device_model"`
	DeviceIMEI         string `json:"device_imei"`
	ProblemDescription string `json:"problem_description"`

	CustomerName    string `json:"customer_name" binding:"required"`
	CustomerPhone   string `json:"customer_phone"`
	CustomerCPF     string `json:"customer_cpf"`
	CustomerAddress string `json:"customer_address"`
	CustomerEmail   string `json:"customer_email"`

	BudgetAmount      float64 `json:"budget_amount"`
	BudgetDescription string  `json:"budget_description"`
}

func (r CreateRepairRequest) Device() usecase.DeviceInfo {
	return usecase.DeviceInfo{
		Name:               strings.TrimSpace(r.DeviceName),
		Model:              strings.TrimSpace(r.DeviceModel),
		IMEI:               strings.TrimSpace(r.DeviceIMEI),
		ProblemDescription: strings.TrimSpace(r.ProblemDescription),
	}
}

func (r CreateRepairRequest) Customer() usecase.CustomerInfo {
	return usecase.CustomerInfo{
		Name:    strings.TrimSpace(r.CustomerName),
		Phone:   strings.TrimSpace(r.CustomerPhone),
		CPF:     strings.TrimSpace(r.CustomerCPF),
		Address: strings.TrimSpace(r.CustomerAddress),
		Email:   strings.TrimSpace(r.CustomerEmail),
	}
}

// Budget returns nil when no initial budget was supplied. A zero amount
// means "no quote yet", not a free repair.
func (r CreateRepairRequest) Budget() *usecase.InitialBudget {
	if r.BudgetAmount == 0 && strings.TrimSpace(r.BudgetDescription) == "" {
		return nil
	}
	return &usecase.InitialBudget{
		Amount:      r.BudgetAmount,
		Description: strings.TrimSpace(r.BudgetDescription),
	}
}

// UpdateRepairRequest replaces the editable device and customer fields.
type UpdateRepairRequest struct {
	DeviceName         string `json:"device_name" binding:"required"`
	DeviceModel        string `json:"device_model"`
	DeviceIMEI         string `json:"device_imei"`
	ProblemDescription string `json:"problem_description"`

	CustomerName    string `json:"customer_name" binding:"required"`
	CustomerPhone   string `json:"customer_phone"`
	CustomerCPF     string `json:"customer_cpf"`
	CustomerAddress string `json:"customer_address"`
	CustomerEmail   string `json:"customer_email"`
}

func (r UpdateRepairRequest) Device() usecase.DeviceInfo {
	return CreateRepairRequest{
		DeviceName:         r.DeviceName,
		DeviceModel:        r.DeviceModel,
		DeviceIMEI:         r.DeviceIMEI,
		ProblemDescription: r.ProblemDescription,
	}.Device()
}

func (r UpdateRepairRequest) Customer() usecase.CustomerInfo {
	return CreateRepairRequest{
		CustomerName:    r.CustomerName,
		CustomerPhone:   r.CustomerPhone,
		CustomerCPF:     r.CustomerCPF,
		CustomerAddress: r.CustomerAddress,
		CustomerEmail:   r.CustomerEmail,
	}.Customer()
}

// SetStatusRequest moves a repair to a new board column. Actor is optional
// and only feeds history wording.
type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Actor  string `json:"actor"`
}

// BudgetDecisionRequest carries who approved or rejected. Empty means the
// decision was taken at the counter by the admin.
type BudgetDecisionRequest struct {
	Actor string `json:"actor"`
}

// RecordMessageRequest appends a customer-facing notice.
type RecordMessageRequest struct {
	Type    string `json:"type"`
	Content string `json:"content" binding:"required"`
}
