package response

import (
	"github.com/raisilvacor/clinicadomobile/internal/usecase"
)

type RiskScoreResponse struct {
	Score float64 `json:"score"`
	Level string  `json:"level"`
	Label string  `json:"label"`
}

// CPFSearchResponse is the admin search view: everything the shop knows
// about one customer CPF. Risk is omitted when the provider is unavailable;
// the search still works, just without the score.
type CPFSearchResponse struct {
	Repairs    []RepairResponse    `json:"repairs"`
	Orders     []OrderResponse     `json:"orders"`
	Checklists []ChecklistResponse `json:"checklists"`
	Risk       *RiskScoreResponse  `json:"risk,omitempty"`
}

func FromCPFSearch(result usecase.CPFSearchResult) CPFSearchResponse {
	resp := CPFSearchResponse{
		Repairs:    FromRepairs(result.Repairs),
		Orders:     FromOrders(result.Orders),
		Checklists: FromChecklists(result.Checklists),
	}
	if result.Risk != nil {
		resp.Risk = &RiskScoreResponse{
			Score: result.Risk.Score,
			Level: result.Risk.Level,
			Label: result.Risk.Label,
		}
	}
	return resp
}
