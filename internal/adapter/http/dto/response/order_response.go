package response

import (
	"fmt"
	"time"

	"github.com/raisilvacor/clinicadomobile/internal/domain/entities"
)

type OrderResponse struct {
	ID       string `json:"id"`
	RepairID string `json:"repair_id"`

	EmittedAt time.Time `json:"emitted_at"`
	EmittedBy string    `json:"emitted_by,omitempty"`

	Observations      string `json:"observations"`
	CustomerReceived  bool   `json:"customer_received"`
	CustomerSignature string `json:"customer_signature,omitempty"`

	PaymentID     string `json:"payment_id,omitempty"`
	PaymentStatus string `json:"payment_status,omitempty"`

	// Contractual clause printed on the pickup document.
	StorageFeeNotice string `json:"storage_fee_notice"`
}

func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{
		ID:                o.ID,
		RepairID:          o.RepairID,
		EmittedAt:         o.EmittedAt,
		EmittedBy:         o.EmittedBy,
		Observations:      o.Observations,
		CustomerReceived:  o.CustomerReceived,
		CustomerSignature: o.CustomerSignature,
		PaymentID:         o.PaymentID,
		PaymentStatus:     o.PaymentStatus,
		StorageFeeNotice: fmt.Sprintf(
			"Aparelhos não retirados em até %d dias após a emissão estão sujeitos a taxa de armazenamento.",
			entities.StorageFeeClauseDays,
		),
	}
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}
