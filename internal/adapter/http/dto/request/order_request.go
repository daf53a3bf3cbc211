package request

import "encoding/json"

// EmitOrderRequest asks for pickup authorization on a repair. Payment, when
// present, is handed to the configured gateway as-is (Mercado Pago payload).
type EmitOrderRequest struct {
	Observations      string          `json:"observations"`
	EmittedBy         string          `json:"emitted_by"`
	CustomerReceived  bool            `json:"customer_received"`
	CustomerSignature string          `json:"customer_signature"`
	Payment           json.RawMessage `json:"payment,omitempty"`
}
