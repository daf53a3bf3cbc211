package interfaces

import (
	"context"
	"encoding/json"
)

// IPaymentGateway abstracts the payment provider used for pickup charges.
//
// The gateway receives the provider-specific payload as-is and returns the
// provider's payment id and status plus the raw response for audit.

type IPaymentGateway interface {
	CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
}
