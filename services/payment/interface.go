package payment

import "context"

// InitializeResult is what a gateway returns for a new transaction. When the
// gateway is unconfigured the result is flagged Simulated and carries no real
// checkout URL.
type InitializeResult struct {
	AuthorizationURL string `json:"authorizationUrl"`
	Reference        string `json:"reference"`
	Simulated        bool   `json:"simulated"`
}

// VerifyResult reports the outcome of a payment lookup by reference.
type VerifyResult struct {
	Success   bool              `json:"success"`
	Reference string            `json:"reference"`
	Metadata  map[string]string `json:"metadata,omitempty"`
	Simulated bool              `json:"simulated"`
}

// Gateway is the payment-initiation and verification collaborator. Reference
// is the caller-generated idempotency key correlating both calls.
type Gateway interface {
	InitializeTransaction(ctx context.Context, email string, amount float64, currency, reference, callbackURL string, metadata map[string]string) (*InitializeResult, error)
	VerifyTransaction(ctx context.Context, reference string) (*VerifyResult, error)
}
