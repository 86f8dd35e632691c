package payment

import (
	"context"

	"expertbridge/utils"

	"go.uber.org/zap"
)

// SimulatedGateway stands in when no real gateway is configured. It accepts
// every initiation and verifies every reference as paid, with both results
// clearly flagged as simulated.
type SimulatedGateway struct{}

func (g *SimulatedGateway) InitializeTransaction(ctx context.Context, email string, amount float64, currency, reference, callbackURL string, metadata map[string]string) (*InitializeResult, error) {
	utils.GetLogger().Info("Simulated payment initialized",
		zap.String("reference", reference),
		zap.Float64("amount", amount))
	return &InitializeResult{
		AuthorizationURL: callbackURL + "?reference=" + reference + "&simulated=true",
		Reference:        reference,
		Simulated:        true,
	}, nil
}

func (g *SimulatedGateway) VerifyTransaction(ctx context.Context, reference string) (*VerifyResult, error) {
	utils.GetLogger().Info("Simulated payment verified", zap.String("reference", reference))
	return &VerifyResult{
		Success:   true,
		Reference: reference,
		Simulated: true,
	}, nil
}
