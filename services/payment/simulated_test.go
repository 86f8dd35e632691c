package payment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewGatewayFallsBackToSimulated(t *testing.T) {
	gateway := NewGateway("")
	_, ok := gateway.(*SimulatedGateway)
	require.True(t, ok)

	gateway = NewGateway("sk_test_123")
	_, ok = gateway.(*SimulatedGateway)
	require.False(t, ok)
}

func TestSimulatedGatewayAlwaysSucceeds(t *testing.T) {
	gateway := &SimulatedGateway{}
	ctx := context.Background()

	init, err := gateway.InitializeTransaction(ctx, "jane@example.com", 2500, "KES", "ref-1", "https://app.example.com/cb", nil)
	require.NoError(t, err)
	require.True(t, init.Simulated)
	require.Equal(t, "ref-1", init.Reference)
	require.Contains(t, init.AuthorizationURL, "ref-1")

	verify, err := gateway.VerifyTransaction(ctx, "ref-1")
	require.NoError(t, err)
	require.True(t, verify.Success)
	require.True(t, verify.Simulated)
}
