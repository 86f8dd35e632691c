package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGenerateAndVerifyToken(t *testing.T) {
	token, err := GenerateToken("prof-1", "jane@example.com", RoleProfessional, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := VerifyToken(token)
	require.NoError(t, err)
	require.Equal(t, "prof-1", claims.SubjectID)
	require.Equal(t, "jane@example.com", claims.Email)
	require.Equal(t, RoleProfessional, claims.Role)
}

func TestVerifyTokenRejectsExpired(t *testing.T) {
	token, err := GenerateToken("prof-1", "jane@example.com", RoleProfessional, -time.Hour)
	require.NoError(t, err)

	_, err = VerifyToken(token)
	require.Error(t, err)
	require.EqualError(t, err, "invalid token")
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		_, err := VerifyToken(tok)
		require.Error(t, err)
		require.EqualError(t, err, "invalid token")
	}
}

func TestVerifyTokenRejectsTampered(t *testing.T) {
	token, err := GenerateToken("prof-1", "jane@example.com", RoleProfessional, time.Hour)
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = VerifyToken(tampered)
	require.Error(t, err)
}
