package admin

import (
	"fmt"
	"strings"
	"time"

	"expertbridge/models"
	"expertbridge/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Default back-office credentials, seeded on first login when no admin
// exists. Meant to be rotated immediately after the first deploy.
const (
	defaultAdminEmail    = "admin@expertbridge.com"
	defaultAdminPassword = "admin123"
)

// Login authenticates an admin and issues a bearer token. On a fresh
// deployment with no admin accounts at all, the default superadmin is seeded
// first so the system is never locked out of its own back office.
func (s *DefaultAdminService) Login(email, password string) (*AuthResponse, error) {
	if email == "" || password == "" {
		return nil, utils.ValidationError{Msg: "email and password required"}
	}
	email = strings.ToLower(strings.TrimSpace(email))

	account, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up admin: %w", err)
	}
	if account == nil && email == defaultAdminEmail {
		account, err = s.bootstrapDefaultAdmin()
		if err != nil {
			return nil, err
		}
	}
	if account == nil || !account.IsActive || !utils.CheckPassword(password, account.PasswordHash) {
		return nil, utils.AuthError{Msg: "invalid credentials"}
	}

	token, err := utils.GenerateToken(account.ID, account.Email, utils.RoleAdmin, utils.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate auth token: %w", err)
	}

	return &AuthResponse{ID: account.ID, Token: token, Admin: account}, nil
}

// GetByID fetches an admin account by id.
func (s *DefaultAdminService) GetByID(id string) (*models.Admin, error) {
	account, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}
	if account == nil {
		return nil, utils.NotFoundError{Msg: "admin not found"}
	}
	return account, nil
}

// bootstrapDefaultAdmin seeds the default superadmin. The unique email index
// makes the seed race-safe: a concurrent loser re-reads the winner's row.
func (s *DefaultAdminService) bootstrapDefaultAdmin() (*models.Admin, error) {
	hash, err := utils.HashPassword(defaultAdminPassword)
	if err != nil {
		return nil, err
	}
	account := &models.Admin{
		ID:           uuid.New().String(),
		Email:        defaultAdminEmail,
		PasswordHash: hash,
		FullName:     "Default Admin",
		Role:         "superadmin",
		IsActive:     true,
		CreatedAt:    time.Now(),
	}
	if err := s.Repo.Create(account); err != nil {
		existing, lookupErr := s.Repo.GetByEmail(defaultAdminEmail)
		if lookupErr == nil && existing != nil {
			return existing, nil
		}
		return nil, fmt.Errorf("failed to seed default admin: %w", err)
	}
	utils.GetLogger().Info("Seeded default admin account", zap.String("email", defaultAdminEmail))
	return account, nil
}
