package professional

import (
	"fmt"
	"strings"

	"expertbridge/utils"
)

// Authenticate verifies a professional's credentials and issues a bearer
// token. Unknown emails and wrong passwords are indistinguishable to the
// caller.
func (s *DefaultProfessionalService) Authenticate(email, password string) (*AuthResponse, error) {
	if email == "" || password == "" {
		return nil, utils.ValidationError{Msg: "email and password required"}
	}

	professional, err := s.Repo.GetByEmailWithProjection(strings.ToLower(strings.TrimSpace(email)), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to look up professional: %w", err)
	}
	if professional == nil || !utils.CheckPassword(password, professional.PasswordHash) {
		return nil, utils.AuthError{Msg: "invalid credentials"}
	}

	token, err := utils.GenerateToken(professional.ID, professional.Email, utils.RoleProfessional, utils.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate auth token: %w", err)
	}

	professional.PasswordHash = ""
	return &AuthResponse{
		ID:           professional.ID,
		Token:        token,
		Professional: professional,
	}, nil
}
