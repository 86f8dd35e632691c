package utils

// Token roles.
const (
	RoleProfessional = "professional"
	RoleAdmin        = "admin"
)

// DefaultRejectionReason is recorded when an admin rejects without one.
const DefaultRejectionReason = "Does not meet requirements"
