package utils

import (
	"errors"
	"os"
	"time"

	"expertbridge/config"

	"github.com/golang-jwt/jwt"
)

// TokenTTL is how long issued bearer tokens stay valid.
const TokenTTL = 7 * 24 * time.Hour

// TokenClaims carries the identity asserted by a verified token.
type TokenClaims struct {
	SubjectID string
	Email     string
	Role      string
}

func secretKey() []byte {
	secret := config.AppConfig.JWTSecret
	if secret == "" {
		secret = os.Getenv("JWT_SECRET")
	}
	if secret == "" {
		secret = "expertbridge-secret-key-2024"
	}
	return []byte(secret)
}

// GenerateToken creates a signed JWT asserting the subject's identity and role.
func GenerateToken(subjectID, email, role string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":   subjectID,
		"email": email,
		"role":  role,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// VerifyToken parses and validates a token string. Malformed, expired and
// badly signed tokens all surface as the same generic error.
func VerifyToken(tokenString string) (*TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token")
	}
	sub, _ := claims["sub"].(string)
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)
	if sub == "" || role == "" {
		return nil, errors.New("invalid token")
	}

	return &TokenClaims{SubjectID: sub, Email: email, Role: role}, nil
}
