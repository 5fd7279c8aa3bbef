// internal/services/auth_service.go
package services

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/jyotsnadesigns/storefront-backend/internal/config"
	"github.com/jyotsnadesigns/storefront-backend/internal/utils"
)

var (
	ErrWrongPassword = errors.New("incorrect password")
	ErrAreaDisabled  = errors.New("this admin area has no password configured")
)

// AuthService exchanges an area password for a capability token. The
// product-management and orders dashboards each have their own secret
// and their tokens are not interchangeable.
type AuthService struct {
	config *config.Config
}

type LoginResult struct {
	Token     string `json:"token"`
	Area      string `json:"area"`
	ExpiresIn int    `json:"expires_in"` // seconds
}

func NewAuthService(cfg *config.Config) *AuthService {
	return &AuthService{config: cfg}
}

func (s *AuthService) Login(area, password string) (*LoginResult, error) {
	var secret string
	switch area {
	case utils.AreaProducts:
		secret = s.config.Admin.ProductsPassword
	case utils.AreaOrders:
		secret = s.config.Admin.OrdersPassword
	default:
		return nil, fmt.Errorf("unknown admin area %q", area)
	}

	if secret == "" {
		return nil, ErrAreaDisabled
	}

	if !checkSecret(secret, password) {
		return nil, ErrWrongPassword
	}

	token, err := utils.GenerateAdminToken(area, s.config.Admin.SessionTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &LoginResult{
		Token:     token,
		Area:      area,
		ExpiresIn: s.config.Admin.SessionTTL * 3600,
	}, nil
}

// checkSecret accepts either a bcrypt hash or a plaintext secret in the
// configuration. Plaintext comparison is constant-time.
func checkSecret(secret, password string) bool {
	if strings.HasPrefix(secret, "$2a$") || strings.HasPrefix(secret, "$2b$") || strings.HasPrefix(secret, "$2y$") {
		return bcrypt.CompareHashAndPassword([]byte(secret), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(secret), []byte(password)) == 1
}
