package testutil

import (
	"github.com/fussballmanager/go-api-server/internal/shared/token"
)

// MockTokenManager is a token.Manager whose behaviour is set per test
type MockTokenManager struct {
	GenerateAccessTokenFunc  func(identity token.Identity) (string, error)
	GenerateRefreshTokenFunc func(identity token.Identity) (string, error)
	ValidateTokenFunc        func(tokenString string) (*token.Claims, error)
}

func (m *MockTokenManager) GenerateAccessToken(identity token.Identity) (string, error) {
	if m.GenerateAccessTokenFunc != nil {
		return m.GenerateAccessTokenFunc(identity)
	}
	return "mock-access-token", nil
}

func (m *MockTokenManager) GenerateRefreshToken(identity token.Identity) (string, error) {
	if m.GenerateRefreshTokenFunc != nil {
		return m.GenerateRefreshTokenFunc(identity)
	}
	return "mock-refresh-token", nil
}

func (m *MockTokenManager) ValidateToken(tokenString string) (*token.Claims, error) {
	if m.ValidateTokenFunc != nil {
		return m.ValidateTokenFunc(tokenString)
	}
	return nil, token.ErrInvalidToken
}

var _ token.Manager = (*MockTokenManager)(nil)

func NewMockTokenManager() *MockTokenManager {
	return &MockTokenManager{}
}
