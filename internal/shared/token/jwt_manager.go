package token

import (
	"errors"
	"time"

	"github.com/fussballmanager/go-api-server/internal/config"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken  = errors.New("token: invalid token")
	ErrExpiredToken  = errors.New("token: expired token")
	ErrInvalidClaims = errors.New("token: invalid claims")
)

const (
	ACCESS  = "access"
	REFRESH = "refresh"
)

// Identity is what a token asserts about its holder
type Identity struct {
	UserID   string
	Email    string
	Roles    []string
	Team     *int
	MemberID *string
}

type Claims struct {
	UserID    string   `json:"user_id"`
	Email     string   `json:"email"`
	Roles     []string `json:"roles,omitempty"`
	Team      *int     `json:"team,omitempty"`
	MemberID  *string  `json:"member_id,omitempty"`
	TokenType string   `json:"token_type"`
	jwt.RegisteredClaims
}

// Identity extracts the holder identity from validated claims
func (c *Claims) Identity() Identity {
	return Identity{
		UserID:   c.UserID,
		Email:    c.Email,
		Roles:    c.Roles,
		Team:     c.Team,
		MemberID: c.MemberID,
	}
}

type Manager interface {
	GenerateAccessToken(identity Identity) (string, error)
	GenerateRefreshToken(identity Identity) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type JWTManager struct {
	secret        []byte
	issuer        string
	accessExpiry  time.Duration
	refreshExpiry time.Duration
	now           func() time.Time
}

func NewJWTManager(cfg *config.Config) *JWTManager {
	return &JWTManager{
		secret:        []byte(cfg.JWT.Secret),
		issuer:        cfg.App.Name,
		accessExpiry:  cfg.JWT.Expiry,
		refreshExpiry: cfg.JWT.RefreshExpiry,
		now:           time.Now,
	}
}

func (m *JWTManager) GenerateAccessToken(identity Identity) (string, error) {
	return m.sign(identity, ACCESS, m.accessExpiry)
}

func (m *JWTManager) GenerateRefreshToken(identity Identity) (string, error) {
	return m.sign(identity, REFRESH, m.refreshExpiry)
}

func (m *JWTManager) sign(identity Identity, tokenType string, expiry time.Duration) (string, error) {
	if identity.UserID == "" {
		return "", ErrInvalidClaims
	}

	now := m.now()
	claims := Claims{
		UserID:    identity.UserID,
		Email:     identity.Email,
		Roles:     identity.Roles,
		Team:      identity.Team,
		MemberID:  identity.MemberID,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.UserID,
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    m.issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// ValidateToken parses an access token; refresh tokens are rejected
func (m *JWTManager) ValidateToken(tokenString string) (*Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithIssuer(m.issuer),
		jwt.WithTimeFunc(m.now),
	)

	token, err := parser.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.UserID == "" || claims.TokenType != ACCESS {
		return nil, ErrInvalidClaims
	}

	return claims, nil
}
