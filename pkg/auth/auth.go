package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/pkg/errors"
)

const (
	RoleCustomer  = "customer"
	RoleLibrarian = "librarian"
	RoleRoot      = "root"
)

var ErrInvalidToken = errors.New("invalid token")

type Config struct {
	SigningKey string        `envconfig:"JWT_SIGNING_KEY" default:"supersecretkey"`
	TokenTTL   time.Duration `envconfig:"JWT_TOKEN_TTL" default:"1h"`
}

type Claims struct {
	Profile struct {
		Username   string `json:"username"`
		Role       string `json:"role"`
		CustomerID int    `json:"customerId"`
	} `json:"profile"`
	jwt.RegisteredClaims
}

// TokenManager issues and parses HS256 session tokens. The RegisteredClaims ID
// (jti) identifies a single live session per identity: re-login rotates the id
// stored on the customer record, which retires any previously issued token.
type TokenManager struct {
	signingKey []byte
	ttl        time.Duration
}

func NewTokenManager(cfg Config) *TokenManager {
	return &TokenManager{
		signingKey: []byte(cfg.SigningKey),
		ttl:        cfg.TokenTTL,
	}
}

func (m *TokenManager) TTL() time.Duration { return m.ttl }

func (m *TokenManager) Issue(username, role string, customerID int, tokenID string) (string, error) {
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	claims.Profile.Username = username
	claims.Profile.Role = role
	claims.Profile.CustomerID = customerID

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.signingKey)
}

func (m *TokenManager) Parse(tokenStr string) (*Claims, error) {
	claims := new(Claims)
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return m.signingKey, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.ExpiresAt == nil || time.Now().After(claims.ExpiresAt.Time) {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

type contextKey int

const identityKey contextKey = iota + 1

type Identity struct {
	Username   string
	Role       string
	CustomerID int
	TokenID    string
}

func (i Identity) IsStaff() bool {
	return i.Role == RoleLibrarian || i.Role == RoleRoot
}

func SetAuthContext(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

func FromContext(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityKey).(Identity)
	return identity, ok
}
