package app

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/form3tech-oss/jwt-go"
)

// TokenService signs and checks the HS256 bearer tokens accepted by the HTTP
// API.
type TokenService struct {
	secret string
	issuer string
	ttl    time.Duration
}

const (
	TokenScopeAdvise   = "advise"
	TokenScopeSimulate = "simulate"
)

// ErrInvalidToken is returned by Verify for any token it does not accept.
var ErrInvalidToken = errors.New("invalid token")

// TokenClaims are the fields Verify extracts from an accepted token.
type TokenClaims struct {
	Subject string
	Scope   string
}

func NewTokenService(secret, issuer string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &TokenService{secret: secret, issuer: issuer, ttl: ttl}
}

// Enabled reports whether a signing secret is configured.
func (s *TokenService) Enabled() bool {
	return s != nil && s.secret != ""
}

func (s *TokenService) GenerateToken(subject, scope string) (string, error) {
	if s == nil {
		return "", fmt.Errorf("token service is nil")
	}
	if subject == "" {
		return "", fmt.Errorf("subject is required")
	}
	if s.secret == "" || s.issuer == "" {
		return "", fmt.Errorf("token config is incomplete")
	}
	if !validScope(scope) {
		return "", fmt.Errorf("unsupported token scope: %s", scope)
	}

	claims := jwt.MapClaims{
		"iss":   s.issuer,
		"sub":   subject,
		"exp":   time.Now().Add(s.ttl).Unix(),
		"jti":   fmt.Sprintf("%d-%d", time.Now().UnixNano(), rand.Int63()),
		"scope": scope,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}

// Verify parses tokenString and checks its signature, expiry, issuer and
// scope.
func (s *TokenService) Verify(tokenString string) (TokenClaims, error) {
	if !s.Enabled() {
		return TokenClaims{}, fmt.Errorf("%w: token service disabled", ErrInvalidToken)
	}
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secret), nil
	})
	if err != nil {
		return TokenClaims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return TokenClaims{}, ErrInvalidToken
	}
	if !claims.VerifyIssuer(s.issuer, true) {
		return TokenClaims{}, fmt.Errorf("%w: wrong issuer", ErrInvalidToken)
	}

	sub, _ := claims["sub"].(string)
	scope, _ := claims["scope"].(string)
	if sub == "" || !validScope(scope) {
		return TokenClaims{}, fmt.Errorf("%w: missing subject or scope", ErrInvalidToken)
	}
	return TokenClaims{Subject: sub, Scope: scope}, nil
}

func validScope(scope string) bool {
	switch scope {
	case TokenScopeAdvise, TokenScopeSimulate:
		return true
	}
	return false
}
