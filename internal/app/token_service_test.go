package app

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/form3tech-oss/jwt-go"
)

func TestTokenServiceGenerateToken(t *testing.T) {
	secret := "test-secret"
	svc := NewTokenService(secret, "mahjong", time.Minute)

	tokenString, err := svc.GenerateToken("user123", TokenScopeAdvise)
	if err != nil {
		t.Fatalf("generate token error: %v", err)
	}

	claims := parseClaims(t, tokenString, secret)
	if got := stringClaim(t, claims, "sub"); got != "user123" {
		t.Fatalf("sub = %s, want user123", got)
	}
	if got := stringClaim(t, claims, "iss"); got != "mahjong" {
		t.Fatalf("iss = %s, want mahjong", got)
	}
	if got := stringClaim(t, claims, "scope"); got != TokenScopeAdvise {
		t.Fatalf("scope = %s, want %s", got, TokenScopeAdvise)
	}
}

func TestTokenServiceVerifyRoundTrip(t *testing.T) {
	svc := NewTokenService("secret", "mahjong", time.Minute)
	tok, err := svc.GenerateToken("bot-1", TokenScopeSimulate)
	if err != nil {
		t.Fatalf("generate token error: %v", err)
	}
	claims, err := svc.Verify(tok)
	if err != nil {
		t.Fatalf("verify error: %v", err)
	}
	if claims.Subject != "bot-1" || claims.Scope != TokenScopeSimulate {
		t.Fatalf("claims = %+v", claims)
	}
}

func TestTokenServiceVerifyRejects(t *testing.T) {
	svc := NewTokenService("secret", "mahjong", time.Minute)
	other := NewTokenService("other-secret", "mahjong", time.Minute)
	wrongIssuer := NewTokenService("secret", "someone-else", time.Minute)

	foreign, _ := other.GenerateToken("u", TokenScopeAdvise)
	misissued, _ := wrongIssuer.GenerateToken("u", TokenScopeAdvise)
	expired, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iss": "mahjong", "sub": "u", "scope": TokenScopeAdvise, "exp": time.Now().Add(-time.Hour).Unix(),
	}).SignedString([]byte("secret"))

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-token"},
		{"wrong secret", foreign},
		{"wrong issuer", misissued},
		{"expired", expired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Verify(tt.token); !errors.Is(err, ErrInvalidToken) {
				t.Fatalf("err = %v, want ErrInvalidToken", err)
			}
		})
	}
}

func TestTokenServiceGenerateTokenRejectsUnknownScope(t *testing.T) {
	svc := NewTokenService("secret", "mahjong", 0)
	if _, err := svc.GenerateToken("user", "admin"); err == nil {
		t.Fatal("expected error for unsupported scope")
	}
}

func TestTokenServiceGenerateTokenRequiresConfig(t *testing.T) {
	svc := NewTokenService("", "mahjong", 0)
	if svc.Enabled() {
		t.Fatal("service without secret should be disabled")
	}
	if _, err := svc.GenerateToken("user", TokenScopeAdvise); err == nil {
		t.Fatal("expected error for missing secret")
	}
}

func parseClaims(t *testing.T, tokenString, secret string) jwt.MapClaims {
	t.Helper()

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		t.Fatalf("parse token error: %v", err)
	}
	if !token.Valid {
		t.Fatal("token is invalid")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatal("claims are not map claims")
	}
	return claims
}

func stringClaim(t *testing.T, claims jwt.MapClaims, name string) string {
	t.Helper()
	value, ok := claims[name]
	if !ok {
		t.Fatalf("missing %s claim", name)
	}
	str, ok := value.(string)
	if !ok {
		t.Fatalf("%s claim is not a string", name)
	}
	return str
}
