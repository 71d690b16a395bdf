package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestGenerateAndVerifyToken(t *testing.T) {
	maker := NewJWTMaker(testSecret)
	userID := uuid.New()

	token, claims, err := maker.GenerateToken(userID, "dev@example.com", time.Minute)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if token == "" {
		t.Fatal("empty token")
	}
	if claims.UserID != userID || claims.Email != "dev@example.com" {
		t.Fatalf("unexpected claims: %+v", claims)
	}

	verified, err := maker.VerifyToken(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if verified.UserID != userID {
		t.Errorf("user id = %s, want %s", verified.UserID, userID)
	}
	if verified.SessionID != claims.SessionID {
		t.Errorf("session id mismatch: %s vs %s", verified.SessionID, claims.SessionID)
	}
}

func TestVerifyTokenWrongKey(t *testing.T) {
	token, _, err := NewJWTMaker(testSecret).GenerateToken(uuid.New(), "dev@example.com", time.Minute)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := NewJWTMaker("another-secret-another-secret-32").VerifyToken(token); err == nil {
		t.Fatal("expected verification to fail with a different key")
	}
}

func TestVerifyTokenExpired(t *testing.T) {
	token, _, err := NewJWTMaker(testSecret).GenerateToken(uuid.New(), "dev@example.com", -time.Minute)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := NewJWTMaker(testSecret).VerifyToken(token); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestVerifyTokenGarbage(t *testing.T) {
	if _, err := NewJWTMaker(testSecret).VerifyToken("not.a.token"); err == nil {
		t.Fatal("expected parse failure")
	}
}
