package utils

import (
	"testing"
)

const testSecret = "super-secret"

func TestGenerateAndParseJWT_Success(t *testing.T) {
	t.Parallel()

	userID := "user-123"

	tok, err := GenerateJWT(userID, testSecret, 1)
	if err != nil {
		t.Fatalf("GenerateJWT error: %v", err)
	}

	got, err := ParseJWT(tok, testSecret)
	if err != nil {
		t.Fatalf("ParseJWT error: %v", err)
	}
	if got != userID {
		t.Fatalf("user id mismatch: got %q want %q", got, userID)
	}
}

func TestParseJWT_Expired(t *testing.T) {
	t.Parallel()

	tok, err := GenerateJWT("u1", testSecret, -1)
	if err != nil {
		t.Fatalf("GenerateJWT error: %v", err)
	}

	if _, err := ParseJWT(tok, testSecret); err == nil {
		t.Fatal("expected error for expired token, got nil")
	}
}

func TestParseJWT_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := GenerateJWT("u2", "right-secret", 1)
	if err != nil {
		t.Fatalf("GenerateJWT error: %v", err)
	}

	if _, err := ParseJWT(tok, "wrong-secret"); err == nil {
		t.Fatal("expected error for invalid signature, got nil")
	}
}

func TestParseJWT_MalformedString(t *testing.T) {
	t.Parallel()

	if _, err := ParseJWT("not.a.jwt", testSecret); err == nil {
		t.Fatal("expected error for malformed token, got nil")
	}
}
