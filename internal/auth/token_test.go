package auth

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestGenerateAndParse_Success(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("super-secret", "test", time.Hour)

	tok, err := tm.Generate("user-123", "a@x.com")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	claims, err := tm.Parse(tok)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if claims.UserID != "user-123" {
		t.Fatalf("userID mismatch: got %q want %q", claims.UserID, "user-123")
	}
	if claims.Email != "a@x.com" {
		t.Fatalf("email mismatch: got %q want %q", claims.Email, "a@x.com")
	}
}

func TestParse_Expired(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("secret", "test", -1*time.Second)

	tok, err := tm.Generate("u1", "u1@x.com")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	_, err = tm.Parse(tok)
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestParse_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer := NewTokenManager("right-secret", "test", time.Hour)
	verifier := NewTokenManager("wrong-secret", "test", time.Hour)

	tok, err := issuer.Generate("u2", "u2@x.com")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	if _, err := verifier.Parse(tok); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestParse_TamperedPayload(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("secret", "test", time.Hour)
	tok, err := tm.Generate("u3", "u3@x.com")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	parts := strings.Split(tok, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %q", tok)
	}
	tampered := parts[0] + ".eyJzdWIiOiJzb21lb25lLWVsc2UifQ." + parts[2]

	if _, err := tm.Parse(tampered); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for tampered token, got %v", err)
	}
}

func TestParse_MalformedString(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("k", "test", time.Hour)
	for _, input := range []string{"", "not.a.jwt", "garbage"} {
		if _, err := tm.Parse(input); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("Parse(%q): expected ErrInvalidToken, got %v", input, err)
		}
	}
}
