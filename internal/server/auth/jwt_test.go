package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/acquisitions/internal/common"
)

func TestIssueAndVerify_Success(t *testing.T) {
	t.Parallel()

	issuer := NewTokenIssuer([]byte("super-secret"), time.Hour)

	tok, err := issuer.Issue("user-123", "a@x.com", "admin")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	claims, err := issuer.Verify(tok)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if claims.UserID != "user-123" || claims.Email != "a@x.com" || claims.Role != "admin" {
		t.Fatalf("claims mismatch: %+v", claims)
	}
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	issuer := NewTokenIssuer([]byte("secret"), -1*time.Second)

	tok, err := issuer.Issue("u1", "u1@x.com", "user")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = issuer.Verify(tok)
	if !errors.Is(err, common.ErrTokenExpired) {
		t.Fatalf("expected common.ErrTokenExpired, got %v", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewTokenIssuer([]byte("right-secret"), time.Hour).Issue("u2", "u2@x.com", "user")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = NewTokenIssuer([]byte("wrong-secret"), time.Hour).Verify(tok)
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken, got %v", err)
	}
}

func TestVerify_Tampered(t *testing.T) {
	t.Parallel()

	issuer := NewTokenIssuer([]byte("secret"), time.Hour)
	tok, err := issuer.Issue("u3", "u3@x.com", "user")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	tampered := tok[:len(tok)-2] + "xx"
	if _, err := issuer.Verify(tampered); !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken, got %v", err)
	}
}

func TestVerify_MalformedString(t *testing.T) {
	t.Parallel()

	issuer := NewTokenIssuer([]byte("k"), time.Hour)
	if _, err := issuer.Verify("not.a.jwt"); !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken, got %v", err)
	}
}

func TestIssue_EmptySecret(t *testing.T) {
	t.Parallel()

	issuer := NewTokenIssuer(nil, time.Hour)
	if _, err := issuer.Issue("u4", "u4@x.com", "user"); !errors.Is(err, common.ErrSigning) {
		t.Fatalf("expected common.ErrSigning, got %v", err)
	}
}

func TestValiditySeconds(t *testing.T) {
	t.Parallel()

	issuer := NewTokenIssuer([]byte("k"), 24*time.Hour)
	if got := issuer.ValiditySeconds(); got != 86400 {
		t.Fatalf("ValiditySeconds() = %d, want 86400", got)
	}
}
