package auth

import (
	"testing"

	"github.com/Natemerkl/yegna-inventory-hub/internal/models"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestGenerateAndParseToken(t *testing.T) {
	profile := &models.Profile{
		ID:       "33333333-3333-3333-3333-333333333333",
		FullName: "Jane Doe",
		Email:    "jane@example.com",
	}

	token, err := GenerateToken(testSecret, profile)
	if err != nil {
		t.Fatalf("generate token failed: %v", err)
	}

	claims, err := ParseToken(testSecret, token)
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}

	if claims.ProfileID != profile.ID {
		t.Errorf("expected profile id %s, got %s", profile.ID, claims.ProfileID)
	}
	if claims.Email != profile.Email {
		t.Errorf("expected email %s, got %s", profile.Email, claims.Email)
	}
	if claims.FullName != profile.FullName {
		t.Errorf("expected full name %s, got %s", profile.FullName, claims.FullName)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	profile := &models.Profile{ID: "id", Email: "a@b.c"}

	token, err := GenerateToken(testSecret, profile)
	if err != nil {
		t.Fatalf("generate token failed: %v", err)
	}

	if _, err := ParseToken("another-secret-another-secret-ab", token); err == nil {
		t.Error("expected parse to fail with wrong secret")
	}
}

func TestParseToken_Garbage(t *testing.T) {
	if _, err := ParseToken(testSecret, "not-a-token"); err == nil {
		t.Error("expected parse to fail for garbage input")
	}
}
