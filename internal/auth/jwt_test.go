package auth

import (
	"testing"
	"time"

	"property-listings-api/internal/models"
)

func testUser() *models.User {
	return &models.User{
		ID:    42,
		Email: "agent@example.com",
		Role:  models.RoleAgent,
	}
}

func TestTokenRoundTrip(t *testing.T) {
	manager := NewTokenManager("test-secret", time.Hour, 24*time.Hour)

	token, err := manager.GenerateToken(testUser())
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := manager.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Email != "agent@example.com" {
		t.Errorf("Email = %q", claims.Email)
	}
	if claims.Role != string(models.RoleAgent) {
		t.Errorf("Role = %q", claims.Role)
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	signer := NewTokenManager("secret-a", time.Hour, 24*time.Hour)
	verifier := NewTokenManager("secret-b", time.Hour, 24*time.Hour)

	token, err := signer.GenerateToken(testUser())
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := verifier.ValidateToken(token); err == nil {
		t.Error("token signed with another secret should not validate")
	}
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	manager := NewTokenManager("test-secret", time.Hour, 24*time.Hour)
	manager.accessTTL = -time.Minute

	token, err := manager.GenerateToken(testUser())
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := manager.ValidateToken(token); err == nil {
		t.Error("expired token should not validate")
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	manager := NewTokenManager("test-secret", time.Hour, 24*time.Hour)

	for _, raw := range []string{"", "not-a-token", "aaa.bbb.ccc"} {
		if _, err := manager.ValidateToken(raw); err == nil {
			t.Errorf("ValidateToken(%q) should fail", raw)
		}
	}
}

func TestZeroTTLFallsBackToDefaults(t *testing.T) {
	manager := NewTokenManager("test-secret", 0, 0)

	if manager.AccessTTL() != 24*time.Hour {
		t.Errorf("AccessTTL = %v, want 24h", manager.AccessTTL())
	}
	if manager.refreshTTL != 7*24*time.Hour {
		t.Errorf("refreshTTL = %v, want 168h", manager.refreshTTL)
	}
}
