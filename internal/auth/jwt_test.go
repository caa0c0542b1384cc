package auth

import (
	"testing"

	"github.com/google/uuid"
)

func TestTokenRoundTrip(t *testing.T) {
	InitJWT("test-secret")

	userID := uuid.New()
	token, err := GenerateToken(userID, RoleModerator)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}

	if claims.UserID != userID.String() {
		t.Errorf("expected user id %s, got %s", userID, claims.UserID)
	}
	if claims.Role != RoleModerator {
		t.Errorf("expected moderator role, got %s", claims.Role)
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	InitJWT("test-secret")

	if _, err := ValidateToken("not-a-token"); err == nil {
		t.Error("expected error for malformed token")
	}

	// Token signed with a different secret must not validate
	InitJWT("other-secret")
	token, err := GenerateToken(uuid.New(), "")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}
	InitJWT("test-secret")
	if _, err := ValidateToken(token); err == nil {
		t.Error("expected error for token signed with wrong secret")
	}
}
