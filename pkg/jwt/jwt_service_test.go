package jwt

import (
	"testing"

	"github.com/google/uuid"
)

func TestHouseholdTokenRoundTrip(t *testing.T) {
	service := NewJWTService()
	householdID := uuid.New().String()

	token := service.GenerateTokenHousehold(householdID)
	if token == "" {
		t.Fatal("GenerateTokenHousehold() returned empty token")
	}

	got, err := service.GetHouseholdIDByToken(token)
	if err != nil {
		t.Fatalf("GetHouseholdIDByToken() unexpected error: %v", err)
	}
	if got != householdID {
		t.Errorf("household_id = %q, want %q", got, householdID)
	}
}

func TestGetHouseholdIDByToken_Garbage(t *testing.T) {
	service := NewJWTService()

	if _, err := service.GetHouseholdIDByToken("not.a.token"); err == nil {
		t.Error("expected error for malformed token")
	}
}
