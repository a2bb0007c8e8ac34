package auth

import (
	"os"
	"testing"
)

func TestBusinessTokenFlow(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret-key-12345")

	token, err := GenerateBusinessToken(42, "FSSAI-2024-00042")
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}

	subject, actor, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("Failed to validate token: %v", err)
	}

	if subject != "42" {
		t.Fatalf("Expected subject 42, got %s", subject)
	}

	if actor != ActorBusiness {
		t.Fatalf("Expected actor %s, got %s", ActorBusiness, actor)
	}
}

func TestConsumerTokenFlow(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret-key-12345")

	token, err := GenerateConsumerToken("consumer-1", "Asha")
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}

	subject, actor, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("Failed to validate token: %v", err)
	}

	if subject != "consumer-1" {
		t.Fatalf("Expected subject consumer-1, got %s", subject)
	}

	if actor != ActorConsumer {
		t.Fatalf("Expected actor %s, got %s", ActorConsumer, actor)
	}
}

func TestGenerateBusinessToken_InvalidID(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret-key-12345")

	if _, err := GenerateBusinessToken(0, "FSSAI-2024-00042"); err == nil {
		t.Fatal("expected error for invalid businessID")
	}
}

func TestValidateToken_Garbage(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret-key-12345")

	if _, _, err := ValidateToken("not-a-token"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}
