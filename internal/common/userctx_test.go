package common

import (
	"context"
	"testing"
)

func TestUserContext_RoundTrip(t *testing.T) {
	ctx := context.Background()

	if uc := UserContextFromContext(ctx); uc != nil {
		t.Error("Expected nil UserContext from empty context")
	}

	ctx = WithUserContext(ctx, &UserContext{UserID: "editor", Role: "admin"})

	got := UserContextFromContext(ctx)
	if got == nil {
		t.Fatal("Expected non-nil UserContext")
	}
	if got.UserID != "editor" {
		t.Errorf("Expected editor, got %s", got.UserID)
	}
	if got.Role != "admin" {
		t.Errorf("Expected admin, got %s", got.Role)
	}
}

func TestCorrelationID_RoundTrip(t *testing.T) {
	ctx := context.Background()
	if id := CorrelationIDFromContext(ctx); id != "" {
		t.Errorf("Expected empty correlation id, got %q", id)
	}

	ctx = WithCorrelationID(ctx, "abc12345")
	if id := CorrelationIDFromContext(ctx); id != "abc12345" {
		t.Errorf("Expected abc12345, got %q", id)
	}
}
