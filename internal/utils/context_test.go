// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Grustnolabs

package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestCallerEmailCtxKey(t *testing.T) {
	if CallerEmailCtxKey.String() != "callerEmail" {
		t.Errorf("expected 'callerEmail', got '%s'", CallerEmailCtxKey.String())
	}
}

func TestGetCallerEmailFromContext_Success(t *testing.T) {
	ctx := context.WithValue(context.Background(), CallerEmailCtxKey, "sad@example.com")

	email, ok := GetCallerEmailFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if email != "sad@example.com" {
		t.Errorf("expected email='sad@example.com', got '%s'", email)
	}
}

func TestGetCallerEmailFromContext_Missing(t *testing.T) {
	ctx := context.Background()

	email, ok := GetCallerEmailFromContext(ctx)

	if ok {
		t.Fatal("expected ok=false, got true")
	}
	if email != "" {
		t.Errorf("expected empty email, got '%s'", email)
	}
}

func TestGetCallerEmailFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), CallerEmailCtxKey, 42)

	email, ok := GetCallerEmailFromContext(ctx)

	if ok {
		t.Fatal("expected ok=false for wrong type, got true")
	}
	if email != "" {
		t.Errorf("expected empty email, got '%s'", email)
	}
}

func TestGetCallerEmailFromContext_EmptyValue(t *testing.T) {
	ctx := context.WithValue(context.Background(), CallerEmailCtxKey, "")

	email, ok := GetCallerEmailFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true for empty string value, got false")
	}
	if email != "" {
		t.Errorf("expected empty email, got '%s'", email)
	}
}

func TestGetCallerEmailFromContext_DifferentKey(t *testing.T) {
	otherKey := contextKey("otherKey")
	ctx := context.WithValue(context.Background(), otherKey, "other@example.com")

	email, ok := GetCallerEmailFromContext(ctx)

	if ok {
		t.Fatal("expected ok=false for different key, got true")
	}
	if email != "" {
		t.Errorf("expected empty email, got '%s'", email)
	}
}
