package sqlite

import (
	"context"
	"testing"
)

func TestGetUserPlanDefaultsToFree(t *testing.T) {
	store := newTestStore(t)

	plan, err := store.GetUserPlan(context.Background(), 999)
	if err != nil {
		t.Fatalf("get plan: %v", err)
	}
	if plan != "free" {
		t.Errorf("got %q, want %q", plan, "free")
	}
}

func TestSetUserPlan(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.SetUserPlan(ctx, 1, "pro", "2026-12-31T00:00:00Z"); err != nil {
		t.Fatalf("set plan: %v", err)
	}
	plan, err := store.GetUserPlan(ctx, 1)
	if err != nil {
		t.Fatalf("get plan: %v", err)
	}
	if plan != "pro" {
		t.Errorf("got %q, want %q", plan, "pro")
	}
	u, err := store.GetUser(ctx, 1)
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if u.ExpiryDate != "2026-12-31T00:00:00Z" {
		t.Errorf("expiry = %q, want set", u.ExpiryDate)
	}

	// Permanent plan clears the expiry.
	if err := store.SetUserPlan(ctx, 1, "pro", ""); err != nil {
		t.Fatalf("set permanent plan: %v", err)
	}
	u, err = store.GetUser(ctx, 1)
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if u.ExpiryDate != "" {
		t.Errorf("expiry = %q, want cleared", u.ExpiryDate)
	}
}

func TestUpsertUserKeepsPlan(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.SetUserPlan(ctx, 7, "pro", ""); err != nil {
		t.Fatalf("set plan: %v", err)
	}
	if err := store.UpsertUser(ctx, 7, "satoshi"); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	u, err := store.GetUser(ctx, 7)
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if u.Username != "satoshi" {
		t.Errorf("username = %q, want %q", u.Username, "satoshi")
	}
	if u.Plan != "pro" {
		t.Errorf("plan = %q, upsert must not reset it", u.Plan)
	}
}

func TestSetAutoDeleteMinutes(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.SetAutoDeleteMinutes(ctx, 5, 30); err != nil {
		t.Fatalf("set auto delete: %v", err)
	}
	u, err := store.GetUser(ctx, 5)
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if u == nil || u.AutoDeleteMinutes != 30 {
		t.Errorf("auto_delete_minutes not stored: %+v", u)
	}
}

func TestGetUserUnknownReturnsNil(t *testing.T) {
	store := newTestStore(t)

	u, err := store.GetUser(context.Background(), 404)
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if u != nil {
		t.Errorf("got %+v, want nil for unknown user", u)
	}
}
