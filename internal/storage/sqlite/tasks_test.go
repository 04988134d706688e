package sqlite

import (
	"context"
	"testing"
)

func TestUserTasksProgress(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	tasks, err := store.GetUserTasks(ctx, 1)
	if err != nil {
		t.Fatalf("get tasks: %v", err)
	}
	if tasks.InvitedCount != 0 || tasks.RewardClaimed {
		t.Errorf("new user tasks not zero-valued: %+v", tasks)
	}

	for i := 0; i < 3; i++ {
		if err := store.IncrementInvites(ctx, 1); err != nil {
			t.Fatalf("increment invites: %v", err)
		}
	}
	if err := store.MarkTaskSubmitted(ctx, 1, 2); err != nil {
		t.Fatalf("mark task 2: %v", err)
	}
	if err := store.MarkTaskSubmitted(ctx, 1, 3); err != nil {
		t.Fatalf("mark task 3: %v", err)
	}
	if err := store.ClaimReward(ctx, 1); err != nil {
		t.Fatalf("claim reward: %v", err)
	}

	tasks, err = store.GetUserTasks(ctx, 1)
	if err != nil {
		t.Fatalf("get tasks: %v", err)
	}
	if tasks.InvitedCount != 3 || !tasks.Task2Submitted || !tasks.Task3Submitted || !tasks.RewardClaimed {
		t.Errorf("unexpected progress: %+v", tasks)
	}
}

func TestMarkTaskSubmittedRejectsUnknownTask(t *testing.T) {
	store := newTestStore(t)

	if err := store.MarkTaskSubmitted(context.Background(), 1, 9); err == nil {
		t.Error("expected error for unknown task number")
	}
}

func TestTrackedWallet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	addr, err := store.TrackedWallet(ctx, 1)
	if err != nil {
		t.Fatalf("get wallet: %v", err)
	}
	if addr != "" {
		t.Errorf("got %q, want empty before set", addr)
	}

	if err := store.SetTrackedWallet(ctx, 1, "0xabc"); err != nil {
		t.Fatalf("set wallet: %v", err)
	}
	// Re-tracking replaces the address.
	if err := store.SetTrackedWallet(ctx, 1, "0xdef"); err != nil {
		t.Fatalf("replace wallet: %v", err)
	}

	addr, err = store.TrackedWallet(ctx, 1)
	if err != nil {
		t.Fatalf("get wallet: %v", err)
	}
	if addr != "0xdef" {
		t.Errorf("got %q, want %q", addr, "0xdef")
	}
}
