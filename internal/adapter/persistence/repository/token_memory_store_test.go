package repository

import (
	"context"
	"testing"
)

func TestMemoryTokenStore(t *testing.T) {
	ctx := context.Background()

	t.Run("consume is one-shot", func(t *testing.T) {
		store := NewMemoryTokenStore()
		if err := store.Create(ctx, "tok-1", "cust-1|customer"); err != nil {
			t.Fatalf("create: %v", err)
		}

		ok, err := store.Check(ctx, "tok-1")
		if err != nil || !ok {
			t.Fatalf("expected token to exist, ok=%v err=%v", ok, err)
		}

		subject, err := store.Consume(ctx, "tok-1")
		if err != nil {
			t.Fatalf("consume: %v", err)
		}
		if subject != "cust-1|customer" {
			t.Fatalf("unexpected subject %q", subject)
		}

		subject, err = store.Consume(ctx, "tok-1")
		if err != nil {
			t.Fatalf("second consume: %v", err)
		}
		if subject != "" {
			t.Fatalf("expected empty subject on reuse, got %q", subject)
		}
	})

	t.Run("check does not consume", func(t *testing.T) {
		store := NewMemoryTokenStore()
		if err := store.Create(ctx, "tok-2", "tp-1|tradesperson"); err != nil {
			t.Fatalf("create: %v", err)
		}
		for i := 0; i < 2; i++ {
			ok, err := store.Check(ctx, "tok-2")
			if err != nil || !ok {
				t.Fatalf("check %d: ok=%v err=%v", i, ok, err)
			}
		}
	})

	t.Run("unknown token", func(t *testing.T) {
		store := NewMemoryTokenStore()
		ok, err := store.Check(ctx, "missing")
		if err != nil || ok {
			t.Fatalf("expected missing token, ok=%v err=%v", ok, err)
		}
	})
}
