package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Aouidate/CartoonBuilder/pkg/molecule"
)

func TestMemoryStoreLifecycle(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	sess := New(molecule.New(), DefaultTTL)
	if sess.ID == "" {
		t.Fatal("New() produced an empty session ID")
	}
	if err := store.Set(ctx, sess); err != nil {
		t.Fatal(err)
	}

	got, err := store.Get(ctx, sess.ID)
	if err != nil {
		t.Fatal(err)
	}
	b, err := got.Builder()
	if err != nil {
		t.Fatal(err)
	}
	if b.Molecule.Scaffold().Name != "QA" {
		t.Errorf("restored scaffold = %+v, want default QA", b.Molecule.Scaffold())
	}

	if err := store.Delete(ctx, sess.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := store.Get(ctx, sess.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() after Delete() error = %v, want ErrNotFound", err)
	}
}

func TestMemoryStoreMissing(t *testing.T) {
	store := NewMemoryStore()
	if _, err := store.Get(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(missing) error = %v, want ErrNotFound", err)
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	sess := New(molecule.New(), time.Millisecond)
	sess.ExpiresAt = time.Now().Add(-time.Second)
	if err := store.Set(ctx, sess); err != nil {
		t.Fatal(err)
	}

	if _, err := store.Get(ctx, sess.ID); !errors.Is(err, ErrExpired) {
		t.Errorf("Get(expired) error = %v, want ErrExpired", err)
	}

	if err := store.Cleanup(ctx); err != nil {
		t.Fatal(err)
	}
	if _, err := store.Get(ctx, sess.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() after Cleanup() error = %v, want ErrNotFound", err)
	}
}

func TestSessionUpdateRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	b := molecule.New()
	sess := New(b, DefaultTTL)
	if err := store.Set(ctx, sess); err != nil {
		t.Fatal(err)
	}

	// Mutate through a rebuilt builder, as the HTTP shell does per request.
	got, err := store.Get(ctx, sess.ID)
	if err != nil {
		t.Fatal(err)
	}
	rebuilt, err := got.Builder()
	if err != nil {
		t.Fatal(err)
	}
	if err := rebuilt.AttachComponent("Zero", "XYL", molecule.Up, molecule.Sugar); err != nil {
		t.Fatal(err)
	}
	got.Update(rebuilt)
	if err := store.Set(ctx, got); err != nil {
		t.Fatal(err)
	}

	final, err := store.Get(ctx, sess.ID)
	if err != nil {
		t.Fatal(err)
	}
	fb, err := final.Builder()
	if err != nil {
		t.Fatal(err)
	}
	if fb.Molecule.AttachmentCount() != 1 {
		t.Errorf("AttachmentCount() = %d, want 1", fb.Molecule.AttachmentCount())
	}
}
