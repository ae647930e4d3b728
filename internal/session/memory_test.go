package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aayush1982/universal-timeline-viewer/internal/model"
)

func testDataset() *model.Dataset {
	return &model.Dataset{
		Filename: "m.csv",
		Headers:  []string{"Milestones", "Contractual", "Actual"},
		Rows:     [][]string{{"NTP", "2025-01-01", ""}},
	}
}

func TestMemoryStoreLifecycle(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	defer store.Close()
	ctx := context.Background()

	sess, err := store.Create(ctx, testDataset(), model.DefaultViewOptions())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if sess.ID == "" {
		t.Fatal("empty session id")
	}

	got, err := store.Get(ctx, sess.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Dataset.Filename != "m.csv" {
		t.Fatalf("dataset = %+v", got.Dataset)
	}

	opts := got.Options
	opts.Search = "boiler"
	if err := store.SetOptions(ctx, sess.ID, opts); err != nil {
		t.Fatalf("SetOptions: %v", err)
	}
	got, _ = store.Get(ctx, sess.ID)
	if got.Options.Search != "boiler" {
		t.Fatalf("options not updated: %+v", got.Options)
	}

	if err := store.Delete(ctx, sess.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Get(ctx, sess.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get after delete = %v, want ErrNotFound", err)
	}
}

func TestMemoryStoreUnknownID(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	defer store.Close()

	if _, err := store.Get(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if err := store.SetOptions(context.Background(), "nope", model.DefaultViewOptions()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore(10 * time.Millisecond)
	defer store.Close()
	ctx := context.Background()

	sess, err := store.Create(ctx, testDataset(), model.DefaultViewOptions())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	time.Sleep(30 * time.Millisecond)
	if _, err := store.Get(ctx, sess.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expired session still readable: %v", err)
	}
}

func TestMemoryStoreGetReturnsCopy(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	defer store.Close()
	ctx := context.Background()

	sess, _ := store.Create(ctx, testDataset(), model.DefaultViewOptions())

	first, _ := store.Get(ctx, sess.ID)
	first.Options.Search = "mutated"

	second, _ := store.Get(ctx, sess.ID)
	if second.Options.Search == "mutated" {
		t.Fatal("Get leaked a mutable reference to the stored session")
	}
}
