package service

import (
	"context"
	"testing"
	"time"

	"github.com/lamare/creator-studio/internal/core/domain"
)

func dayAt(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 9, 0, 0, 0, time.UTC)
}

func TestTaskStore_AddAndRoundTrip(t *testing.T) {
	kv := newFakeKV()
	store := NewTaskStore(kv, testLogger())
	ctx := context.Background()

	task := domain.PlannerTask{
		ID:       "t1",
		Title:    "CAPTION: Premium Linen Shirt",
		Type:     domain.TaskCaption,
		Platform: "Instagram",
		Date:     dayAt(2024, 10, 10),
		Status:   domain.TaskPending,
		Color:    "bg-pink-100 text-pink-600",
	}
	if err := store.Add(ctx, task); err != nil {
		t.Fatalf("add: %v", err)
	}

	restarted := NewTaskStore(kv, testLogger())
	restarted.Restore(ctx)
	got := restarted.All()
	if len(got) != 1 {
		t.Fatalf("expected 1 task after restart, have %d", len(got))
	}
	if got[0].ID != task.ID || got[0].Title != task.Title || got[0].Type != task.Type ||
		got[0].Platform != task.Platform || !got[0].Date.Equal(task.Date) ||
		got[0].Status != task.Status || got[0].Color != task.Color {
		t.Fatalf("round-trip mismatch: %+v", got[0])
	}
}

func TestTaskStore_InsertionOrderPreserved(t *testing.T) {
	store := NewTaskStore(newFakeKV(), testLogger())
	ctx := context.Background()

	for _, id := range []string{"first", "second", "third"} {
		_ = store.Add(ctx, domain.PlannerTask{ID: id, Date: dayAt(2024, 10, 10)})
	}
	got := store.All()
	if got[0].ID != "first" || got[1].ID != "second" || got[2].ID != "third" {
		t.Fatalf("order broken: %+v", got)
	}
}

func TestTaskStore_DuplicateIDsAccepted(t *testing.T) {
	store := NewTaskStore(newFakeKV(), testLogger())
	ctx := context.Background()

	_ = store.Add(ctx, domain.PlannerTask{ID: "dup", Title: "one", Date: dayAt(2024, 10, 10)})
	if err := store.Add(ctx, domain.PlannerTask{ID: "dup", Title: "two", Date: dayAt(2024, 10, 10)}); err != nil {
		t.Fatalf("duplicate id must be accepted: %v", err)
	}
	got := store.All()
	if len(got) != 2 || got[0].Title != "one" || got[1].Title != "two" {
		t.Fatalf("expected both entries kept: %+v", got)
	}
}

func TestTaskStore_OnDate(t *testing.T) {
	store := NewTaskStore(newFakeKV(), testLogger())
	ctx := context.Background()

	_ = store.Add(ctx, domain.PlannerTask{ID: "a", Date: time.Date(2024, 10, 10, 9, 0, 0, 0, time.UTC)})
	_ = store.Add(ctx, domain.PlannerTask{ID: "b", Date: time.Date(2024, 10, 11, 9, 0, 0, 0, time.UTC)})
	_ = store.Add(ctx, domain.PlannerTask{ID: "c", Date: time.Date(2024, 10, 10, 23, 30, 0, 0, time.UTC)})

	got := store.OnDate(time.Date(2024, 10, 10, 0, 0, 0, 0, time.UTC))
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "c" {
		t.Fatalf("unexpected day filter result: %+v", got)
	}
	if got := store.OnDate(time.Date(2024, 10, 12, 0, 0, 0, 0, time.UTC)); len(got) != 0 {
		t.Fatalf("expected empty day, got %+v", got)
	}
}

func TestTaskStore_RestoreFailsOpen(t *testing.T) {
	kv := newFakeKV()
	_ = kv.Set(context.Background(), "tasks", "{not json")

	store := NewTaskStore(kv, testLogger())
	store.Restore(context.Background())
	if got := store.All(); len(got) != 0 {
		t.Fatalf("malformed payload must start empty, got %+v", got)
	}

	// The store remains usable after a failed restore.
	if err := store.Add(context.Background(), domain.PlannerTask{ID: "x", Date: dayAt(2024, 1, 1)}); err != nil {
		t.Fatalf("add after failed restore: %v", err)
	}
}

func TestTaskStore_PersistErrorStillAppends(t *testing.T) {
	store := NewTaskStore(failingKV{}, testLogger())
	err := store.Add(context.Background(), domain.PlannerTask{ID: "x", Date: dayAt(2024, 1, 1)})
	if err == nil {
		t.Fatalf("expected persistence error")
	}
	if got := len(store.All()); got != 1 {
		t.Fatalf("in-memory collection must keep the task, have %d", got)
	}
}

type failingKV struct{}

func (failingKV) Get(context.Context, string) (string, error) { return "", errStoreDown }
func (failingKV) Set(context.Context, string, string) error   { return errStoreDown }
func (failingKV) Delete(context.Context, string) error        { return errStoreDown }
