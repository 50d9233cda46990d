package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/lamare/creator-studio/internal/core/domain"
	"github.com/lamare/creator-studio/internal/core/ports"
)

// TaskStore owns the ordered collection of planner tasks. Insertion order
// is display order; the only mutation is Add. The full collection is
// written to the store after every mutation, so a restart immediately
// after a successful Add observes the task.
type TaskStore struct {
	store ports.KVStore
	log   zerolog.Logger

	mu    sync.Mutex
	tasks []domain.PlannerTask
}

func NewTaskStore(store ports.KVStore, log zerolog.Logger) *TaskStore {
	return &TaskStore{store: store, log: log}
}

// Add appends task to the collection and persists it. Duplicate ids are
// accepted and simply create two entries; the store is never corrupted by
// them.
func (s *TaskStore) Add(ctx context.Context, task domain.PlannerTask) error {
	s.mu.Lock()
	s.tasks = append(s.tasks, task)
	snapshot := make([]domain.PlannerTask, len(s.tasks))
	copy(snapshot, s.tasks)
	s.mu.Unlock()

	payload, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("encode tasks: %w", err)
	}
	if err := s.store.Set(ctx, ports.TasksKey, string(payload)); err != nil {
		return fmt.Errorf("persist tasks: %w", err)
	}

	s.log.Info().Str("task_id", task.ID).Str("type", string(task.Type)).Msg("task scheduled")
	return nil
}

// Restore loads the persisted collection at process start. Absent or
// malformed data starts an empty collection; it never fails.
func (s *TaskStore) Restore(ctx context.Context) {
	raw, err := s.store.Get(ctx, ports.TasksKey)
	if err != nil {
		if !errors.Is(err, ports.ErrKeyNotFound) {
			s.log.Warn().Err(err).Msg("task collection unreadable, starting empty")
		}
		return
	}

	var tasks []domain.PlannerTask
	if err := json.Unmarshal([]byte(raw), &tasks); err != nil {
		s.log.Warn().Err(err).Msg("malformed task collection, starting empty")
		return
	}

	s.mu.Lock()
	s.tasks = tasks
	s.mu.Unlock()
	s.log.Info().Int("count", len(tasks)).Msg("tasks restored")
}

// All returns the collection in insertion order.
func (s *TaskStore) All() []domain.PlannerTask {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.PlannerTask, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// OnDate returns the sub-sequence of tasks falling on the given calendar
// day, preserving insertion order.
func (s *TaskStore) OnDate(day time.Time) []domain.PlannerTask {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.PlannerTask, 0)
	for _, t := range s.tasks {
		if t.OnDate(day) {
			out = append(out, t)
		}
	}
	return out
}
