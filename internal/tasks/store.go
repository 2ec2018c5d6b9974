// Package tasks holds the session task store: the current task list and
// filter, hydrated once from a domain.Storage and written back after every
// change.
package tasks

import (
	"fmt"
	"log/slog"
	"sync"

	"git.sr.ht/~jakintosh/tasklist/internal/domain"
)

// Snapshot is the state handed to subscribers after a change.
type Snapshot struct {
	Filter  domain.Filter
	Tasks   []domain.Task
	Visible []domain.Task
}

type Options struct {
	// Key is the storage key for the task sequence. Defaults to domain.DefaultKey.
	Key    string
	Logger *slog.Logger
}

// Store owns one session's task list. All methods are safe for concurrent
// use; each call runs to completion, including its storage write, before
// the next one starts.
type Store struct {
	mu          sync.Mutex
	storage     domain.Storage
	key         string
	log         *slog.Logger
	list        domain.TaskList
	filter      domain.Filter
	subscribers []func(Snapshot)
}

// Open creates a store and hydrates it. Absent or unreadable data yields an
// empty list; only a failing storage read is returned as an error.
func Open(storage domain.Storage, opts Options) (*Store, error) {
	if opts.Key == "" {
		opts.Key = domain.DefaultKey
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	s := &Store{
		storage: storage,
		key:     opts.Key,
		log:     opts.Logger,
		filter:  domain.FilterAll,
	}
	if err := s.hydrate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) hydrate() error {
	data, found, err := s.storage.Get(s.key)
	if err != nil {
		return fmt.Errorf("failed to read %q: %w", s.key, err)
	}
	if !found {
		s.log.Debug("no stored tasks", "key", s.key)
		s.list = domain.NewTaskList(nil)
		return nil
	}

	tasks, err := domain.DecodeTasks(data)
	if err != nil {
		s.log.Warn("discarding unreadable stored tasks", "key", s.key, "error", err)
		s.list = domain.NewTaskList(nil)
		return nil
	}
	s.list = domain.NewTaskList(tasks)
	s.log.Debug("hydrated tasks", "key", s.key, "count", s.list.Len())
	return nil
}

// persistLocked writes the full task sequence. Caller holds s.mu.
func (s *Store) persistLocked() error {
	data, err := domain.EncodeTasks(s.list.Tasks())
	if err != nil {
		return err
	}
	if err := s.storage.Set(s.key, data); err != nil {
		return fmt.Errorf("failed to write %q: %w", s.key, err)
	}
	return nil
}

// commitLocked installs next, persists it and returns the snapshot to
// publish once the lock is released.
func (s *Store) commitLocked(next domain.TaskList) (Snapshot, error) {
	s.list = next
	err := s.persistLocked()
	if err != nil {
		s.log.Error("persist tasks", "key", s.key, "error", err)
	}
	return s.snapshotLocked(), err
}

func (s *Store) snapshotLocked() Snapshot {
	return Snapshot{
		Filter:  s.filter,
		Tasks:   s.list.Tasks(),
		Visible: s.list.Visible(s.filter),
	}
}

func (s *Store) publish(snap Snapshot) {
	s.mu.Lock()
	subs := append([]func(Snapshot){}, s.subscribers...)
	s.mu.Unlock()
	for _, fn := range subs {
		fn(snap)
	}
}

// AddTask appends a task named name. Blank names are ignored. The returned
// bool reports whether a task was added; err is non-nil only when the
// write to storage failed, in which case the task is still in memory.
func (s *Store) AddTask(name string) (domain.Task, bool, error) {
	s.mu.Lock()
	next, task, ok := s.list.Add(name)
	if !ok {
		s.mu.Unlock()
		return domain.Task{}, false, nil
	}
	snap, err := s.commitLocked(next)
	s.mu.Unlock()

	s.log.Debug("task added", "id", task.ID)
	s.publish(snap)
	return task, true, err
}

// ToggleTask flips the completed flag of task id. Unknown ids are ignored.
func (s *Store) ToggleTask(id int) (bool, error) {
	s.mu.Lock()
	next, ok := s.list.Toggle(id)
	if !ok {
		s.mu.Unlock()
		return false, nil
	}
	snap, err := s.commitLocked(next)
	s.mu.Unlock()

	s.log.Debug("task toggled", "id", id)
	s.publish(snap)
	return true, err
}

// DeleteTask removes task id. Unknown ids are ignored.
func (s *Store) DeleteTask(id int) (bool, error) {
	s.mu.Lock()
	next, ok := s.list.Delete(id)
	if !ok {
		s.mu.Unlock()
		return false, nil
	}
	snap, err := s.commitLocked(next)
	s.mu.Unlock()

	s.log.Debug("task deleted", "id", id)
	s.publish(snap)
	return true, err
}

// SetFilter changes which tasks are visible. The filter is not persisted.
func (s *Store) SetFilter(f domain.Filter) {
	s.mu.Lock()
	s.filter = f
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.publish(snap)
}

func (s *Store) Filter() domain.Filter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter
}

// VisibleTasks returns the tasks matching the current filter in insertion order.
func (s *Store) VisibleTasks() []domain.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.list.Visible(s.filter)
}

func (s *Store) Tasks() []domain.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.list.Tasks()
}

func (s *Store) Counts() map[domain.Filter]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.list.Counts()
}

func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Subscribe registers fn to run after every state change, outside the
// store's lock. fn must not block.
func (s *Store) Subscribe(fn func(Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}
