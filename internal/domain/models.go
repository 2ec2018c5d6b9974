package domain

import (
	"errors"
	"strings"
)

type Task struct {
	ID        int    `json:"id" validate:"gt=0"`
	Name      string `json:"name" validate:"required"`
	Completed bool   `json:"completed"`
}

// Filter selects which tasks are visible. It never affects stored data.
type Filter string

const (
	FilterAll  Filter = "all"
	FilterTodo Filter = "todo"
	FilterDone Filter = "done"
)

var ErrInvalidFilter = errors.New("invalid filter")

// Filters lists every filter in display order.
func Filters() []Filter {
	return []Filter{FilterAll, FilterTodo, FilterDone}
}

// ParseFilter accepts the canonical names, case-insensitively.
func ParseFilter(s string) (Filter, error) {
	switch f := Filter(strings.ToLower(strings.TrimSpace(s))); f {
	case FilterAll, FilterTodo, FilterDone:
		return f, nil
	}
	return "", ErrInvalidFilter
}

func (f Filter) String() string {
	return string(f)
}

// Label is the human-facing name used by the presentation layers.
func (f Filter) Label() string {
	switch f {
	case FilterTodo:
		return "To do"
	case FilterDone:
		return "Done"
	default:
		return "All"
	}
}

// Next cycles all -> todo -> done -> all.
func (f Filter) Next() Filter {
	switch f {
	case FilterAll:
		return FilterTodo
	case FilterTodo:
		return FilterDone
	default:
		return FilterAll
	}
}

func (f Filter) Matches(t Task) bool {
	switch f {
	case FilterTodo:
		return !t.Completed
	case FilterDone:
		return t.Completed
	default:
		return true
	}
}

// NumberedTask pairs a task with its 1-based position in a filtered view.
type NumberedTask struct {
	Index int
	Task
}

func Numbered(tasks []Task) []NumberedTask {
	out := make([]NumberedTask, len(tasks))
	for i, t := range tasks {
		out[i] = NumberedTask{Index: i + 1, Task: t}
	}
	return out
}
