package domain

import "strings"

// TaskList is an ordered sequence of tasks with one pure transition per
// operation. Transitions never modify the receiver; they return the next
// list and whether anything changed.
type TaskList struct {
	tasks []Task
	// lastID is the highest id handed out or observed. It only grows, so
	// an id freed by a delete is not reissued within the session.
	lastID int
}

// NewTaskList builds a list from hydrated tasks, keeping their order.
func NewTaskList(tasks []Task) TaskList {
	l := TaskList{tasks: append([]Task(nil), tasks...)}
	for _, t := range l.tasks {
		if t.ID > l.lastID {
			l.lastID = t.ID
		}
	}
	return l
}

func (l TaskList) Len() int {
	return len(l.tasks)
}

// Tasks returns a copy of the full sequence in insertion order.
func (l TaskList) Tasks() []Task {
	return append([]Task{}, l.tasks...)
}

func (l TaskList) Find(id int) (Task, bool) {
	for _, t := range l.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return Task{}, false
}

// Add appends a new incomplete task. Names that are blank after trimming
// are ignored; otherwise the name is kept exactly as given.
func (l TaskList) Add(name string) (TaskList, Task, bool) {
	if strings.TrimSpace(name) == "" {
		return l, Task{}, false
	}
	task := Task{
		ID:   l.lastID + 1,
		Name: name,
	}
	next := TaskList{
		tasks:  append(l.Tasks(), task),
		lastID: task.ID,
	}
	return next, task, true
}

// Toggle flips Completed on every task carrying id.
func (l TaskList) Toggle(id int) (TaskList, bool) {
	changed := false
	tasks := l.Tasks()
	for i := range tasks {
		if tasks[i].ID == id {
			tasks[i].Completed = !tasks[i].Completed
			changed = true
		}
	}
	if !changed {
		return l, false
	}
	return TaskList{tasks: tasks, lastID: l.lastID}, true
}

// Delete removes every task carrying id. Survivors keep their order and ids.
func (l TaskList) Delete(id int) (TaskList, bool) {
	tasks := make([]Task, 0, len(l.tasks))
	for _, t := range l.tasks {
		if t.ID != id {
			tasks = append(tasks, t)
		}
	}
	if len(tasks) == len(l.tasks) {
		return l, false
	}
	return TaskList{tasks: tasks, lastID: l.lastID}, true
}

// Visible returns the tasks matching f in insertion order.
func (l TaskList) Visible(f Filter) []Task {
	out := []Task{}
	for _, t := range l.tasks {
		if f.Matches(t) {
			out = append(out, t)
		}
	}
	return out
}

func (l TaskList) Count(f Filter) int {
	n := 0
	for _, t := range l.tasks {
		if f.Matches(t) {
			n++
		}
	}
	return n
}

// Counts reports the number of tasks each filter would show.
func (l TaskList) Counts() map[Filter]int {
	counts := make(map[Filter]int, 3)
	for _, f := range Filters() {
		counts[f] = l.Count(f)
	}
	return counts
}
