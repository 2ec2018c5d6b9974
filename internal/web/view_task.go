package web

import (
	"strconv"

	"git.sr.ht/~jakintosh/tasklist/internal/domain"
)

// TaskView is the view model for one row of the visible list.
type TaskView struct {
	ID           int
	Index        int // 1-based position within the filtered list
	Name         string
	Completed    bool
	ToggleURL    string
	DeleteButton DeleteButtonView
}

func NewTaskView(t domain.NumberedTask) TaskView {
	id := strconv.Itoa(t.ID)
	return TaskView{
		ID:        t.ID,
		Index:     t.Index,
		Name:      t.Name,
		Completed: t.Completed,
		ToggleURL: "/tasks/" + id + "/toggle",
		DeleteButton: DeleteButtonView{
			URL:            "/tasks/" + id,
			FallbackURL:    "/tasks/" + id + "/delete",
			ConfirmMessage: "Delete this task?",
		},
	}
}

func NewTaskViews(tasks []domain.Task) []TaskView {
	rows := domain.Numbered(tasks)
	views := make([]TaskView, len(rows))
	for i, row := range rows {
		views[i] = NewTaskView(row)
	}
	return views
}
