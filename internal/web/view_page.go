package web

import (
	"io"

	"git.sr.ht/~jakintosh/tasklist/internal/domain"
	"git.sr.ht/~jakintosh/tasklist/internal/tasks"
)

type FilterOption struct {
	Value    string
	Label    string
	Count    int
	Selected bool
}

// ListView is rendered both inside the full page and as the HTMX partial.
type ListView struct {
	Filter  string
	Filters []FilterOption
	Tasks   []TaskView
}

type PageView struct {
	ListView
}

func NewListView(snap tasks.Snapshot) ListView {
	all := domain.NewTaskList(snap.Tasks)
	counts := all.Counts()

	opts := make([]FilterOption, 0, len(domain.Filters()))
	for _, f := range domain.Filters() {
		opts = append(opts, FilterOption{
			Value:    f.String(),
			Label:    f.Label(),
			Count:    counts[f],
			Selected: f == snap.Filter,
		})
	}
	return ListView{
		Filter:  snap.Filter.String(),
		Filters: opts,
		Tasks:   NewTaskViews(snap.Visible),
	}
}

func (p *Presentation) RenderIndex(w io.Writer, view ListView) error {
	return p.tmpl.ExecuteTemplate(w, "layout.html", PageView{ListView: view})
}

// RenderTaskList renders just the filter bar and list for HTMX swaps.
func (p *Presentation) RenderTaskList(w io.Writer, view ListView) error {
	return p.tmpl.ExecuteTemplate(w, "task_list", view)
}
