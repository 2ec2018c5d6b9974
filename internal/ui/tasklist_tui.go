package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"git.sr.ht/~jakintosh/tasklist/internal/domain"
	"git.sr.ht/~jakintosh/tasklist/internal/tasks"
)

// TaskService is the part of *tasks.Store the terminal UI drives.
type TaskService interface {
	AddTask(name string) (domain.Task, bool, error)
	ToggleTask(id int) (bool, error)
	DeleteTask(id int) (bool, error)
	SetFilter(f domain.Filter)
	Snapshot() tasks.Snapshot
}

// RunTaskList runs the interactive list until the user quits.
func RunTaskList(store TaskService) error {
	p := tea.NewProgram(NewTaskListModel(store))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running task list: %w", err)
	}
	return nil
}

type focus int

const (
	focusInput focus = iota
	focusList
)

type TaskListModel struct {
	store  TaskService
	input  textinput.Model
	snap   tasks.Snapshot
	cursor int
	focus  focus
	err    error
	quit   bool
}

func NewTaskListModel(store TaskService) TaskListModel {
	ti := textinput.New()
	ti.Placeholder = "What do you have to do?"
	ti.CharLimit = 256
	ti.Width = 50
	ti.Focus()

	return TaskListModel{
		store: store,
		input: ti,
		snap:  store.Snapshot(),
		focus: focusInput,
	}
}

func (m TaskListModel) Init() tea.Cmd {
	return textinput.Blink
}

// refresh re-reads the store after an operation and keeps the cursor in range.
func (m TaskListModel) refresh(err error) TaskListModel {
	m.err = err
	m.snap = m.store.Snapshot()
	if m.cursor >= len(m.snap.Visible) {
		m.cursor = len(m.snap.Visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	return m
}

func (m TaskListModel) selected() (domain.Task, bool) {
	if m.cursor < 0 || m.cursor >= len(m.snap.Visible) {
		return domain.Task{}, false
	}
	return m.snap.Visible[m.cursor], true
}

func (m TaskListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch key.Type {
	case tea.KeyCtrlC:
		m.quit = true
		return m, tea.Quit
	case tea.KeyTab, tea.KeyShiftTab:
		if m.focus == focusInput {
			m.focus = focusList
			m.input.Blur()
		} else {
			m.focus = focusInput
			m.input.Focus()
		}
		return m, nil
	}

	if m.focus == focusInput {
		switch key.Type {
		case tea.KeyEnter:
			_, _, err := m.store.AddTask(m.input.Value())
			m.input.Reset()
			return m.refresh(err), nil
		case tea.KeyEsc:
			m.quit = true
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch key.String() {
	case "q", "esc":
		m.quit = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.snap.Visible)-1 {
			m.cursor++
		}
	case " ", "space", "enter", "x":
		if t, ok := m.selected(); ok {
			_, err := m.store.ToggleTask(t.ID)
			return m.refresh(err), nil
		}
	case "d", "delete", "backspace":
		if t, ok := m.selected(); ok {
			_, err := m.store.DeleteTask(t.ID)
			return m.refresh(err), nil
		}
	case "f":
		m.store.SetFilter(m.snap.Filter.Next())
		return m.refresh(nil), nil
	case "a", "i":
		m.focus = focusInput
		m.input.Focus()
	}
	return m, nil
}

func (m TaskListModel) View() string {
	var b strings.Builder

	b.WriteString("\n" + StyleHeader.Render("Let's add what you have to do!") + "\n\n")

	box := StyleInputBox
	if m.focus == focusInput {
		box = StyleInputFocus
	}
	b.WriteString(box.Render(m.input.View()) + "\n\n")

	counts := domain.NewTaskList(m.snap.Tasks).Counts()
	var filters []string
	for _, f := range domain.Filters() {
		label := fmt.Sprintf("%s (%d)", f.Label(), counts[f])
		if f == m.snap.Filter {
			filters = append(filters, StyleFilterOn.Render(label))
		} else {
			filters = append(filters, StyleFilterOff.Render(label))
		}
	}
	b.WriteString("List: " + strings.Join(filters, "  ") + "\n\n")

	if len(m.snap.Visible) == 0 {
		b.WriteString(StyleSubtle.Render("  Nothing here.") + "\n")
	}
	for _, row := range domain.Numbered(m.snap.Visible) {
		cursor := "  "
		if m.focus == focusList && row.Index-1 == m.cursor {
			cursor = StyleCursor.Render("▶ ")
		}
		style := StyleTask
		if row.Completed {
			style = StyleTaskDone
		}
		b.WriteString(cursor + style.Render(fmt.Sprintf("%d. %s", row.Index, row.Name)) + "\n")
	}

	if m.err != nil {
		b.WriteString("\n" + StyleError.Render(m.err.Error()) + "\n")
	}

	help := "enter add • tab list • ctrl+c quit"
	if m.focus == focusList {
		help = "↑/↓ move • space toggle • d delete • f filter • tab input • q quit"
	}
	b.WriteString("\n" + StyleSubtle.Render(help) + "\n")
	return b.String()
}
