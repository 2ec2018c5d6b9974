package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustAdd(t *testing.T, l TaskList, name string) TaskList {
	t.Helper()
	next, _, ok := l.Add(name)
	require.True(t, ok, "add %q", name)
	return next
}

func TestTaskList_AddAppendsIncompleteTask(t *testing.T) {
	for _, name := range []string{"a", "Buy milk", "  padded  ", "\tx"} {
		l := mustAdd(t, NewTaskList(nil), "first")
		before := l.Len()

		next, task, ok := l.Add(name)
		require.True(t, ok)
		assert.Equal(t, before+1, next.Len())
		assert.False(t, task.Completed)
		assert.Equal(t, name, task.Name, "name is stored untrimmed")
		assert.Equal(t, task, next.Tasks()[next.Len()-1])
	}
}

func TestTaskList_AddBlankIsNoop(t *testing.T) {
	l := mustAdd(t, NewTaskList(nil), "keep")
	for _, name := range []string{"", "   ", "\n\t "} {
		next, _, ok := l.Add(name)
		assert.False(t, ok)
		assert.Equal(t, l.Tasks(), next.Tasks())
	}
}

func TestTaskList_AddDoesNotModifyReceiver(t *testing.T) {
	l := mustAdd(t, NewTaskList(nil), "one")
	_, _, _ = l.Add("two")
	assert.Equal(t, 1, l.Len())
}

func TestTaskList_IDsNotReusedAfterDelete(t *testing.T) {
	l := NewTaskList(nil)
	for _, n := range []string{"a", "b", "c"} {
		l = mustAdd(t, l, n)
	}
	l, ok := l.Delete(2)
	require.True(t, ok)

	l, task, ok := l.Add("d")
	require.True(t, ok)
	assert.Equal(t, 4, task.ID)

	seen := map[int]bool{}
	for _, task := range l.Tasks() {
		assert.False(t, seen[task.ID], "duplicate id %d", task.ID)
		seen[task.ID] = true
	}
}

func TestTaskList_HydratedListContinuesFromHighestID(t *testing.T) {
	l := NewTaskList([]Task{{ID: 7, Name: "x"}, {ID: 3, Name: "y"}})
	_, task, ok := l.Add("z")
	require.True(t, ok)
	assert.Equal(t, 8, task.ID)
}

func TestTaskList_ToggleIsInvolution(t *testing.T) {
	l := mustAdd(t, mustAdd(t, NewTaskList(nil), "a"), "b")

	once, ok := l.Toggle(2)
	require.True(t, ok)
	task, _ := once.Find(2)
	assert.True(t, task.Completed)

	twice, ok := once.Toggle(2)
	require.True(t, ok)
	assert.Equal(t, l.Tasks(), twice.Tasks())
}

func TestTaskList_ToggleUnknownIsNoop(t *testing.T) {
	l := mustAdd(t, NewTaskList(nil), "a")
	next, ok := l.Toggle(42)
	assert.False(t, ok)
	assert.Equal(t, l.Tasks(), next.Tasks())
}

func TestTaskList_DeleteRemovesExactlyOne(t *testing.T) {
	l := NewTaskList(nil)
	for _, n := range []string{"a", "b", "c", "d"} {
		l = mustAdd(t, l, n)
	}
	next, ok := l.Delete(2)
	require.True(t, ok)
	assert.Equal(t, []Task{
		{ID: 1, Name: "a"},
		{ID: 3, Name: "c"},
		{ID: 4, Name: "d"},
	}, next.Tasks())

	same, ok := next.Delete(2)
	assert.False(t, ok)
	assert.Equal(t, next.Tasks(), same.Tasks())
}

func TestTaskList_VisibleByFilter(t *testing.T) {
	l := NewTaskList([]Task{
		{ID: 1, Name: "a", Completed: true},
		{ID: 2, Name: "b"},
		{ID: 3, Name: "c", Completed: true},
		{ID: 4, Name: "d"},
	})

	assert.Equal(t, l.Tasks(), l.Visible(FilterAll))
	assert.Equal(t, []Task{{ID: 2, Name: "b"}, {ID: 4, Name: "d"}}, l.Visible(FilterTodo))
	assert.Equal(t, []Task{
		{ID: 1, Name: "a", Completed: true},
		{ID: 3, Name: "c", Completed: true},
	}, l.Visible(FilterDone))

	assert.Equal(t, map[Filter]int{FilterAll: 4, FilterTodo: 2, FilterDone: 2}, l.Counts())
}

func TestTaskList_VisibleEmptyIsNotNil(t *testing.T) {
	assert.NotNil(t, NewTaskList(nil).Visible(FilterDone))
}

func TestNumbered_UsesFilteredPosition(t *testing.T) {
	l := NewTaskList([]Task{
		{ID: 1, Name: "a", Completed: true},
		{ID: 5, Name: "b"},
		{ID: 9, Name: "c"},
	})
	rows := Numbered(l.Visible(FilterTodo))
	require.Len(t, rows, 2)
	assert.Equal(t, 1, rows[0].Index)
	assert.Equal(t, 5, rows[0].ID)
	assert.Equal(t, 2, rows[1].Index)
	assert.Equal(t, 9, rows[1].ID)
}

func TestParseFilter(t *testing.T) {
	for in, want := range map[string]Filter{
		"all":    FilterAll,
		"TODO":   FilterTodo,
		" done ": FilterDone,
	} {
		got, err := ParseFilter(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseFilter("pending")
	assert.ErrorIs(t, err, ErrInvalidFilter)
}

func TestFilter_NextCycles(t *testing.T) {
	assert.Equal(t, FilterTodo, FilterAll.Next())
	assert.Equal(t, FilterDone, FilterTodo.Next())
	assert.Equal(t, FilterAll, FilterDone.Next())
}

func TestScenario(t *testing.T) {
	l := NewTaskList(nil)
	l = mustAdd(t, l, "Buy milk")
	l = mustAdd(t, l, "Walk dog")
	assert.Equal(t, []Task{{ID: 1, Name: "Buy milk"}, {ID: 2, Name: "Walk dog"}}, l.Tasks())

	l, _ = l.Toggle(1)
	assert.Equal(t, []Task{{ID: 1, Name: "Buy milk", Completed: true}}, l.Visible(FilterDone))

	l, _ = l.Delete(1)
	assert.Equal(t, []Task{{ID: 2, Name: "Walk dog"}}, l.Visible(FilterAll))
}
