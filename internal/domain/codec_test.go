package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskCodec_RoundTrip(t *testing.T) {
	tasks := []Task{
		{ID: 1, Name: "Buy milk", Completed: true},
		{ID: 4, Name: "  Walk dog ", Completed: false},
		{ID: 2, Name: "ünïcode ✓"},
	}
	data, err := EncodeTasks(tasks)
	require.NoError(t, err)

	got, err := DecodeTasks(data)
	require.NoError(t, err)
	assert.Equal(t, tasks, got)
}

func TestEncodeTasks_FieldNames(t *testing.T) {
	data, err := EncodeTasks([]Task{{ID: 1, Name: "a"}})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":1,"name":"a","completed":false}]`, string(data))

	empty, err := EncodeTasks(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(empty))
}

func TestDecodeTasks_Rejects(t *testing.T) {
	cases := map[string]string{
		"not json":     `{{{`,
		"object":       `{"id":1}`,
		"wrong type":   `[{"id":"1","name":"a","completed":false}]`,
		"zero id":      `[{"id":0,"name":"a","completed":false}]`,
		"missing name": `[{"id":1,"completed":false}]`,
		"blank name":   `[{"id":1,"name":"   ","completed":false}]`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeTasks([]byte(raw))
			assert.Error(t, err)
		})
	}
}

func TestDecodeTasks_NullIsEmpty(t *testing.T) {
	got, err := DecodeTasks([]byte("null"))
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}
