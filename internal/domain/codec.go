package domain

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("notblank", validators.NotBlank)
}

// EncodeTasks serializes the full sequence as a JSON array of
// {id, name, completed} objects. An empty sequence encodes as [].
func EncodeTasks(tasks []Task) ([]byte, error) {
	if tasks == nil {
		tasks = []Task{}
	}
	data, err := json.Marshal(tasks)
	if err != nil {
		return nil, fmt.Errorf("failed to encode tasks: %w", err)
	}
	return data, nil
}

// DecodeTasks parses a stored value and rejects records that could not
// have been produced by EncodeTasks: non-positive ids or blank names.
func DecodeTasks(data []byte) ([]Task, error) {
	var tasks []Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("failed to decode tasks: %w", err)
	}
	for i, t := range tasks {
		if err := validate.Struct(t); err != nil {
			return nil, fmt.Errorf("invalid task at index %d: %w", i, err)
		}
		if err := validate.Var(t.Name, "notblank"); err != nil {
			return nil, fmt.Errorf("invalid task at index %d: blank name", i)
		}
	}
	if tasks == nil {
		tasks = []Task{}
	}
	return tasks, nil
}
