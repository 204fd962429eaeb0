package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"ai-task-assistant/internal/model"
)

const (
	outputJSON = "json"
	outputYAML = "yaml"
)

// taskRecord is the on-disk and printed shape of a task.
type taskRecord struct {
	ID          string    `json:"id,omitempty"          yaml:"id,omitempty"`
	Title       string    `json:"title"                 yaml:"title"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	DueDate     time.Time `json:"due_date"              yaml:"due_date"`
	Priority    string    `json:"priority"              yaml:"priority"`
	Category    string    `json:"category"              yaml:"category"`
	Completed   bool      `json:"completed"             yaml:"completed"`
}

func newTaskRecord(t model.Task, loc *time.Location) taskRecord {
	return taskRecord{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		DueDate:     t.DueAt.In(loc),
		Priority:    string(t.Priority),
		Category:    string(t.Category),
		Completed:   t.Completed,
	}
}

func (r taskRecord) toModel() (model.Task, error) {
	if r.Title == "" {
		return model.Task{}, errors.New("title is required")
	}
	if r.DueDate.IsZero() {
		return model.Task{}, fmt.Errorf("task %q: due_date is required", r.Title)
	}
	if !model.Priority(r.Priority).IsValid() {
		return model.Task{}, fmt.Errorf("task %q: unknown priority %q", r.Title, r.Priority)
	}
	if !model.Category(r.Category).IsValid() {
		return model.Task{}, fmt.Errorf("task %q: unknown category %q", r.Title, r.Category)
	}
	return model.Task{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		DueAt:       r.DueDate,
		Priority:    model.Priority(r.Priority),
		Category:    model.Category(r.Category),
		Completed:   r.Completed,
	}, nil
}

// readTasksFile loads a JSON array of tasks from path, or stdin when path is "-".
func readTasksFile(path string) ([]model.Task, error) {
	var r io.Reader
	if path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	return decodeTasks(r)
}

func decodeTasks(r io.Reader) ([]model.Task, error) {
	var records []taskRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode tasks: %w", err)
	}

	tasks := make([]model.Task, 0, len(records))
	for i, rec := range records {
		t, err := rec.toModel()
		if err != nil {
			return nil, fmt.Errorf("task #%d: %w", i+1, err)
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

// render writes v as indented JSON or YAML. YAML goes through JSON first so
// both formats share the json field names.
func render(w io.Writer, format string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	if format == outputYAML {
		var generic any
		if err := yaml.Unmarshal(data, &generic); err != nil {
			return err
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(generic); err != nil {
			return err
		}
		return enc.Close()
	}

	_, err = fmt.Fprintln(w, string(data))
	return err
}
