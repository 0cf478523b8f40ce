package projectflow

import (
	"fmt"
	"slices"
)

// TaskStatus is the kanban column a task sits in.
type TaskStatus string

const (
	StatusTodo       TaskStatus = "todo"
	StatusInProgress TaskStatus = "inprogress"
	StatusReview     TaskStatus = "review"
	StatusDone       TaskStatus = "done"
)

// ParseTaskStatus parses a string into a TaskStatus.
func ParseTaskStatus(s string) (TaskStatus, error) {
	switch TaskStatus(s) {
	case StatusTodo, StatusInProgress, StatusReview, StatusDone:
		return TaskStatus(s), nil
	default:
		return "", fmt.Errorf("unknown task status %q", s)
	}
}

// WorkLog is a per-day accumulation of hours logged against a task. Logs are
// keyed by date: logging twice on the same day adds to the existing entry.
type WorkLog struct {
	Date  Date  `json:"date"`
	Hours Hours `json:"hours"`
}

// Task is a unit of work belonging to exactly one Project.
//
// Once work logs exist they are the source of truth for time: LogWork appends
// or merges a WorkLog and raises ActualHours in the same operation, and the
// delta cascades to the parent project.
type Task struct {
	ID             string     `json:"id"`
	ProjectID      string     `json:"projectId"` // immutable after creation
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Status         TaskStatus `json:"status"`
	EstimatedHours Hours      `json:"estimatedHours"`
	ActualHours    Hours      `json:"actualHours"`
	DueDate        *Date      `json:"dueDate,omitempty"`
	Tags           []string   `json:"tags"`
	WorkLogs       []WorkLog  `json:"workLogs"`
}

// Equal reports field-for-field equality, work logs included.
func (t Task) Equal(u Task) bool {
	if t.ID != u.ID || t.ProjectID != u.ProjectID || t.Title != u.Title ||
		t.Description != u.Description || t.Status != u.Status ||
		!t.EstimatedHours.Equal(u.EstimatedHours) || !t.ActualHours.Equal(u.ActualHours) ||
		!slices.Equal(t.Tags, u.Tags) {
		return false
	}
	if (t.DueDate == nil) != (u.DueDate == nil) {
		return false
	}
	if t.DueDate != nil && *t.DueDate != *u.DueDate {
		return false
	}
	return slices.EqualFunc(t.WorkLogs, u.WorkLogs, WorkLog.Equal)
}

// Equal reports whether two work log entries are the same day and amount.
func (w WorkLog) Equal(x WorkLog) bool { return w.Date == x.Date && w.Hours.Equal(x.Hours) }

// TaskPatch is a partial update of a Task. Nil fields are left untouched.
// The project reference is immutable and deliberately absent.
type TaskPatch struct {
	Title          *string
	Description    *string
	Status         *TaskStatus
	EstimatedHours *Hours
	ActualHours    *Hours
	DueDate        *Date
	Tags           *[]string
	WorkLogs       *[]WorkLog
}

// apply merges the non-nil patch fields into the task.
func (t *Task) apply(patch TaskPatch) {
	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.Status != nil {
		t.Status = *patch.Status
	}
	if patch.EstimatedHours != nil {
		t.EstimatedHours = *patch.EstimatedHours
	}
	if patch.ActualHours != nil {
		t.ActualHours = *patch.ActualHours
	}
	if patch.DueDate != nil {
		t.DueDate = patch.DueDate
	}
	if patch.Tags != nil {
		t.Tags = *patch.Tags
	}
	if patch.WorkLogs != nil {
		t.WorkLogs = *patch.WorkLogs
	}
}

// logged returns the hours recorded on a given day, or zero.
func (t *Task) logged(on Date) Hours {
	for _, wl := range t.WorkLogs {
		if wl.Date == on {
			return wl.Hours
		}
	}
	return Hours{}
}

// addWork merges hours into the work log entry for the given day, keeping the
// logs sorted by date.
func (t *Task) addWork(on Date, hours Hours) {
	for i, wl := range t.WorkLogs {
		if wl.Date == on {
			t.WorkLogs[i].Hours = wl.Hours.Add(hours)
			return
		}
	}
	t.WorkLogs = append(t.WorkLogs, WorkLog{Date: on, Hours: hours})
	slices.SortStableFunc(t.WorkLogs, func(a, b WorkLog) int {
		switch {
		case a.Date.Before(b.Date):
			return -1
		case a.Date.After(b.Date):
			return 1
		default:
			return 0
		}
	})
}
