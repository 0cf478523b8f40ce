package projectflow

import "strings"

// The store checks required-field presence itself instead of trusting the
// caller's dialog layer. Referential checks stay out: a task or expense may
// point at a project the store has never seen.

func validateProject(p Project) error {
	if strings.TrimSpace(p.Name) == "" {
		return &ValidationError{Field: "project.name", Reason: "required"}
	}
	if strings.TrimSpace(p.Client) == "" {
		return &ValidationError{Field: "project.client", Reason: "required"}
	}
	return nil
}

func validateTask(t Task) error {
	if strings.TrimSpace(t.Title) == "" {
		return &ValidationError{Field: "task.title", Reason: "required"}
	}
	if strings.TrimSpace(t.ProjectID) == "" {
		return &ValidationError{Field: "task.projectId", Reason: "required"}
	}
	if t.Status == "" {
		return &ValidationError{Field: "task.status", Reason: "required"}
	}
	if _, err := ParseTaskStatus(string(t.Status)); err != nil {
		return &ValidationError{Field: "task.status", Reason: err.Error()}
	}
	return nil
}

func validateExpense(e Expense) error {
	if strings.TrimSpace(e.Description) == "" {
		return &ValidationError{Field: "expense.description", Reason: "required"}
	}
	return nil
}
