package projectflow

// Read accessors used by views: stateless projections over the store's
// current collections. All returned entities are copies.

// Projects returns a copy of all projects in insertion order.
func (s *Store) Projects() []Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneProjects(s.projects)
}

// Tasks returns a copy of all tasks in insertion order.
func (s *Store) Tasks() []Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneTasks(s.tasks)
}

// Expenses returns a copy of all expenses in insertion order.
func (s *Store) Expenses() []Expense {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Expense, len(s.expenses))
	copy(out, s.expenses)
	return out
}

// Project resolves a project id or fails with a NotFoundError. Consumers
// holding a task's or expense's reference use this instead of scanning.
func (s *Store) Project(id string) (Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.findProject(id)
	if i < 0 {
		return Project{}, &NotFoundError{Collection: ColProjects, ID: id}
	}
	p := s.projects[i]
	p.Tags = append([]string(nil), p.Tags...)
	return p, nil
}

// Task resolves a task id or fails with a NotFoundError.
func (s *Store) Task(id string) (Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.findTask(id)
	if i < 0 {
		return Task{}, &NotFoundError{Collection: ColTasks, ID: id}
	}
	t := s.tasks[i]
	t.Tags = append([]string(nil), t.Tags...)
	t.WorkLogs = append([]WorkLog(nil), t.WorkLogs...)
	return t, nil
}

// TasksByProject returns the tasks belonging to one project.
func (s *Store) TasksByProject(projectID string) []Task {
	return s.filterTasks(func(t Task) bool { return t.ProjectID == projectID })
}

// TasksByStatus returns the tasks sitting in one kanban column.
func (s *Store) TasksByStatus(status TaskStatus) []Task {
	return s.filterTasks(func(t Task) bool { return t.Status == status })
}

// TasksDueBefore returns the tasks due strictly before the given date.
func (s *Store) TasksDueBefore(on Date) []Task {
	return s.filterTasks(func(t Task) bool { return t.DueDate != nil && t.DueDate.Before(on) })
}

func (s *Store) filterTasks(accept func(Task) bool) []Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Task
	for _, t := range s.tasks {
		if accept(t) {
			t.Tags = append([]string(nil), t.Tags...)
			t.WorkLogs = append([]WorkLog(nil), t.WorkLogs...)
			out = append(out, t)
		}
	}
	return out
}

// ExpensesByProject returns the expenses attributed to one project. Deleted
// projects may still have expenses here; the reference is kept for history.
func (s *Store) ExpensesByProject(projectID string) []Expense {
	return s.filterExpenses(func(e Expense) bool { return e.ProjectID == projectID })
}

// ExpensesInRange returns the expenses dated within the range, inclusive.
func (s *Store) ExpensesInRange(r Range) []Expense {
	return s.filterExpenses(func(e Expense) bool { return r.Contains(e.Date) })
}

func (s *Store) filterExpenses(accept func(Expense) bool) []Expense {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Expense
	for _, e := range s.expenses {
		if accept(e) {
			out = append(out, e)
		}
	}
	return out
}
