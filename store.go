package projectflow

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/google/uuid"
)

// Store is the single source of truth for projects, tasks and expenses.
//
// Every mutation is synchronous and immediately consistent: the mutation and
// its cascading updates (project hour and cost totals) complete before the
// call returns, behind one exclusive-access boundary. Durable writes go
// through the injected Strategy after the in-memory state is settled; a
// failed write is surfaced to the caller but never rolls back memory.
type Store struct {
	mu       sync.Mutex
	strategy Strategy
	bus      *Bus

	projects []Project
	tasks    []Task
	expenses []Expense
}

// NewStore loads the persisted state through the strategy and returns a
// ready store. A nil strategy means pure in-memory operation.
func NewStore(ctx context.Context, strategy Strategy) (*Store, error) {
	if strategy == nil {
		strategy = MemoryStrategy{}
	}
	snap, err := strategy.Load(ctx)
	if err != nil {
		return nil, err
	}
	return &Store{
		strategy: strategy,
		bus:      NewBus(),
		projects: snap.Projects,
		tasks:    snap.Tasks,
		expenses: snap.Expenses,
	}, nil
}

// Bus returns the change-event bus for this store.
func (s *Store) Bus() *Bus { return s.bus }

// Snapshot returns a deep copy of all collections.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Projects: cloneProjects(s.projects),
		Tasks:    cloneTasks(s.tasks),
		Expenses: slices.Clone(s.expenses),
	}
}

// AddProject assigns a fresh id, appends the project and persists the
// collection. The returned project carries the assigned id even when the
// durable write failed.
func (s *Store) AddProject(ctx context.Context, p Project) (Project, error) {
	if err := validateProject(p); err != nil {
		return Project{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = uuid.NewString()
	if p.Tags == nil {
		p.Tags = []string{}
	}
	s.projects = append(s.projects, p)
	s.bus.Publish(Event{Kind: EventCreate, Collection: ColProjects, ID: p.ID})
	return p, s.strategy.SaveProjects(ctx, s.projects)
}

// UpdateProject merges the non-nil patch fields into the matching project.
// Fields omitted from the patch are never altered.
func (s *Store) UpdateProject(ctx context.Context, id string, patch ProjectPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findProject(id)
	if i < 0 {
		return &NotFoundError{Collection: ColProjects, ID: id}
	}
	s.projects[i].apply(patch)
	s.bus.Publish(Event{Kind: EventUpdate, Collection: ColProjects, ID: id})
	return s.strategy.SaveProjects(ctx, s.projects)
}

// DeleteProject removes the project and every task referencing it, and
// persists both collections. Deleting an unknown id is a no-op: deletion is
// idempotent.
//
// Expenses referencing the project are kept, with their reference left
// dangling, so historical spend reports survive the deletion.
func (s *Store) DeleteProject(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findProject(id)
	if i < 0 {
		return nil
	}
	s.projects = slices.Delete(s.projects, i, i+1)

	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if t.ProjectID == id {
			s.bus.Publish(Event{Kind: EventDelete, Collection: ColTasks, ID: t.ID})
			continue
		}
		kept = append(kept, t)
	}
	s.tasks = kept
	s.bus.Publish(Event{Kind: EventDelete, Collection: ColProjects, ID: id})

	return errors.Join(
		s.strategy.SaveProjects(ctx, s.projects),
		s.strategy.SaveTasks(ctx, s.tasks),
	)
}

// AddTask assigns a fresh id, seeds the work logs and appends the task. If
// the referenced project exists, its hour total is raised by the task's
// starting ActualHours, which supports importing tasks with time already
// logged. An unknown project reference is not an error.
func (s *Store) AddTask(ctx context.Context, t Task) (Task, error) {
	if err := validateTask(t); err != nil {
		return Task{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	t.ID = uuid.NewString()
	if t.WorkLogs == nil {
		t.WorkLogs = []WorkLog{}
	}
	if t.Tags == nil {
		t.Tags = []string{}
	}
	s.tasks = append(s.tasks, t)
	s.bus.Publish(Event{Kind: EventCreate, Collection: ColTasks, ID: t.ID})

	err := s.strategy.SaveTasks(ctx, s.tasks)
	if !t.ActualHours.IsZero() {
		if perr := s.shiftProjectHours(ctx, t.ProjectID, t.ActualHours); perr != nil {
			err = errors.Join(err, perr)
		}
	}
	return t, err
}

// UpdateTask merges the patch into the matching task. When the patch changes
// ActualHours, the difference between new and old value is applied to the
// parent project's total: the delta rule guards against double counting when
// several fields are patched together, and handles downward corrections.
func (s *Store) UpdateTask(ctx context.Context, id string, patch TaskPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findTask(id)
	if i < 0 {
		return &NotFoundError{Collection: ColTasks, ID: id}
	}
	old := s.tasks[i].ActualHours
	s.tasks[i].apply(patch)
	s.bus.Publish(Event{Kind: EventUpdate, Collection: ColTasks, ID: id})

	err := s.strategy.SaveTasks(ctx, s.tasks)
	if patch.ActualHours != nil {
		delta := patch.ActualHours.Sub(old)
		if !delta.IsZero() {
			if perr := s.shiftProjectHours(ctx, s.tasks[i].ProjectID, delta); perr != nil {
				err = errors.Join(err, perr)
			}
		}
	}
	return err
}

// DeleteTask removes the task and subtracts its hours from the parent
// project, keeping the project total equal to the sum of its remaining
// tasks. Deleting an unknown id is a no-op.
func (s *Store) DeleteTask(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findTask(id)
	if i < 0 {
		return nil
	}
	t := s.tasks[i]
	s.tasks = slices.Delete(s.tasks, i, i+1)
	s.bus.Publish(Event{Kind: EventDelete, Collection: ColTasks, ID: id})

	err := s.strategy.SaveTasks(ctx, s.tasks)
	if !t.ActualHours.IsZero() {
		if perr := s.shiftProjectHours(ctx, t.ProjectID, Hours{}.Sub(t.ActualHours)); perr != nil {
			err = errors.Join(err, perr)
		}
	}
	return err
}

// AddExpense assigns a fresh id and appends the expense. If the expense is
// attributed to a known project, the project's actual cost is raised by the
// absolute amount, whatever the sign of the entry.
func (s *Store) AddExpense(ctx context.Context, e Expense) (Expense, error) {
	if err := validateExpense(e); err != nil {
		return Expense{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	e.ID = uuid.NewString()
	s.expenses = append(s.expenses, e)
	s.bus.Publish(Event{Kind: EventCreate, Collection: ColExpenses, ID: e.ID})

	err := s.strategy.SaveExpenses(ctx, s.expenses)
	if e.ProjectID != "" {
		if i := s.findProject(e.ProjectID); i >= 0 {
			s.projects[i].ActualCost = s.projects[i].ActualCost.Add(e.Amount.Abs())
			s.bus.Publish(Event{Kind: EventUpdate, Collection: ColProjects, ID: e.ProjectID})
			if perr := s.strategy.SaveProjects(ctx, s.projects); perr != nil {
				err = errors.Join(err, perr)
			}
		}
	}
	return e, err
}

// LogWork records hours worked on a task on a given day. Logging against a
// date that already holds an entry adds to that entry instead of creating a
// duplicate. The task's ActualHours and the parent project's total raise by
// the same amount in the same operation.
func (s *Store) LogWork(ctx context.Context, taskID string, on Date, hours Hours) error {
	if hours.IsNegative() {
		return &ValidationError{Field: "hours", Reason: "must not be negative"}
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findTask(taskID)
	if i < 0 {
		return &NotFoundError{Collection: ColTasks, ID: taskID}
	}
	s.tasks[i].addWork(on, hours)
	s.tasks[i].ActualHours = s.tasks[i].ActualHours.Add(hours)
	s.bus.Publish(Event{Kind: EventUpdate, Collection: ColTasks, ID: taskID})

	err := s.strategy.SaveTasks(ctx, s.tasks)
	if !hours.IsZero() {
		if perr := s.shiftProjectHours(ctx, s.tasks[i].ProjectID, hours); perr != nil {
			err = errors.Join(err, perr)
		}
	}
	return err
}

// shiftProjectHours applies an hour delta to a project's total and persists
// the collection. A dangling project reference is silently ignored.
// Callers must hold the lock.
func (s *Store) shiftProjectHours(ctx context.Context, projectID string, delta Hours) error {
	i := s.findProject(projectID)
	if i < 0 {
		return nil
	}
	s.projects[i].ActualHours = s.projects[i].ActualHours.Add(delta)
	s.bus.Publish(Event{Kind: EventUpdate, Collection: ColProjects, ID: projectID})
	return s.strategy.SaveProjects(ctx, s.projects)
}

func (s *Store) findProject(id string) int {
	return slices.IndexFunc(s.projects, func(p Project) bool { return p.ID == id })
}

func (s *Store) findTask(id string) int {
	return slices.IndexFunc(s.tasks, func(t Task) bool { return t.ID == id })
}

func cloneProjects(projects []Project) []Project {
	out := slices.Clone(projects)
	for i := range out {
		out[i].Tags = slices.Clone(out[i].Tags)
	}
	return out
}

func cloneTasks(tasks []Task) []Task {
	out := slices.Clone(tasks)
	for i := range out {
		out[i].Tags = slices.Clone(out[i].Tags)
		out[i].WorkLogs = slices.Clone(out[i].WorkLogs)
	}
	return out
}
