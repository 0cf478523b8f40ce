package projectflow

import (
	"context"
	"io"
	"log"
	"os"
	"path/filepath"
)

// Collection names the durable representation of one entity type. The remote
// document database uses the same names for its collections.
type Collection string

const (
	ColProjects Collection = "projects"
	ColTasks    Collection = "tasks"
	ColExpenses Collection = "expenses"
)

// Snapshot is the full persisted state of a store.
type Snapshot struct {
	Projects []Project
	Tasks    []Task
	Expenses []Expense
}

// Strategy keeps the store's collections durable across restarts.
//
// Load is called once at store initialization; absent or corrupt data must
// degrade to empty collections, never fail the boot. Each Save overwrites the
// durable representation of one whole collection; a strategy backed by a
// per-document service is free to translate that into finer-grained calls.
type Strategy interface {
	Load(ctx context.Context) (Snapshot, error)
	SaveProjects(ctx context.Context, projects []Project) error
	SaveTasks(ctx context.Context, tasks []Task) error
	SaveExpenses(ctx context.Context, expenses []Expense) error
}

// MemoryStrategy is the no-op strategy: the store lives purely in memory.
type MemoryStrategy struct{}

func (MemoryStrategy) Load(context.Context) (Snapshot, error)        { return Snapshot{}, nil }
func (MemoryStrategy) SaveProjects(context.Context, []Project) error { return nil }
func (MemoryStrategy) SaveTasks(context.Context, []Task) error       { return nil }
func (MemoryStrategy) SaveExpenses(context.Context, []Expense) error { return nil }

// FileStrategy persists each collection as a JSONL file in a directory, one
// entity per line, in a way that is still human-readable and git-friendly.
type FileStrategy struct {
	Dir string
}

// NewFileStrategy creates the directory if needed and returns the strategy.
func NewFileStrategy(dir string) (*FileStrategy, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, &PersistenceError{Op: "init", Collection: "", Err: err}
	}
	return &FileStrategy{Dir: dir}, nil
}

func (s *FileStrategy) path(col Collection) string {
	return filepath.Join(s.Dir, string(col)+".jsonl")
}

// Load reads all three collection files. A missing file is an empty
// collection; a corrupt file is logged and treated as empty, because losing
// the session to a bad line would be worse than starting that collection fresh.
func (s *FileStrategy) Load(ctx context.Context) (Snapshot, error) {
	var snap Snapshot
	snap.Projects = loadCollection(s.path(ColProjects), DecodeProjects)
	snap.Tasks = loadCollection(s.path(ColTasks), DecodeTasks)
	snap.Expenses = loadCollection(s.path(ColExpenses), DecodeExpenses)
	return snap, nil
}

// loadCollection opens and decodes one collection file, degrading to nil on
// any failure.
func loadCollection[T any](path string, decode func(r io.Reader) ([]T, error)) []T {
	f, err := os.Open(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("cannot open %q, starting empty: %v", path, err)
		}
		return nil
	}
	defer f.Close()

	list, err := decode(f)
	if err != nil {
		log.Printf("cannot decode %q, starting empty: %v", path, err)
		return nil
	}
	return list
}

// saveCollection overwrites one collection file with the full collection.
func saveCollection[T any](path string, col Collection, list []T, encode func(w io.Writer, list []T) error) error {
	f, err := os.Create(path)
	if err != nil {
		return &PersistenceError{Op: "save", Collection: col, Err: err}
	}
	defer f.Close()

	if err := encode(f, list); err != nil {
		return &PersistenceError{Op: "save", Collection: col, Err: err}
	}
	return nil
}

func (s *FileStrategy) SaveProjects(ctx context.Context, projects []Project) error {
	return saveCollection(s.path(ColProjects), ColProjects, projects, EncodeProjects)
}

func (s *FileStrategy) SaveTasks(ctx context.Context, tasks []Task) error {
	return saveCollection(s.path(ColTasks), ColTasks, tasks, EncodeTasks)
}

func (s *FileStrategy) SaveExpenses(ctx context.Context, expenses []Expense) error {
	return saveCollection(s.path(ColExpenses), ColExpenses, expenses, EncodeExpenses)
}
