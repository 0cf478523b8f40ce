package projectflow

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
)

// Collections persist as JSONL streams, one entity per line, so diffs stay
// line-oriented and a damaged line is locatable.

// decodeLines decodes every non-empty line of a JSONL stream into T.
func decodeLines[T any](r io.Reader, what Collection) ([]T, error) {
	var list []T
	scanner := bufio.NewScanner(r)
	i := 0
	for scanner.Scan() {
		i++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue // Skip empty lines
		}
		var v T
		if err := json.Unmarshal(line, &v); err != nil {
			return nil, fmt.Errorf("format error in %s line %d: %w", what, i, err)
		}
		list = append(list, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading %s: %w", what, err)
	}
	return list, nil
}

// encodeLines writes each entity as a JSON line.
func encodeLines[T any](w io.Writer, list []T, what Collection) error {
	for _, v := range list {
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("cannot marshal %s entry: %w", what, err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("cannot write %s entry: %w", what, err)
		}
	}
	return nil
}

// DecodeProjects decodes a JSONL stream of projects.
func DecodeProjects(r io.Reader) ([]Project, error) { return decodeLines[Project](r, ColProjects) }

// DecodeTasks decodes a JSONL stream of tasks.
func DecodeTasks(r io.Reader) ([]Task, error) { return decodeLines[Task](r, ColTasks) }

// DecodeExpenses decodes a JSONL stream of expenses.
func DecodeExpenses(r io.Reader) ([]Expense, error) { return decodeLines[Expense](r, ColExpenses) }

// EncodeProjects persists projects to an io.Writer in JSONL format.
func EncodeProjects(w io.Writer, projects []Project) error {
	return encodeLines(w, projects, ColProjects)
}

// EncodeTasks persists tasks to an io.Writer in JSONL format.
func EncodeTasks(w io.Writer, tasks []Task) error { return encodeLines(w, tasks, ColTasks) }

// EncodeExpenses persists expenses to an io.Writer in JSONL format.
func EncodeExpenses(w io.Writer, expenses []Expense) error {
	return encodeLines(w, expenses, ColExpenses)
}
