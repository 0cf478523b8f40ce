package renderer

import (
	"github.com/projectflow/projectflow"
)

// column order and headings of the board.
var boardColumns = []struct {
	status projectflow.TaskStatus
	title  string
}{
	{projectflow.StatusTodo, "To Do"},
	{projectflow.StatusInProgress, "In Progress"},
	{projectflow.StatusReview, "Review"},
	{projectflow.StatusDone, "Done"},
}

// Board renders tasks grouped by status, one section per column. The project
// list resolves task references to readable names.
func Board(tasks []projectflow.Task, projects []projectflow.Project) string {
	names := make(map[string]string, len(projects))
	for _, p := range projects {
		names[p.ID] = p.Name
	}

	b := newBuilder()
	b.Printf("# Board\n\n")
	for _, col := range boardColumns {
		b.Printf("## %s\n\n", col.title)
		count := 0
		for _, t := range tasks {
			if t.Status != col.status {
				continue
			}
			count++
			project := names[t.ProjectID]
			if project == "" {
				project = t.ProjectID
			}
			b.Printf("- **%s** (%s", t.Title, project)
			if t.DueDate != nil {
				b.Printf(", due %s", *t.DueDate)
			}
			b.Printf(") %s h\n", t.ActualHours)
		}
		if count == 0 {
			b.Printf("*empty*\n")
		}
		b.Printf("\n")
	}
	return b.String()
}
