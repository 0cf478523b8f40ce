package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/projectflow/projectflow"
)

type addTaskCmd struct {
	project     string
	title       string
	description string
	status      string
	estHours    float64
	due         string
	tags        string
}

func (*addTaskCmd) Name() string     { return "add-task" }
func (*addTaskCmd) Synopsis() string { return "create a new task on a project" }
func (*addTaskCmd) Usage() string {
	return `pfw add-task -project <project-id> -title <title> [-status todo|inprogress|review|done] [-due <date>]

  Creates a new task and prints its assigned id.
`
}

func (c *addTaskCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.project, "project", "", "Project id the task belongs to (required).")
	f.StringVar(&c.title, "title", "", "Task title (required).")
	f.StringVar(&c.description, "desc", "", "Task description.")
	f.StringVar(&c.status, "status", "todo", "Task status.")
	f.Float64Var(&c.estHours, "est-hours", 0, "Estimated hours.")
	f.StringVar(&c.due, "due", "", "Due date. See the user manual for supported date formats.")
	f.StringVar(&c.tags, "tags", "", "Comma-separated tags.")
}

func (c *addTaskCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	status, err := projectflow.ParseTaskStatus(c.status)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	var due *projectflow.Date
	if c.due != "" {
		d, err := projectflow.ParseDate(c.due)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing due date: %v\n", err)
			return subcommands.ExitUsageError
		}
		due = &d
	}

	store, err := OpenStore(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	t, err := store.AddTask(ctx, projectflow.Task{
		ProjectID:      c.project,
		Title:          c.title,
		Description:    c.description,
		Status:         status,
		EstimatedHours: projectflow.H(c.estHours),
		DueDate:        due,
		Tags:           splitTags(c.tags),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating task: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Created task %q (%s)\n", t.Title, t.ID)
	return subcommands.ExitSuccess
}
