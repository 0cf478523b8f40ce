package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/projectflow/projectflow"
)

type updateTaskCmd struct {
	id          string
	title       string
	description string
	status      string
	estHours    float64
	hours       float64
	due         string
	tags        string
}

func (*updateTaskCmd) Name() string     { return "update-task" }
func (*updateTaskCmd) Synopsis() string { return "update fields of an existing task" }
func (*updateTaskCmd) Usage() string {
	return `pfw update-task -id <id> [-status <status>] [-hours <h>] ...

  Updates only the fields whose flags are given. Changing -hours moves the
  parent project's total by the difference.
`
}

func (c *updateTaskCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Task id (required).")
	f.StringVar(&c.title, "title", "", "Task title.")
	f.StringVar(&c.description, "desc", "", "Task description.")
	f.StringVar(&c.status, "status", "", "Task status (todo, inprogress, review, done).")
	f.Float64Var(&c.estHours, "est-hours", 0, "Estimated hours.")
	f.Float64Var(&c.hours, "hours", 0, "Actual hours, replacing the current value.")
	f.StringVar(&c.due, "due", "", "Due date.")
	f.StringVar(&c.tags, "tags", "", "Comma-separated tags, replacing the current list.")
}

func (c *updateTaskCmd) patch(f *flag.FlagSet) (projectflow.TaskPatch, error) {
	var patch projectflow.TaskPatch
	var err error
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "title":
			patch.Title = &c.title
		case "desc":
			patch.Description = &c.description
		case "status":
			status, perr := projectflow.ParseTaskStatus(c.status)
			if perr != nil {
				err = perr
				return
			}
			patch.Status = &status
		case "est-hours":
			h := projectflow.H(c.estHours)
			patch.EstimatedHours = &h
		case "hours":
			h := projectflow.H(c.hours)
			patch.ActualHours = &h
		case "due":
			d, perr := projectflow.ParseDate(c.due)
			if perr != nil {
				err = perr
				return
			}
			patch.DueDate = &d
		case "tags":
			tags := splitTags(c.tags)
			patch.Tags = &tags
		}
	})
	return patch, err
}

func (c *updateTaskCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required.")
		return subcommands.ExitUsageError
	}
	patch, err := c.patch(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	store, err := OpenStore(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := store.UpdateTask(ctx, c.id, patch); err != nil {
		fmt.Fprintf(os.Stderr, "Error updating task: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Updated task %s\n", c.id)
	return subcommands.ExitSuccess
}
