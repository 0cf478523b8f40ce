package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type deleteTaskCmd struct {
	id string
}

func (*deleteTaskCmd) Name() string     { return "delete-task" }
func (*deleteTaskCmd) Synopsis() string { return "delete a task" }
func (*deleteTaskCmd) Usage() string {
	return `pfw delete-task -id <id>

  Deletes the task and subtracts its hours from the parent project.
`
}

func (c *deleteTaskCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Task id (required).")
}

func (c *deleteTaskCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required.")
		return subcommands.ExitUsageError
	}
	store, err := OpenStore(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := store.DeleteTask(ctx, c.id); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting task: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted task %s\n", c.id)
	return subcommands.ExitSuccess
}
