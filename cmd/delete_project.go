package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type deleteProjectCmd struct {
	id string
}

func (*deleteProjectCmd) Name() string { return "delete-project" }
func (*deleteProjectCmd) Synopsis() string {
	return "delete a project and all of its tasks"
}
func (*deleteProjectCmd) Usage() string {
	return `pfw delete-project -id <id>

  Deletes the project and every task attached to it. Expenses attributed to
  the project are kept for historical reports.
`
}

func (c *deleteProjectCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Project id (required).")
}

func (c *deleteProjectCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required.")
		return subcommands.ExitUsageError
	}
	store, err := OpenStore(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := store.DeleteProject(ctx, c.id); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting project: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted project %s\n", c.id)
	return subcommands.ExitSuccess
}
