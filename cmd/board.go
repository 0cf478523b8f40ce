package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/projectflow/projectflow/renderer"
)

type boardCmd struct {
	project string
}

func (*boardCmd) Name() string     { return "board" }
func (*boardCmd) Synopsis() string { return "display the task board grouped by status" }
func (*boardCmd) Usage() string {
	return `pfw board [-project <project-id>]

  Displays all tasks grouped into todo, inprogress, review and done sections,
  optionally restricted to one project.
`
}

func (c *boardCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.project, "project", "", "Only show tasks of this project.")
}

func (c *boardCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	tasks := store.Tasks()
	if c.project != "" {
		tasks = store.TasksByProject(c.project)
	}
	printMarkdown(renderer.Board(tasks, store.Projects()))
	return subcommands.ExitSuccess
}
