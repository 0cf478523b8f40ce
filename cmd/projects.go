package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/projectflow/projectflow/renderer"
)

type projectsCmd struct {
	status string
}

func (*projectsCmd) Name() string     { return "projects" }
func (*projectsCmd) Synopsis() string { return "list projects with their progress" }
func (*projectsCmd) Usage() string {
	return `pfw projects [-status <status>]

  Lists projects with hour progress and cost, optionally filtered by status.
`
}

func (c *projectsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.status, "status", "", "Only show projects with this status label.")
}

func (c *projectsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	projects := store.Projects()
	if c.status != "" {
		kept := projects[:0]
		for _, p := range projects {
			if p.Status == c.status {
				kept = append(kept, p)
			}
		}
		projects = kept
	}
	printMarkdown(renderer.Projects(projects))
	return subcommands.ExitSuccess
}
