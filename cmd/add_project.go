package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/projectflow/projectflow"
)

type addProjectCmd struct {
	name     string
	client   string
	status   string
	color    string
	tags     string
	notes    string
	estHours float64
	estCost  float64
	profit   float64
}

func (*addProjectCmd) Name() string     { return "add-project" }
func (*addProjectCmd) Synopsis() string { return "create a new project" }
func (*addProjectCmd) Usage() string {
	return `pfw add-project -name <name> -client <client> [-status <status>] [-est-hours <h>] [-est-cost <amount>] [-profit <amount>]

  Creates a new project and prints its assigned id.
`
}

func (c *addProjectCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Project name (required).")
	f.StringVar(&c.client, "client", "", "Client name (required).")
	f.StringVar(&c.status, "status", "Active", "Project status label.")
	f.StringVar(&c.color, "color", "", "Display color, e.g. #6366f1.")
	f.StringVar(&c.tags, "tags", "", "Comma-separated tags.")
	f.StringVar(&c.notes, "notes", "", "Free-form notes.")
	f.Float64Var(&c.estHours, "est-hours", 0, "Estimated hours.")
	f.Float64Var(&c.estCost, "est-cost", 0, "Estimated cost.")
	f.Float64Var(&c.profit, "profit", 0, "Expected profit.")
}

func (c *addProjectCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	cur := Currency()
	p, err := store.AddProject(ctx, projectflow.Project{
		Name:           c.name,
		Client:         c.client,
		Status:         c.status,
		Color:          c.color,
		Tags:           splitTags(c.tags),
		Notes:          c.notes,
		EstimatedHours: projectflow.H(c.estHours),
		EstimatedCost:  projectflow.M(c.estCost, cur),
		Profit:         projectflow.M(c.profit, cur),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating project: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Created project %q (%s)\n", p.Name, p.ID)
	return subcommands.ExitSuccess
}

// splitTags turns a comma-separated flag value into a clean tag list.
func splitTags(s string) []string {
	if s == "" {
		return nil
	}
	var tags []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
