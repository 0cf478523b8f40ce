package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/projectflow/projectflow"
)

type updateProjectCmd struct {
	id       string
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

func (*updateProjectCmd) Name() string     { return "update-project" }
func (*updateProjectCmd) Synopsis() string { return "update fields of an existing project" }
func (*updateProjectCmd) Usage() string {
	return `pfw update-project -id <id> [-name <name>] [-status <status>] ...

  Updates only the fields whose flags are given; everything else is left
  untouched.
`
}

func (c *updateProjectCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Project id (required).")
	f.StringVar(&c.name, "name", "", "Project name.")
	f.StringVar(&c.client, "client", "", "Client name.")
	f.StringVar(&c.status, "status", "", "Project status label.")
	f.StringVar(&c.color, "color", "", "Display color.")
	f.StringVar(&c.tags, "tags", "", "Comma-separated tags, replacing the current list.")
	f.StringVar(&c.notes, "notes", "", "Free-form notes.")
	f.Float64Var(&c.estHours, "est-hours", 0, "Estimated hours.")
	f.Float64Var(&c.estCost, "est-cost", 0, "Estimated cost.")
	f.Float64Var(&c.profit, "profit", 0, "Expected profit.")
}

// patch builds a partial update from the flags the user actually set.
func (c *updateProjectCmd) patch(f *flag.FlagSet) projectflow.ProjectPatch {
	var patch projectflow.ProjectPatch
	cur := Currency()
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "name":
			patch.Name = &c.name
		case "client":
			patch.Client = &c.client
		case "status":
			patch.Status = &c.status
		case "color":
			patch.Color = &c.color
		case "tags":
			tags := splitTags(c.tags)
			patch.Tags = &tags
		case "notes":
			patch.Notes = &c.notes
		case "est-hours":
			h := projectflow.H(c.estHours)
			patch.EstimatedHours = &h
		case "est-cost":
			m := projectflow.M(c.estCost, cur)
			patch.EstimatedCost = &m
		case "profit":
			m := projectflow.M(c.profit, cur)
			patch.Profit = &m
		}
	})
	return patch
}

func (c *updateProjectCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required.")
		return subcommands.ExitUsageError
	}
	store, err := OpenStore(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := store.UpdateProject(ctx, c.id, c.patch(f)); err != nil {
		fmt.Fprintf(os.Stderr, "Error updating project: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Updated project %s\n", c.id)
	return subcommands.ExitSuccess
}
