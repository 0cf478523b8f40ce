package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/projectflow/projectflow"
	"github.com/projectflow/projectflow/renderer"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the dashboard financial summary" }
func (*summaryCmd) Usage() string {
	return `pfw summary

  Displays the portfolio rollup: project counts, total profit, total spend,
  and the per-project financial breakdown.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {}

func (c *summaryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	projects := store.Projects()
	totals := projectflow.Rollup(projects, store.Expenses())
	printMarkdown(renderer.Summary(totals, projects))
	return subcommands.ExitSuccess
}
