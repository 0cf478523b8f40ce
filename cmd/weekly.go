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

type weeklyCmd struct {
	date string
}

func (*weeklyCmd) Name() string     { return "weekly" }
func (*weeklyCmd) Synopsis() string { return "display the weekly time report" }
func (*weeklyCmd) Usage() string {
	return `pfw weekly [-d <date>]

  Displays the hours logged this week (starting Sunday) and a daily breakdown
  of the last seven days.
`
}

func (c *weeklyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "0d", "End date for the report (defaults to today).")
}

func (c *weeklyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := projectflow.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	store, err := OpenStore(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	tasks := store.Tasks()
	md := renderer.Weekly(on, projectflow.WeeklyHours(tasks, on), projectflow.DailyHours(tasks, on))
	printMarkdown(md)
	return subcommands.ExitSuccess
}
