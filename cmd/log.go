package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/projectflow/projectflow"
)

type logCmd struct {
	task  string
	date  string
	hours float64
}

func (*logCmd) Name() string     { return "log" }
func (*logCmd) Synopsis() string { return "log hours worked on a task" }
func (*logCmd) Usage() string {
	return `pfw log -task <task-id> -hours <h> [-d <date>]

  Logs hours on a task for a given day. Logging twice on the same day adds
  to that day's entry instead of creating a duplicate.
`
}

func (c *logCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.task, "task", "", "Task id (required).")
	f.Float64Var(&c.hours, "hours", 0, "Hours worked.")
	f.StringVar(&c.date, "d", "0d", "Day the work happened (defaults to today).")
}

func (c *logCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.task == "" {
		fmt.Fprintln(os.Stderr, "Error: -task is required.")
		return subcommands.ExitUsageError
	}
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
	if err := store.LogWork(ctx, c.task, on, projectflow.H(c.hours)); err != nil {
		fmt.Fprintf(os.Stderr, "Error logging work: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Logged %v hours on task %s for %s\n", c.hours, c.task, on)
	return subcommands.ExitSuccess
}
