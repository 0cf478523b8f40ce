package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/projectflow/projectflow"
)

type addExpenseCmd struct {
	project     string
	description string
	amount      float64
	date        string
}

func (*addExpenseCmd) Name() string     { return "add-expense" }
func (*addExpenseCmd) Synopsis() string { return "record an expense" }
func (*addExpenseCmd) Usage() string {
	return `pfw add-expense -desc <description> -amount <amount> [-project <project-id>] [-d <date>]

  Records an expense. When a project is given, its actual cost is raised by
  the absolute amount.
`
}

func (c *addExpenseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.project, "project", "", "Project id the expense is attributed to (optional).")
	f.StringVar(&c.description, "desc", "", "Expense description (required).")
	f.Float64Var(&c.amount, "amount", 0, "Expense amount.")
	f.StringVar(&c.date, "d", "0d", "Expense date (defaults to today).")
}

func (c *addExpenseCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	e, err := store.AddExpense(ctx, projectflow.Expense{
		ProjectID:   c.project,
		Description: c.description,
		Amount:      projectflow.M(c.amount, Currency()),
		Date:        on,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error recording expense: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded expense %q (%s) on %s\n", e.Description, e.Amount, e.Date)
	return subcommands.ExitSuccess
}
