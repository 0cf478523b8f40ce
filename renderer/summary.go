package renderer

import (
	"github.com/projectflow/projectflow"
)

// Summary renders the dashboard rollup followed by the per-project financial
// breakdown.
func Summary(totals projectflow.Totals, projects []projectflow.Project) string {
	b := newBuilder()
	b.Printf("# Summary\n\n")
	b.Printf("| Metric | Value |\n")
	b.Printf("|:---|---:|\n")
	b.Printf("| Projects | %d |\n", totals.Projects)
	b.Printf("| Active | %d |\n", totals.Active)
	b.Printf("| Total Profit | %s |\n", totals.Profit.SignedString())
	b.Printf("| Total Spend | %s |\n", totals.Spend)
	b.Printf("\n")

	if len(projects) == 0 {
		return b.String()
	}
	b.Printf("## Finances\n\n")
	b.Printf("| Project | Budget | Spent | Profit | Margin |\n")
	b.Printf("|:---|---:|---:|---:|---:|\n")
	for _, p := range projects {
		b.Printf("| %s | %s | %s | %s | %s |\n",
			p.Name, p.EstimatedCost, p.ActualCost,
			p.Profit.SignedString(), projectflow.ProfitMargin(p))
	}
	b.Printf("\n")
	return b.String()
}
