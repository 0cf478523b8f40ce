package renderer

import (
	"github.com/projectflow/projectflow"
)

// Projects renders the project list as a markdown table with hour progress.
func Projects(projects []projectflow.Project) string {
	b := newBuilder()
	b.Printf("# Projects\n\n")
	if len(projects) == 0 {
		b.Printf("No projects yet. Create one with `pfw add-project`.\n")
		return b.String()
	}

	b.Printf("| Name | Client | Status | Progress | Hours | Cost |\n")
	b.Printf("|:---|:---|:---|---:|---:|---:|\n")
	for _, p := range projects {
		b.Printf("| %s | %s | %s | %s | %s / %s | %s |\n",
			p.Name, p.Client, p.Status,
			projectflow.Progress(p),
			p.ActualHours, p.EstimatedHours,
			p.ActualCost)
	}
	b.Printf("\n")
	return b.String()
}
