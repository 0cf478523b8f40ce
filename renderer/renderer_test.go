package renderer

import (
	"strings"
	"testing"

	"github.com/projectflow/projectflow"
)

func TestProjects(t *testing.T) {
	md := Projects([]projectflow.Project{
		{
			Name:           "E-commerce Redesign",
			Client:         "TechCorp Inc.",
			Status:         "Active",
			EstimatedHours: projectflow.H(80),
			ActualHours:    projectflow.H(40),
		},
	})
	for _, want := range []string{"# Projects", "| E-commerce Redesign |", "50.00%"} {
		if !strings.Contains(md, want) {
			t.Errorf("Projects() missing %q in:\n%s", want, md)
		}
	}
}

func TestProjectsEmpty(t *testing.T) {
	md := Projects(nil)
	if !strings.Contains(md, "No projects yet") {
		t.Errorf("Projects(nil) missing empty notice in:\n%s", md)
	}
}

func TestBoard(t *testing.T) {
	projects := []projectflow.Project{{ID: "p1", Name: "E-commerce Redesign"}}
	due := projectflow.MustParseDate("2025-04-20")
	tasks := []projectflow.Task{
		{Title: "Mockups", ProjectID: "p1", Status: projectflow.StatusInProgress, DueDate: &due},
		{Title: "Orphan chore", ProjectID: "gone", Status: projectflow.StatusTodo},
	}
	md := Board(tasks, projects)
	for _, want := range []string{
		"## To Do", "## In Progress", "## Review", "## Done",
		"**Mockups** (E-commerce Redesign, due 2025-04-20)",
		"**Orphan chore** (gone)",
		"*empty*",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("Board() missing %q in:\n%s", want, md)
		}
	}
}

func TestSummary(t *testing.T) {
	totals := projectflow.Totals{Projects: 2, Active: 1}
	projects := []projectflow.Project{
		{Name: "E-commerce Redesign", EstimatedCost: projectflow.M(4000, "USD"), Profit: projectflow.M(3200, "USD")},
	}
	md := Summary(totals, projects)
	for _, want := range []string{"| Projects | 2 |", "| Active | 1 |", "## Finances", "80.00%"} {
		if !strings.Contains(md, want) {
			t.Errorf("Summary() missing %q in:\n%s", want, md)
		}
	}
}

func TestWeekly(t *testing.T) {
	on := projectflow.MustParseDate("2025-04-09")
	series := []projectflow.DayHours{
		{Date: projectflow.MustParseDate("2025-04-08"), Hours: projectflow.H(4)},
		{Date: projectflow.MustParseDate("2025-04-09"), Hours: projectflow.H(2)},
	}
	md := Weekly(on, projectflow.H(6), series)
	if !strings.Contains(md, "# Week of 2025-04-06") {
		t.Errorf("Weekly() missing week heading in:\n%s", md)
	}
	if !strings.Contains(md, "█") {
		t.Errorf("Weekly() missing chart bars in:\n%s", md)
	}
}

func TestBar(t *testing.T) {
	if got := bar(0, 8); got != "" {
		t.Errorf("bar(0, 8) = %q, want empty", got)
	}
	if got := bar(8, 8); len([]rune(got)) != barWidth {
		t.Errorf("bar(8, 8) = %d runes, want %d", len([]rune(got)), barWidth)
	}
	if got := bar(0.1, 8); len([]rune(got)) != 1 {
		t.Errorf("bar(0.1, 8) = %q, want a single rune", got)
	}
}
