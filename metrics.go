package projectflow

// Derived metrics are pure functions over current entity state, recomputed on
// demand and never cached.

// Progress returns how far a project is through its hour estimate, clamped
// to [0, 100]. A project with no estimate reports 0, not a division error.
func Progress(p Project) Percent {
	if !p.EstimatedHours.IsZero() && !p.EstimatedHours.IsNegative() {
		ratio := 100 * p.ActualHours.AsFloat() / p.EstimatedHours.AsFloat()
		if ratio < 0 {
			return 0
		}
		if ratio > 100 {
			return 100
		}
		return Percent(ratio)
	}
	return 0
}

// ProfitMargin returns the project's profit as a percentage of its estimated
// cost, the revenue basis the finance view uses. A zero basis reports 0.
func ProfitMargin(p Project) Percent {
	if p.EstimatedCost.IsZero() {
		return 0
	}
	return Percent(100 * p.Profit.AsFloat() / p.EstimatedCost.AsFloat())
}

// WeeklyHours sums the work-log hours of all tasks from the most recent
// Sunday through today, inclusive.
func WeeklyHours(tasks []Task, today Date) Hours {
	window := NewRange(today.StartOf(Weekly), today)
	var sum Hours
	for _, t := range tasks {
		for _, wl := range t.WorkLogs {
			if window.Contains(wl.Date) {
				sum = sum.Add(wl.Hours)
			}
		}
	}
	return sum
}

// DayHours is one point of the weekly chart.
type DayHours struct {
	Date  Date
	Hours Hours
}

// DailyHours returns the last 7 calendar days ending today, each with the
// hours logged on exactly that date across all tasks.
func DailyHours(tasks []Task, today Date) []DayHours {
	series := make([]DayHours, 0, 7)
	for on := range NewRange(today.Add(-6), today).Days() {
		var sum Hours
		for _, t := range tasks {
			sum = sum.Add(t.logged(on))
		}
		series = append(series, DayHours{Date: on, Hours: sum})
	}
	return series
}

// Totals is the portfolio-level rollup shown on the dashboard.
type Totals struct {
	Projects int   // count of all projects
	Active   int   // projects not labeled "Completed"
	Profit   Money // sum of caller-supplied project profits
	Spend    Money // sum of absolute expense amounts
}

// Rollup computes the dashboard totals from current collections.
func Rollup(projects []Project, expenses []Expense) Totals {
	var t Totals
	t.Projects = len(projects)
	for _, p := range projects {
		if p.Status != "Completed" {
			t.Active++
		}
		t.Profit = t.Profit.Add(p.Profit)
	}
	for _, e := range expenses {
		t.Spend = t.Spend.Add(e.Amount.Abs())
	}
	return t
}
