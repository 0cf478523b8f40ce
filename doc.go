// Package projectflow implements the state model of a freelance project
// dashboard: projects, kanban tasks, per-day work logs and expenses, with the
// mutation rules that keep the derived totals (actual hours, actual cost)
// consistent across the entity graph, pure derived metrics for the dashboard
// views, and interchangeable persistence strategies (in-memory, local files,
// remote document store).
package projectflow
