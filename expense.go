package projectflow

// Expense is a cost entry optionally attributed to a project.
//
// Amount keeps its sign as entered; cost rollups and displays use the
// absolute value. An empty ProjectID means an unattributed overhead expense.
//
// Expenses survive the deletion of their project: the reference is kept
// dangling so historical spend reports remain complete.
type Expense struct {
	ID          string `json:"id"`
	ProjectID   string `json:"projectId,omitempty"`
	Description string `json:"description"`
	Amount      Money  `json:"amount"`
	Date        Date   `json:"date"`
}

// Equal reports field-for-field equality.
func (e Expense) Equal(f Expense) bool {
	return e.ID == f.ID && e.ProjectID == f.ProjectID && e.Description == f.Description &&
		e.Amount.Equal(f.Amount) && e.Date == f.Date
}
