package projectflow

import "slices"

// Project is a client engagement with estimated and actual hours and costs.
//
// ActualHours and ActualCost are maintained incrementally by the Store: every
// task or expense mutation applies its delta here rather than re-summing the
// whole collection.
type Project struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Client         string   `json:"client"`
	Status         string   `json:"status"` // free-form label, e.g. "Active", "Completed"
	Color          string   `json:"color"`
	Tags           []string `json:"tags"`
	Notes          string   `json:"notes,omitempty"`
	EstimatedHours Hours    `json:"estimatedHours"`
	ActualHours    Hours    `json:"actualHours"`
	EstimatedCost  Money    `json:"estimatedCost"`
	ActualCost     Money    `json:"actualCost"`
	// Profit is the caller-supplied margin estimate for the engagement. It is
	// not derived from costs and never recomputed.
	Profit Money `json:"profit"`
}

// Equal reports field-for-field equality.
func (p Project) Equal(q Project) bool {
	return p.ID == q.ID && p.Name == q.Name && p.Client == q.Client &&
		p.Status == q.Status && p.Color == q.Color && slices.Equal(p.Tags, q.Tags) &&
		p.Notes == q.Notes && p.EstimatedHours.Equal(q.EstimatedHours) &&
		p.ActualHours.Equal(q.ActualHours) && p.EstimatedCost.Equal(q.EstimatedCost) &&
		p.ActualCost.Equal(q.ActualCost) && p.Profit.Equal(q.Profit)
}

// ProjectPatch is a partial update of a Project. Nil fields are left untouched.
type ProjectPatch struct {
	Name           *string
	Client         *string
	Status         *string
	Color          *string
	Tags           *[]string
	Notes          *string
	EstimatedHours *Hours
	ActualHours    *Hours
	EstimatedCost  *Money
	ActualCost     *Money
	Profit         *Money
}

// apply merges the non-nil patch fields into the project.
func (p *Project) apply(patch ProjectPatch) {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Client != nil {
		p.Client = *patch.Client
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	if patch.Color != nil {
		p.Color = *patch.Color
	}
	if patch.Tags != nil {
		p.Tags = *patch.Tags
	}
	if patch.Notes != nil {
		p.Notes = *patch.Notes
	}
	if patch.EstimatedHours != nil {
		p.EstimatedHours = *patch.EstimatedHours
	}
	if patch.ActualHours != nil {
		p.ActualHours = *patch.ActualHours
	}
	if patch.EstimatedCost != nil {
		p.EstimatedCost = *patch.EstimatedCost
	}
	if patch.ActualCost != nil {
		p.ActualCost = *patch.ActualCost
	}
	if patch.Profit != nil {
		p.Profit = *patch.Profit
	}
}
