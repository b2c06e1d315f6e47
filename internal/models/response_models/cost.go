package response_models

// CostRow is one line of the cost guide. Label is nil when the source
// line had no colon-delimited key; such rows carry the whole line in
// Value and are excluded from the breakdown display.
type CostRow struct {
	Label *string `json:"label"`
	Value string  `json:"value"`
}

// CostSummary separates the designated total row from the breakdown
// rows. Total is nil when no label contains "total" or "estimated".
type CostSummary struct {
	Total     *CostRow  `json:"total,omitempty"`
	Breakdown []CostRow `json:"breakdown"`
}
