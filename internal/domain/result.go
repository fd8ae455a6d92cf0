package domain

import "github.com/shopspring/decimal"

// ProjectionResult is the outcome of a sufficiency evaluation: whether the
// current lump sum, left to compound untouched, covers the retirement target.
type ProjectionResult struct {
	YearsToGrow               int             `json:"years_to_grow"`
	AnnualExpenseAtRetirement decimal.Decimal `json:"annual_expense_at_retirement"`
	TargetNumber              decimal.Decimal `json:"target_number"`
	ProjectedValue            decimal.Decimal `json:"projected_value"`
	SurplusOrShortfall        decimal.Decimal `json:"surplus_or_shortfall"`
	IsSufficient              bool            `json:"is_sufficient"`
}

// CoastAgeResult reports the earliest age at which monthly contributions can
// stop while the accumulated amount still grows to the target by retirement.
type CoastAgeResult struct {
	CoastAge              int             `json:"coast_age"`
	AccumulatedAtCoastAge decimal.Decimal `json:"accumulated_at_coast_age"`
	ProjectedAtRetirement decimal.Decimal `json:"projected_at_retirement"`
	TargetNumber          decimal.Decimal `json:"target_number"`
}

// TargetReached reports whether the projected value actually meets the
// target. When the solver exhausts the age range it returns the retirement
// age itself, and this is how callers tell that fallback from a genuine hit.
func (r CoastAgeResult) TargetReached() bool {
	return r.ProjectedAtRetirement.GreaterThanOrEqual(r.TargetNumber)
}
