package utils

const (
	// Split policies
	SplitTypeEqual      = "EQUAL"
	SplitTypeExact      = "EXACT"
	SplitTypePercentage = "PERCENTAGE"

	// Settlement statuses
	SettlementPending = "PENDING"
	SettlementSettled = "SETTLED"

	// Precision for monetary calculations
	MoneyPrecision = 100.0

	// Epsilon is the tolerance for monetary comparisons; amounts within one
	// cent of each other are treated as equal.
	Epsilon = 0.01
)
