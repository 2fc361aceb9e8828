package service

const (
	MaxPrincipal           = 1_000_000_000.0 // per calculation
	MaxTargetAmount        = 1_000_000_000.0
	MaxAnnualRate          = 10.0 // 1000% annual, as a decimal fraction
	MaxCompoundsPerYear    = 366  // daily on a leap year
	MaxYears               = 200.0
	MaxMonthlyContribution = 1_000_000.0

	// Trader scenario limits
	WeeksPerYear          = 52
	MaxWeeks              = 200 * 52
	MaxWeeklyContribution = 1_000_000.0
)
