package domain

// InterestParams holds the inputs shared by the projection calculations.
// AnnualRate is a decimal fraction (0.05 = 5%).
type InterestParams struct {
	Principal        float64
	AnnualRate       float64
	CompoundsPerYear int
	Years            float64
}

type InterestResult struct {
	FinalAmount         float64
	TotalInterest       float64
	Principal           float64
	EffectiveAnnualRate float64
}

// BreakdownEntry is one row of a year-by-year projection. Year runs from 1
// to ceil(params.Years) with no gaps; the last entry is computed with the
// exact fractional Years value.
type BreakdownEntry struct {
	Year   int
	Result InterestResult
}

type Breakdown []BreakdownEntry

// TaxScenarioInput describes a weekly-compounded projection where capital
// gains are taxed at the end of every 52-week year. Rates are decimal
// fractions.
type TaxScenarioInput struct {
	Principal          float64
	WeeklyRate         float64
	Weeks              int
	WeeklyContribution float64
	CapitalGainsTax    float64
}

type TaxScenarioResult struct {
	FinalAfterTax   float64
	ProfitBeforeTax float64
	TotalTaxPaid    float64
}

// ProjectionRecord is a saved calculation from the current session.
type ProjectionRecord struct {
	ID     string
	Kind   string
	Result InterestResult
}
