package service

import (
	"fmt"

	"interest-agent/domain"
)

// InsightService turns projection results into short plain-text explanations
// for the interactive front end. It is fully offline and side-effect-free.
type InsightService struct{}

func NewInsightService() *InsightService {
	return &InsightService{}
}

// ProjectionSummary explains a lump-sum projection in two or three sentences.
func (s *InsightService) ProjectionSummary(
	params domain.InterestParams,
	result domain.InterestResult,
) string {
	if result.Principal <= 0 {
		return fmt.Sprintf("Starting from nothing, the balance stays at %s; growth needs a principal to work on.",
			FormatCurrency(result.FinalAmount))
	}

	growthFactor := result.FinalAmount / result.Principal

	return fmt.Sprintf("Over %.1f years your %s grows to %s, a %.2fx growth factor. Compounding %d times per year lifts the quoted %s rate to an effective %s annually. %s",
		params.Years,
		FormatCurrency(result.Principal),
		FormatCurrency(result.FinalAmount),
		growthFactor,
		params.CompoundsPerYear,
		FormatPercentage(params.AnnualRate),
		FormatPercentage(result.EffectiveAnnualRate),
		s.doublingTip(params.AnnualRate))
}

// ContributionSummary explains how much of the final amount came from the
// monthly contributions versus the original principal.
func (s *InsightService) ContributionSummary(
	params domain.InterestParams,
	result domain.InterestResult,
	monthlyContribution float64,
) string {
	totalContributions := monthlyContribution * 12 * params.Years

	return fmt.Sprintf("Contributing %s every month adds %s of your own money over %.1f years, and the projection ends at %s. Interest earned on top of principal and contributions comes to %s.",
		FormatCurrency(monthlyContribution),
		FormatCurrency(totalContributions),
		params.Years,
		FormatCurrency(result.FinalAmount),
		FormatCurrency(result.TotalInterest))
}

// TaxScenarioSummary explains a weekly trader projection after yearly tax.
func (s *InsightService) TaxScenarioSummary(
	input domain.TaxScenarioInput,
	result domain.TaxScenarioResult,
) string {
	years := float64(input.Weeks) / WeeksPerYear

	return fmt.Sprintf("After %.1f years of weekly compounding at %s per week, the account ends at %s after tax. Yearly capital gains settlements cost %s of the %s profit earned along the way.",
		years,
		FormatPercentage(input.WeeklyRate),
		FormatCurrency(result.FinalAfterTax),
		FormatCurrency(result.TotalTaxPaid),
		FormatCurrency(result.ProfitBeforeTax))
}

// doublingTip gives the rule-of-72 doubling estimate for positive rates.
func (s *InsightService) doublingTip(annualRate float64) string {
	if annualRate <= 0 {
		return "At a non-positive rate the balance never doubles."
	}
	return fmt.Sprintf("At this rate the balance doubles roughly every %.0f years.", 72/(annualRate*100))
}
