package service

import (
	"math"

	"interest-agent/domain"
)

// TaxScenarioService projects weekly-compounded trading returns with weekly
// contributions, settling capital gains tax at the end of every 52-week year.
type TaxScenarioService struct{}

func NewTaxScenarioService() *TaxScenarioService {
	return &TaxScenarioService{}
}

// Calculate runs the projection year by year: each full year grows the
// carried balance and that year's contributions, taxes the profit, and
// carries the after-tax amount forward. A trailing partial year is taxed
// pro-rata on its week count.
func (s *TaxScenarioService) Calculate(
	input domain.TaxScenarioInput,
) (domain.TaxScenarioResult, error) {

	if !isFinite(input.Principal) || !isFinite(input.WeeklyRate) ||
		!isFinite(input.WeeklyContribution) || !isFinite(input.CapitalGainsTax) {
		return domain.TaxScenarioResult{}, invalidArgf("inputs must be finite numbers")
	}
	if input.Principal < 0 {
		return domain.TaxScenarioResult{}, invalidArgf("principal must not be negative")
	}
	if input.Principal > MaxPrincipal {
		return domain.TaxScenarioResult{}, invalidArgf("principal exceeds maximum of $%.2f", MaxPrincipal)
	}
	if input.Weeks < 0 {
		return domain.TaxScenarioResult{}, invalidArgf("weeks must not be negative")
	}
	if input.Weeks > MaxWeeks {
		return domain.TaxScenarioResult{}, invalidArgf("weeks exceeds maximum of %d", MaxWeeks)
	}
	if input.WeeklyContribution < 0 {
		return domain.TaxScenarioResult{}, invalidArgf("weekly contribution must not be negative")
	}
	if input.WeeklyContribution > MaxWeeklyContribution {
		return domain.TaxScenarioResult{}, invalidArgf("weekly contribution exceeds maximum of $%.2f", MaxWeeklyContribution)
	}
	if input.CapitalGainsTax < 0 || input.CapitalGainsTax > 1 {
		return domain.TaxScenarioResult{}, invalidArgf("capital gains tax rate must be between 0 and 1")
	}
	if 1+input.WeeklyRate <= 0 {
		return domain.TaxScenarioResult{}, invalidArgf("weekly rate of %.4f makes the growth base non-positive", input.WeeklyRate)
	}

	fullYears := input.Weeks / WeeksPerYear
	remainingWeeks := input.Weeks % WeeksPerYear

	balance := input.Principal
	totalTaxPaid := 0.0
	totalContributions := 0.0

	for year := 0; year < fullYears; year++ {
		grown, contributed := growWeeks(balance, input.WeeklyRate, input.WeeklyContribution, WeeksPerYear)
		totalContributions += input.WeeklyContribution * WeeksPerYear

		profit := grown + contributed - balance - input.WeeklyContribution*WeeksPerYear
		tax := 0.0
		if profit > 0 {
			tax = profit * input.CapitalGainsTax
		}
		totalTaxPaid += tax

		balance = grown + contributed - tax
	}

	if remainingWeeks > 0 {
		grown, contributed := growWeeks(balance, input.WeeklyRate, input.WeeklyContribution, remainingWeeks)
		weekContributions := input.WeeklyContribution * float64(remainingWeeks)
		totalContributions += weekContributions

		profit := grown + contributed - balance - weekContributions
		tax := 0.0
		if profit > 0 {
			tax = profit * input.CapitalGainsTax * (float64(remainingWeeks) / WeeksPerYear)
		}
		totalTaxPaid += tax

		balance = grown + contributed - tax
	}

	profitBeforeTax := balance + totalTaxPaid - input.Principal - totalContributions

	return domain.TaxScenarioResult{
		FinalAfterTax:   roundTo2Decimals(balance),
		ProfitBeforeTax: roundTo2Decimals(profitBeforeTax),
		TotalTaxPaid:    roundTo2Decimals(totalTaxPaid),
	}, nil
}

// growWeeks compounds a balance and a stream of weekly contributions over the
// given number of weeks, returning the two future values separately.
func growWeeks(balance, weeklyRate, weeklyContribution float64, weeks int) (grown, contributed float64) {
	w := float64(weeks)
	grown = balance * math.Pow(1+weeklyRate, w)

	if weeklyRate == 0 {
		contributed = weeklyContribution * w
	} else {
		contributed = weeklyContribution * (math.Pow(1+weeklyRate, w) - 1) / weeklyRate
	}
	return grown, contributed
}
