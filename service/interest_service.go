package service

import (
	"fmt"
	"log"
	"math"

	"interest-agent/domain"
	"interest-agent/repository"
)

type InterestService struct {
	repo  repository.ProjectionRepository
	cache repository.CacheRepository
}

// NewInterestService creates an InterestService backed by the given history
// repository and result cache.
func NewInterestService(repo repository.ProjectionRepository,
	cache repository.CacheRepository,
) *InterestService {
	return &InterestService{repo: repo, cache: cache}
}

func invalidArgf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", domain.ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// isFinite guards the range checks below: NaN compares false against every
// bound, so it has to be rejected before them.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func validateParams(p domain.InterestParams) error {
	if !isFinite(p.Principal) || !isFinite(p.AnnualRate) || !isFinite(p.Years) {
		return invalidArgf("inputs must be finite numbers")
	}
	if p.CompoundsPerYear < 1 {
		return invalidArgf("compounding frequency must be at least 1, got %d", p.CompoundsPerYear)
	}
	if p.CompoundsPerYear > MaxCompoundsPerYear {
		return invalidArgf("compounding frequency exceeds maximum of %d", MaxCompoundsPerYear)
	}
	if p.Principal < 0 {
		return invalidArgf("principal must not be negative")
	}
	if p.Principal > MaxPrincipal {
		return invalidArgf("principal exceeds maximum of $%.2f", MaxPrincipal)
	}
	if p.Years < 0 {
		return invalidArgf("years must not be negative")
	}
	if p.Years > MaxYears {
		return invalidArgf("years exceeds maximum of %.0f", MaxYears)
	}
	if p.AnnualRate > MaxAnnualRate {
		return invalidArgf("annual rate exceeds maximum of %.0f%%", MaxAnnualRate*100)
	}
	if 1+p.AnnualRate/float64(p.CompoundsPerYear) <= 0 {
		return invalidArgf("rate of %.4f makes the growth base non-positive at frequency %d",
			p.AnnualRate, p.CompoundsPerYear)
	}
	return nil
}

// compute applies A = P(1 + r/n)^(nt). Inputs must already be validated.
func compute(p domain.InterestParams) domain.InterestResult {
	n := float64(p.CompoundsPerYear)
	base := 1 + p.AnnualRate/n
	finalAmount := p.Principal * math.Pow(base, n*p.Years)

	return domain.InterestResult{
		FinalAmount:         roundTo2Decimals(finalAmount),
		TotalInterest:       roundTo2Decimals(finalAmount - p.Principal),
		Principal:           p.Principal,
		EffectiveAnnualRate: math.Pow(base, n) - 1,
	}
}

// CalculateCompoundInterest projects the growth of a lump-sum principal.
// Money fields of the result are rounded to 2 decimals.
func (s *InterestService) CalculateCompoundInterest(
	params domain.InterestParams,
) (domain.InterestResult, error) {

	if err := validateParams(params); err != nil {
		return domain.InterestResult{}, err
	}

	key := cacheKey("compound", params, 0)
	if result, ok := s.cachedResult(key); ok {
		s.saveRecord("compound-interest", result)
		return result, nil
	}

	result := compute(params)

	s.storeResult(key, result)
	s.saveRecord("compound-interest", result)

	return result, nil
}

// CalculateWithContributions projects a lump-sum principal plus a monthly
// annuity. The principal compounds at the params' own frequency; the annuity
// always compounds monthly. TotalInterest excludes the contributions
// themselves.
func (s *InterestService) CalculateWithContributions(
	params domain.InterestParams,
	monthlyContribution float64,
) (domain.InterestResult, error) {

	if err := validateParams(params); err != nil {
		return domain.InterestResult{}, err
	}
	if !isFinite(monthlyContribution) {
		return domain.InterestResult{}, invalidArgf("monthly contribution must be a finite number")
	}
	if monthlyContribution < 0 {
		return domain.InterestResult{}, invalidArgf("monthly contribution must not be negative")
	}
	if monthlyContribution > MaxMonthlyContribution {
		return domain.InterestResult{}, invalidArgf("monthly contribution exceeds maximum of $%.2f", MaxMonthlyContribution)
	}
	if 1+params.AnnualRate/12 <= 0 {
		return domain.InterestResult{}, invalidArgf("rate of %.4f makes the monthly annuity base non-positive", params.AnnualRate)
	}

	key := cacheKey("contrib", params, monthlyContribution)
	if result, ok := s.cachedResult(key); ok {
		s.saveRecord("compound-interest-with-contributions", result)
		return result, nil
	}

	n := float64(params.CompoundsPerYear)
	base := 1 + params.AnnualRate/n
	principalValue := params.Principal * math.Pow(base, n*params.Years)

	months := params.Years * 12
	var annuityValue float64
	if params.AnnualRate == 0 {
		// Limit of the annuity formula as the rate approaches zero.
		annuityValue = monthlyContribution * months
	} else {
		monthlyRate := params.AnnualRate / 12
		annuityValue = monthlyContribution * (math.Pow(1+monthlyRate, months) - 1) / monthlyRate
	}

	finalAmount := principalValue + annuityValue

	result := domain.InterestResult{
		FinalAmount:         roundTo2Decimals(finalAmount),
		TotalInterest:       roundTo2Decimals(finalAmount - params.Principal - monthlyContribution*months),
		Principal:           params.Principal,
		EffectiveAnnualRate: math.Pow(base, n) - 1,
	}

	s.storeResult(key, result)
	s.saveRecord("compound-interest-with-contributions", result)

	return result, nil
}

// CalculateTimeToTarget solves A = P(1 + r/n)^(nt) for t, in years. The
// result is not rounded. Returns 0 when the target is already reached
// (targetAmount <= principal).
func (s *InterestService) CalculateTimeToTarget(
	principal float64,
	targetAmount float64,
	annualRate float64,
	compoundsPerYear int,
) (float64, error) {

	if !isFinite(principal) || !isFinite(targetAmount) || !isFinite(annualRate) {
		return 0, invalidArgf("inputs must be finite numbers")
	}
	if compoundsPerYear < 1 {
		return 0, invalidArgf("compounding frequency must be at least 1, got %d", compoundsPerYear)
	}
	if compoundsPerYear > MaxCompoundsPerYear {
		return 0, invalidArgf("compounding frequency exceeds maximum of %d", MaxCompoundsPerYear)
	}
	if principal <= 0 {
		return 0, invalidArgf("principal must be positive")
	}
	if targetAmount <= 0 {
		return 0, invalidArgf("target amount must be positive")
	}
	if targetAmount > MaxTargetAmount {
		return 0, invalidArgf("target amount exceeds maximum of $%.2f", MaxTargetAmount)
	}
	if annualRate <= 0 {
		return 0, invalidArgf("annual rate must be positive to reach a target")
	}
	if annualRate > MaxAnnualRate {
		return 0, invalidArgf("annual rate exceeds maximum of %.0f%%", MaxAnnualRate*100)
	}

	if targetAmount <= principal {
		return 0, nil
	}

	n := float64(compoundsPerYear)
	years := math.Log(targetAmount/principal) / (n * math.Log(1+annualRate/n))

	return years, nil
}

// CalculatePrincipalForTarget computes the lump sum that grows to
// targetAmount in the given time: P = target / (1 + r/n)^(nt). The result
// is not rounded.
func (s *InterestService) CalculatePrincipalForTarget(
	targetAmount float64,
	annualRate float64,
	compoundsPerYear int,
	years float64,
) (float64, error) {

	if !isFinite(targetAmount) || !isFinite(annualRate) || !isFinite(years) {
		return 0, invalidArgf("inputs must be finite numbers")
	}
	if compoundsPerYear < 1 {
		return 0, invalidArgf("compounding frequency must be at least 1, got %d", compoundsPerYear)
	}
	if compoundsPerYear > MaxCompoundsPerYear {
		return 0, invalidArgf("compounding frequency exceeds maximum of %d", MaxCompoundsPerYear)
	}
	if targetAmount <= 0 {
		return 0, invalidArgf("target amount must be positive")
	}
	if targetAmount > MaxTargetAmount {
		return 0, invalidArgf("target amount exceeds maximum of $%.2f", MaxTargetAmount)
	}
	if years < 0 {
		return 0, invalidArgf("years must not be negative")
	}
	if years > MaxYears {
		return 0, invalidArgf("years exceeds maximum of %.0f", MaxYears)
	}
	if annualRate > MaxAnnualRate {
		return 0, invalidArgf("annual rate exceeds maximum of %.0f%%", MaxAnnualRate*100)
	}

	n := float64(compoundsPerYear)
	base := 1 + annualRate/n
	if base <= 0 {
		return 0, invalidArgf("rate of %.4f makes the growth base non-positive at frequency %d",
			annualRate, compoundsPerYear)
	}

	return targetAmount / math.Pow(base, n*years), nil
}

// GenerateBreakdown projects the investment year by year. Entry y covers the
// first min(y, params.Years) years, so the last entry of a fractional term
// uses the exact Years value. Years == 0 yields an empty breakdown.
func (s *InterestService) GenerateBreakdown(
	params domain.InterestParams,
) (domain.Breakdown, error) {

	if err := validateParams(params); err != nil {
		return nil, err
	}

	totalYears := int(math.Ceil(params.Years))
	breakdown := make(domain.Breakdown, 0, totalYears)

	for year := 1; year <= totalYears; year++ {
		yearParams := params
		yearParams.Years = math.Min(float64(year), params.Years)
		breakdown = append(breakdown, domain.BreakdownEntry{
			Year:   year,
			Result: compute(yearParams),
		})
	}

	if len(breakdown) > 0 {
		s.saveRecord("breakdown", breakdown[len(breakdown)-1].Result)
	}

	return breakdown, nil
}

func cacheKey(op string, p domain.InterestParams, extra float64) string {
	return fmt.Sprintf("%s:%g:%g:%d:%g:%g",
		op, p.Principal, p.AnnualRate, p.CompoundsPerYear, p.Years, extra)
}

func (s *InterestService) cachedResult(key string) (domain.InterestResult, bool) {
	if s.cache == nil {
		return domain.InterestResult{}, false
	}
	return s.cache.Get(key)
}

func (s *InterestService) storeResult(key string, result domain.InterestResult) {
	if s.cache == nil {
		return
	}
	// Caching is best-effort; a miss just means recomputing a few flops.
	if err := s.cache.Set(key, result); err != nil {
		log.Printf("Warning: failed to cache result: %v", err)
	}
}

func (s *InterestService) saveRecord(kind string, result domain.InterestResult) {
	if s.repo == nil {
		return
	}
	if err := s.repo.Save(kind, result); err != nil {
		log.Printf("Warning: failed to save %s calculation: %v", kind, err)
	}
}
