package service

import (
	"math"
	"testing"

	"interest-agent/domain"
)

func TestTaxScenario_TaxReducesFinalAmount(t *testing.T) {

	service := NewTaxScenarioService()

	taxed, err := service.Calculate(domain.TaxScenarioInput{
		Principal:          10000,
		WeeklyRate:         0.01,
		Weeks:              104,
		WeeklyContribution: 100,
		CapitalGainsTax:    0.3,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	untaxed, err := service.Calculate(domain.TaxScenarioInput{
		Principal:          10000,
		WeeklyRate:         0.01,
		Weeks:              104,
		WeeklyContribution: 100,
		CapitalGainsTax:    0,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if taxed.FinalAfterTax >= untaxed.FinalAfterTax {
		t.Errorf("taxed %.2f should be below untaxed %.2f",
			taxed.FinalAfterTax, untaxed.FinalAfterTax)
	}
	if taxed.TotalTaxPaid <= 0 {
		t.Errorf("expected tax paid on a profitable run, got %.2f", taxed.TotalTaxPaid)
	}
	if untaxed.TotalTaxPaid != 0 {
		t.Errorf("expected no tax at rate 0, got %.2f", untaxed.TotalTaxPaid)
	}

	// Still ahead of just stashing the money.
	contributions := 100.0 * 104
	if taxed.FinalAfterTax <= 10000+contributions {
		t.Errorf("expected growth beyond principal plus contributions, got %.2f", taxed.FinalAfterTax)
	}
}

func TestTaxScenario_ZeroRate(t *testing.T) {

	service := NewTaxScenarioService()

	result, err := service.Calculate(domain.TaxScenarioInput{
		Principal:          10000,
		WeeklyRate:         0,
		Weeks:              104,
		WeeklyContribution: 100,
		CapitalGainsTax:    0.37,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := 10000 + 100.0*104
	if math.Abs(result.FinalAfterTax-expected) > 0.01 {
		t.Errorf("expected %.2f at zero rate, got %.2f", expected, result.FinalAfterTax)
	}
	if result.TotalTaxPaid != 0 {
		t.Errorf("no profit means no tax, got %.2f", result.TotalTaxPaid)
	}
	if math.Abs(result.ProfitBeforeTax) > 0.01 {
		t.Errorf("expected zero profit, got %.2f", result.ProfitBeforeTax)
	}
}

func TestTaxScenario_PartialYearOnly(t *testing.T) {

	service := NewTaxScenarioService()

	result, err := service.Calculate(domain.TaxScenarioInput{
		Principal:          5000,
		WeeklyRate:         0.005,
		Weeks:              26,
		WeeklyContribution: 50,
		CapitalGainsTax:    0.3,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	contributions := 50.0 * 26
	if result.FinalAfterTax <= 5000+contributions {
		t.Errorf("expected growth, got %.2f", result.FinalAfterTax)
	}
	if result.TotalTaxPaid <= 0 {
		t.Errorf("partial years are taxed pro-rata, got %.2f", result.TotalTaxPaid)
	}
}

func TestTaxScenario_ZeroWeeks(t *testing.T) {

	service := NewTaxScenarioService()

	result, err := service.Calculate(domain.TaxScenarioInput{
		Principal:       7500,
		WeeklyRate:      0.01,
		CapitalGainsTax: 0.3,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.FinalAfterTax != 7500 {
		t.Errorf("zero weeks should leave the principal untouched, got %.2f", result.FinalAfterTax)
	}
}

func TestTaxScenario_InvalidInputs(t *testing.T) {

	service := NewTaxScenarioService()

	invalid := []domain.TaxScenarioInput{
		{Principal: -1, WeeklyRate: 0.01, Weeks: 52, CapitalGainsTax: 0.3},
		{Principal: 1000, WeeklyRate: 0.01, Weeks: -1, CapitalGainsTax: 0.3},
		{Principal: 1000, WeeklyRate: 0.01, Weeks: 52, CapitalGainsTax: 1.5},
		{Principal: 1000, WeeklyRate: 0.01, Weeks: 52, CapitalGainsTax: -0.1},
		{Principal: 1000, WeeklyRate: -1.5, Weeks: 52, CapitalGainsTax: 0.3},
		{Principal: 1000, WeeklyRate: 0.01, Weeks: 52, WeeklyContribution: -10, CapitalGainsTax: 0.3},
		{Principal: math.NaN(), WeeklyRate: 0.01, Weeks: 52, CapitalGainsTax: 0.3},
		{Principal: 1000, WeeklyRate: math.NaN(), Weeks: 52, CapitalGainsTax: 0.3},
		{Principal: 1000, WeeklyRate: 0.01, Weeks: 52, CapitalGainsTax: math.NaN()},
		{Principal: 1000, WeeklyRate: 0.01, Weeks: 52, WeeklyContribution: math.Inf(1), CapitalGainsTax: 0.3},
	}

	for i, input := range invalid {
		if _, err := service.Calculate(input); !errorsIsInvalid(err) {
			t.Errorf("case %d: expected ErrInvalidArgument, got %v", i, err)
		}
	}
}
