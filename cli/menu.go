package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"interest-agent/domain"
	"interest-agent/repository"
	"interest-agent/service"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36"))
	headerStyle  = lipgloss.NewStyle().Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	insightStyle = lipgloss.NewStyle().Faint(true)
)

// Menu runs the interactive projection loop: one choice, one calculation,
// one printed result per turn. Malformed input reprompts.
type Menu struct {
	in        *bufio.Scanner
	out       io.Writer
	interest  *service.InterestService
	scenarios *service.TaxScenarioService
	insights  *service.InsightService
	history   repository.ProjectionRepository
}

func NewMenu(
	in io.Reader,
	out io.Writer,
	interest *service.InterestService,
	scenarios *service.TaxScenarioService,
	insights *service.InsightService,
	history repository.ProjectionRepository,
) *Menu {
	return &Menu{
		in:        bufio.NewScanner(in),
		out:       out,
		interest:  interest,
		scenarios: scenarios,
		insights:  insights,
		history:   history,
	}
}

// Run loops until the user picks Exit or input ends. End of input is a
// normal termination, not an error.
func (m *Menu) Run() error {
	fmt.Fprintln(m.out, titleStyle.Render("=== Compound Interest Calculator ==="))
	fmt.Fprintln(m.out)

	for {
		m.printOptions()

		choice, err := m.readLine("Enter your choice (1-8)")
		if err != nil {
			return nil
		}

		switch strings.TrimSpace(choice) {
		case "1":
			err = m.runBasic()
		case "2":
			err = m.runContributions()
		case "3":
			err = m.runTimeToTarget()
		case "4":
			err = m.runPrincipalForTarget()
		case "5":
			err = m.runBreakdown()
		case "6":
			fmt.Fprintln(m.out, "Goodbye!")
			return nil
		case "7":
			err = m.runTaxScenario()
		case "8":
			m.printHistory()
		default:
			fmt.Fprintln(m.out, errorStyle.Render("Invalid choice. Please try again."))
			fmt.Fprintln(m.out)
		}
		if err != nil {
			return nil
		}
	}
}

func (m *Menu) printOptions() {
	fmt.Fprintln(m.out, "Choose an option:")
	fmt.Fprintln(m.out, "1. Calculate compound interest")
	fmt.Fprintln(m.out, "2. Calculate compound interest with monthly contributions")
	fmt.Fprintln(m.out, "3. Calculate time to reach target amount")
	fmt.Fprintln(m.out, "4. Calculate required principal for target amount")
	fmt.Fprintln(m.out, "5. Generate year-by-year breakdown")
	fmt.Fprintln(m.out, "6. Exit")
	fmt.Fprintln(m.out, "7. Calculate weekly compounding with yearly tax (trader scenario)")
	fmt.Fprintln(m.out, "8. Show session history")
	fmt.Fprintln(m.out)
}

func (m *Menu) runBasic() error {
	fmt.Fprintln(m.out, headerStyle.Render("--- Basic Compound Interest Calculation ---"))

	principal, err := m.readFloat("Enter principal amount ($)")
	if err != nil {
		return err
	}
	rate, err := m.readFloat("Enter annual interest rate (as decimal, e.g., 0.05 for 5%)")
	if err != nil {
		return err
	}
	frequency, err := m.readInt("Enter times compounded per year (1=annually, 12=monthly, 365=daily)")
	if err != nil {
		return err
	}
	years, err := m.readFloat("Enter number of years")
	if err != nil {
		return err
	}

	params := domain.InterestParams{
		Principal:        principal,
		AnnualRate:       rate,
		CompoundsPerYear: frequency,
		Years:            years,
	}

	result, calcErr := m.interest.CalculateCompoundInterest(params)
	if calcErr != nil {
		m.printCalcError(calcErr)
		return nil
	}

	fmt.Fprintln(m.out, headerStyle.Render("=== Results ==="))
	fmt.Fprintf(m.out, "Initial Principal:     %s\n", service.FormatCurrency(result.Principal))
	fmt.Fprintf(m.out, "Annual Interest Rate:  %s\n", service.FormatPercentage(params.AnnualRate))
	fmt.Fprintf(m.out, "Compounding Frequency: %d times per year\n", params.CompoundsPerYear)
	fmt.Fprintf(m.out, "Time Period:           %.1f years\n", params.Years)
	fmt.Fprintf(m.out, "Final Amount:          %s\n", service.FormatCurrency(result.FinalAmount))
	fmt.Fprintf(m.out, "Total Interest Earned: %s\n", service.FormatCurrency(result.TotalInterest))
	fmt.Fprintf(m.out, "Effective Annual Rate: %s\n", service.FormatPercentage(result.EffectiveAnnualRate))
	fmt.Fprintln(m.out, insightStyle.Render(m.insights.ProjectionSummary(params, result)))
	fmt.Fprintln(m.out)
	return nil
}

func (m *Menu) runContributions() error {
	fmt.Fprintln(m.out, headerStyle.Render("--- Compound Interest with Monthly Contributions ---"))

	principal, err := m.readFloat("Enter initial principal amount ($)")
	if err != nil {
		return err
	}
	rate, err := m.readFloat("Enter annual interest rate (as decimal, e.g., 0.05 for 5%)")
	if err != nil {
		return err
	}
	frequency, err := m.readInt("Enter times compounded per year (1=annually, 12=monthly, 365=daily)")
	if err != nil {
		return err
	}
	years, err := m.readFloat("Enter number of years")
	if err != nil {
		return err
	}
	contribution, err := m.readFloat("Enter monthly contribution amount ($)")
	if err != nil {
		return err
	}

	params := domain.InterestParams{
		Principal:        principal,
		AnnualRate:       rate,
		CompoundsPerYear: frequency,
		Years:            years,
	}

	result, calcErr := m.interest.CalculateWithContributions(params, contribution)
	if calcErr != nil {
		m.printCalcError(calcErr)
		return nil
	}
	withoutContributions, calcErr := m.interest.CalculateCompoundInterest(params)
	if calcErr != nil {
		m.printCalcError(calcErr)
		return nil
	}

	fmt.Fprintln(m.out, headerStyle.Render("=== Results ==="))
	fmt.Fprintf(m.out, "Initial Principal:     %s\n", service.FormatCurrency(result.Principal))
	fmt.Fprintf(m.out, "Monthly Contribution:  %s\n", service.FormatCurrency(contribution))
	fmt.Fprintf(m.out, "Total Contributions:   %s\n", service.FormatCurrency(contribution*12*years))
	fmt.Fprintf(m.out, "Annual Interest Rate:  %s\n", service.FormatPercentage(params.AnnualRate))
	fmt.Fprintf(m.out, "Time Period:           %.1f years\n", params.Years)
	fmt.Fprintf(m.out, "Final Amount:          %s\n", service.FormatCurrency(result.FinalAmount))
	fmt.Fprintf(m.out, "Total Interest Earned: %s\n", service.FormatCurrency(result.TotalInterest))
	fmt.Fprintf(m.out, "Effective Annual Rate: %s\n", service.FormatPercentage(result.EffectiveAnnualRate))
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, headerStyle.Render("--- Comparison ---"))
	fmt.Fprintf(m.out, "Without contributions: %s\n", service.FormatCurrency(withoutContributions.FinalAmount))
	fmt.Fprintf(m.out, "With contributions:    %s\n", service.FormatCurrency(result.FinalAmount))
	fmt.Fprintf(m.out, "Difference:            %s\n", service.FormatCurrency(result.FinalAmount-withoutContributions.FinalAmount))
	fmt.Fprintln(m.out, insightStyle.Render(m.insights.ContributionSummary(params, result, contribution)))
	fmt.Fprintln(m.out)
	return nil
}

func (m *Menu) runTimeToTarget() error {
	fmt.Fprintln(m.out, headerStyle.Render("--- Time to Reach Target Amount ---"))

	principal, err := m.readFloat("Enter current principal amount ($)")
	if err != nil {
		return err
	}
	target, err := m.readFloat("Enter target amount ($)")
	if err != nil {
		return err
	}
	rate, err := m.readFloat("Enter annual interest rate (as decimal, e.g., 0.05 for 5%)")
	if err != nil {
		return err
	}
	frequency, err := m.readInt("Enter times compounded per year (1=annually, 12=monthly, 365=daily)")
	if err != nil {
		return err
	}

	years, calcErr := m.interest.CalculateTimeToTarget(principal, target, rate, frequency)
	if calcErr != nil {
		m.printCalcError(calcErr)
		return nil
	}

	fmt.Fprintln(m.out, headerStyle.Render("=== Results ==="))
	fmt.Fprintf(m.out, "Current Principal:     %s\n", service.FormatCurrency(principal))
	fmt.Fprintf(m.out, "Target Amount:         %s\n", service.FormatCurrency(target))
	fmt.Fprintf(m.out, "Annual Interest Rate:  %s\n", service.FormatPercentage(rate))
	if years == 0 {
		fmt.Fprintln(m.out, "The target amount is already reached.")
	} else {
		fmt.Fprintf(m.out, "Time to reach target:  %.1f years (%.0f months)\n", years, years*12)
	}
	fmt.Fprintln(m.out)
	return nil
}

func (m *Menu) runPrincipalForTarget() error {
	fmt.Fprintln(m.out, headerStyle.Render("--- Required Principal for Target Amount ---"))

	target, err := m.readFloat("Enter target amount ($)")
	if err != nil {
		return err
	}
	rate, err := m.readFloat("Enter annual interest rate (as decimal, e.g., 0.05 for 5%)")
	if err != nil {
		return err
	}
	frequency, err := m.readInt("Enter times compounded per year (1=annually, 12=monthly, 365=daily)")
	if err != nil {
		return err
	}
	years, err := m.readFloat("Enter number of years")
	if err != nil {
		return err
	}

	principal, calcErr := m.interest.CalculatePrincipalForTarget(target, rate, frequency, years)
	if calcErr != nil {
		m.printCalcError(calcErr)
		return nil
	}

	fmt.Fprintln(m.out, headerStyle.Render("=== Results ==="))
	fmt.Fprintf(m.out, "Target Amount:         %s\n", service.FormatCurrency(target))
	fmt.Fprintf(m.out, "Annual Interest Rate:  %s\n", service.FormatPercentage(rate))
	fmt.Fprintf(m.out, "Time Period:           %.1f years\n", years)
	fmt.Fprintf(m.out, "Required Principal:    %s\n", service.FormatCurrency(principal))
	fmt.Fprintln(m.out)
	return nil
}

func (m *Menu) runBreakdown() error {
	fmt.Fprintln(m.out, headerStyle.Render("--- Year-by-Year Breakdown ---"))

	principal, err := m.readFloat("Enter principal amount ($)")
	if err != nil {
		return err
	}
	rate, err := m.readFloat("Enter annual interest rate (as decimal, e.g., 0.05 for 5%)")
	if err != nil {
		return err
	}
	frequency, err := m.readInt("Enter times compounded per year (1=annually, 12=monthly, 365=daily)")
	if err != nil {
		return err
	}
	years, err := m.readFloat("Enter number of years")
	if err != nil {
		return err
	}

	params := domain.InterestParams{
		Principal:        principal,
		AnnualRate:       rate,
		CompoundsPerYear: frequency,
		Years:            years,
	}

	breakdown, calcErr := m.interest.GenerateBreakdown(params)
	if calcErr != nil {
		m.printCalcError(calcErr)
		return nil
	}

	fmt.Fprintln(m.out, headerStyle.Render("=== Year-by-Year Breakdown ==="))
	fmt.Fprintf(m.out, "Initial Principal:     %s\n", service.FormatCurrency(principal))
	fmt.Fprintf(m.out, "Annual Interest Rate:  %s\n", service.FormatPercentage(rate))
	fmt.Fprintln(m.out)
	fmt.Fprintf(m.out, "%-6s %-15s %-15s %-10s\n", "Year", "Amount", "Interest", "Growth")
	fmt.Fprintln(m.out, strings.Repeat("-", 50))
	for _, entry := range breakdown {
		growth := "n/a"
		if principal > 0 {
			growth = fmt.Sprintf("%.2fx", entry.Result.FinalAmount/principal)
		}
		fmt.Fprintf(m.out, "%-6d %-15s %-15s %-10s\n",
			entry.Year,
			service.FormatCurrency(entry.Result.FinalAmount),
			service.FormatCurrency(entry.Result.TotalInterest),
			growth)
	}
	fmt.Fprintln(m.out)
	return nil
}

func (m *Menu) runTaxScenario() error {
	fmt.Fprintln(m.out, headerStyle.Render("--- Weekly Compounding with Yearly Capital Gains Tax ---"))

	principal, err := m.readFloat("Enter initial/carry-forward principal ($)")
	if err != nil {
		return err
	}
	weeklyRate, err := m.readFloat("Enter weekly rate of return (as decimal, e.g., 0.02 for 2%)")
	if err != nil {
		return err
	}
	weeks, err := m.readInt("Enter number of weeks to extrapolate")
	if err != nil {
		return err
	}
	contribution, err := m.readFloat("Enter weekly contribution amount ($)")
	if err != nil {
		return err
	}
	taxRate, err := m.readFloat("Enter capital gains tax rate (as decimal, e.g., 0.37 for 37%)")
	if err != nil {
		return err
	}

	input := domain.TaxScenarioInput{
		Principal:          principal,
		WeeklyRate:         weeklyRate,
		Weeks:              weeks,
		WeeklyContribution: contribution,
		CapitalGainsTax:    taxRate,
	}

	result, calcErr := m.scenarios.Calculate(input)
	if calcErr != nil {
		m.printCalcError(calcErr)
		return nil
	}

	fmt.Fprintln(m.out, headerStyle.Render("=== Results ==="))
	fmt.Fprintf(m.out, "Initial Principal:         %s\n", service.FormatCurrency(principal))
	fmt.Fprintf(m.out, "Weekly Contribution:       %s\n", service.FormatCurrency(contribution))
	fmt.Fprintf(m.out, "Total Contributions:       %s\n", service.FormatCurrency(contribution*float64(weeks)))
	fmt.Fprintf(m.out, "Weekly Rate:               %s\n", service.FormatPercentage(weeklyRate))
	fmt.Fprintf(m.out, "Weeks:                     %d (%.1f years)\n", weeks, float64(weeks)/service.WeeksPerYear)
	fmt.Fprintf(m.out, "Profit (before tax):       %s\n", service.FormatCurrency(result.ProfitBeforeTax))
	fmt.Fprintf(m.out, "Total Tax Paid (yearly):   %s\n", service.FormatCurrency(result.TotalTaxPaid))
	fmt.Fprintf(m.out, "Final Amount (after tax):  %s\n", service.FormatCurrency(result.FinalAfterTax))
	fmt.Fprintln(m.out, insightStyle.Render(m.insights.TaxScenarioSummary(input, result)))
	fmt.Fprintln(m.out)
	return nil
}

func (m *Menu) printHistory() {
	fmt.Fprintln(m.out, headerStyle.Render("=== Session History ==="))

	records := m.history.List()
	if len(records) == 0 {
		fmt.Fprintln(m.out, "No calculations saved this session.")
		fmt.Fprintln(m.out)
		return
	}
	for i, record := range records {
		fmt.Fprintf(m.out, "%2d. [%s] %s -> %s\n",
			i+1,
			record.Kind,
			service.FormatCurrency(record.Result.Principal),
			service.FormatCurrency(record.Result.FinalAmount))
	}
	fmt.Fprintln(m.out)
}

func (m *Menu) printCalcError(err error) {
	fmt.Fprintln(m.out, errorStyle.Render("Error: "+err.Error()))
	fmt.Fprintln(m.out)
}

func (m *Menu) readLine(prompt string) (string, error) {
	fmt.Fprintf(m.out, "%s: ", prompt)
	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return m.in.Text(), nil
}

func (m *Menu) readFloat(prompt string) (float64, error) {
	for {
		line, err := m.readLine(prompt)
		if err != nil {
			return 0, err
		}
		value, parseErr := strconv.ParseFloat(strings.TrimSpace(line), 64)
		if parseErr != nil {
			fmt.Fprintln(m.out, "Please enter a valid number.")
			continue
		}
		return value, nil
	}
}

func (m *Menu) readInt(prompt string) (int, error) {
	for {
		line, err := m.readLine(prompt)
		if err != nil {
			return 0, err
		}
		value, parseErr := strconv.Atoi(strings.TrimSpace(line))
		if parseErr != nil {
			fmt.Fprintln(m.out, "Please enter a valid whole number.")
			continue
		}
		return value, nil
	}
}
