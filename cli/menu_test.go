package cli

import (
	"bytes"
	"strings"
	"testing"

	"interest-agent/repository"
	"interest-agent/service"
)

func newTestMenu(input string) (*Menu, *bytes.Buffer) {
	history := repository.NewProjectionRepositoryMemory()
	cache := repository.NewMockCache()
	out := &bytes.Buffer{}

	menu := NewMenu(
		strings.NewReader(input),
		out,
		service.NewInterestService(history, cache),
		service.NewTaxScenarioService(),
		service.NewInsightService(),
		history,
	)
	return menu, out
}

func TestMenu_Exit(t *testing.T) {

	menu, out := newTestMenu("6\n")

	if err := menu.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "Goodbye!") {
		t.Errorf("expected exit message, got: %s", out.String())
	}
}

func TestMenu_EndOfInputTerminates(t *testing.T) {

	menu, _ := newTestMenu("")

	if err := menu.Run(); err != nil {
		t.Fatalf("end of input should terminate cleanly, got: %v", err)
	}
}

func TestMenu_BasicCalculation(t *testing.T) {

	menu, out := newTestMenu("1\n10000\n0.06\n12\n20\n6\n")

	if err := menu.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "$33,102.04") {
		t.Errorf("expected projected amount in output, got: %s", out.String())
	}
}

func TestMenu_InvalidChoiceReprompts(t *testing.T) {

	menu, out := newTestMenu("9\n6\n")

	if err := menu.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	output := out.String()
	if !strings.Contains(output, "Invalid choice") {
		t.Errorf("expected invalid-choice message, got: %s", output)
	}
	if !strings.Contains(output, "Goodbye!") {
		t.Errorf("expected the loop to continue to exit, got: %s", output)
	}
}

func TestMenu_MalformedNumberReprompts(t *testing.T) {

	menu, out := newTestMenu("1\nabc\n10000\n0.06\n12\n20\n6\n")

	if err := menu.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	output := out.String()
	if !strings.Contains(output, "Please enter a valid number.") {
		t.Errorf("expected reprompt message, got: %s", output)
	}
	if !strings.Contains(output, "$33,102.04") {
		t.Errorf("expected calculation to proceed after reprompt, got: %s", output)
	}
}

func TestMenu_CalculationErrorIsPrinted(t *testing.T) {

	// Frequency 0 is rejected by the service; the menu reports and continues.
	menu, out := newTestMenu("1\n10000\n0.06\n0\n20\n6\n")

	if err := menu.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	output := out.String()
	if !strings.Contains(output, "compounding frequency") {
		t.Errorf("expected validation message, got: %s", output)
	}
	if !strings.Contains(output, "Goodbye!") {
		t.Errorf("expected the loop to survive the error, got: %s", output)
	}
}

func TestMenu_HistoryListsCalculations(t *testing.T) {

	menu, out := newTestMenu("1\n10000\n0.06\n12\n20\n8\n6\n")

	if err := menu.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	output := out.String()
	if !strings.Contains(output, "compound-interest") {
		t.Errorf("expected history entry, got: %s", output)
	}
}

func TestMenu_EmptyHistory(t *testing.T) {

	menu, out := newTestMenu("8\n6\n")

	if err := menu.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "No calculations saved this session.") {
		t.Errorf("expected empty-history message, got: %s", out.String())
	}
}

func TestMenu_BreakdownTable(t *testing.T) {

	menu, out := newTestMenu("5\n1000\n0.05\n1\n3\n6\n")

	if err := menu.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	output := out.String()
	for _, want := range []string{"$1,050.00", "$1,102.50", "$1,157.63"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected breakdown row %q, got: %s", want, output)
		}
	}
}
