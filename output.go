package main

import (
	"fmt"
	"strconv"
	"strings"
)

// groupThousands inserts comma separators into a string of digits.
func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// FormatUSD formats an amount as full US dollars with cents, e.g. $3,338,704.50.
func FormatUSD(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	s := strconv.FormatFloat(amount, 'f', 2, 64)
	whole, cents, _ := strings.Cut(s, ".")
	return sign + "$" + groupThousands(whole) + "." + cents
}

// FormatCount formats an integer count with thousands separators, e.g. 14,227.
func FormatCount(n int) string {
	if n < 0 {
		return "-" + groupThousands(strconv.Itoa(-n))
	}
	return groupThousands(strconv.Itoa(n))
}

// PrintHeader prints the calculator header and dataset summary.
func PrintHeader(config *Config) {
	fmt.Println("╔══════════════════════════════════════════════════════════════════════════════╗")
	fmt.Println("║                  CLAIRADOL IMPACT CALCULATOR                                 ║")
	fmt.Println("╚══════════════════════════════════════════════════════════════════════════════╝")
	fmt.Println()
	fmt.Printf("Country: %s\n", config.Country)
	fmt.Println()
	fmt.Println("Treatment Programme Costs (full coverage):")
	fmt.Println("──────────────────────────────────────────")
	for _, t := range []TreatmentConfig{config.Incumbent, config.Candidate} {
		fmt.Printf("  %-12s total %s (children %s, adults %s)\n",
			t.Name+":", FormatUSD(t.TotalCost), FormatUSD(t.ChildrenCost), FormatUSD(t.AdultCost))
	}
	fmt.Println()
	out := config.Outcomes
	fmt.Printf("  Potential lives saved at 100%% adoption: %s children, %s adults, %s total\n",
		FormatCount(int(out.ChildrenPotentialLives)),
		FormatCount(int(out.AdultPotentialLives)),
		FormatCount(int(out.PotentialLivesTotal())))
	fmt.Printf("  Mortality reduction: children %.1f%% → %.1f%%, adults %.1f%% → %.1f%%\n",
		out.ChildrenMortalityBefore*100, out.ChildrenMortalityAfter*100,
		out.AdultMortalityBefore*100, out.AdultMortalityAfter*100)
	fmt.Println()
}

// PrintMetrics prints the full metric summary for one adoption rate.
func PrintMetrics(m Metrics, config *Config) {
	fmt.Printf("╔══════════════════════════════════════════════════════════════════════════════╗\n")
	fmt.Printf("║ %s Adoption Rate: %5.1f%%                                                 ║\n",
		config.Candidate.Name, m.AdoptionRate)
	fmt.Printf("╚══════════════════════════════════════════════════════════════════════════════╝\n")
	fmt.Println()

	fmt.Println("Lives Saved:")
	fmt.Printf("  Children: %10s\n", FormatCount(m.LivesSaved.Children))
	fmt.Printf("  Adults:   %10s\n", FormatCount(m.LivesSaved.Adults))
	fmt.Printf("  Total:    %10s\n", FormatCount(m.LivesSaved.Total))
	fmt.Println()

	fmt.Println("Costs:")
	fmt.Printf("  %-24s │ %14s │ %14s │ %14s\n", "", "Children", "Adults", "Total")
	fmt.Println("  " + strings.Repeat("─", 74))
	fmt.Printf("  %-24s │ %14s │ %14s │ %14s\n", config.Incumbent.Name,
		FormatUSD(m.IncumbentCosts.Children), FormatUSD(m.IncumbentCosts.Adults), FormatUSD(m.IncumbentCosts.Total))
	fmt.Printf("  %-24s │ %14s │ %14s │ %14s\n", config.Candidate.Name,
		FormatUSD(m.CandidateCosts.Children), FormatUSD(m.CandidateCosts.Adults), FormatUSD(m.CandidateCosts.Total))
	fmt.Println()

	fmt.Printf("  Total Treatment Cost:   %s\n", FormatUSD(m.TotalCost))
	fmt.Printf("  Additional Cost:        %s\n", FormatUSD(m.AdditionalCost))
	fmt.Printf("  Cost per Life Saved:    %s\n", FormatUSD(m.CostPerLifeSaved))
	fmt.Println()
	fmt.Printf("  Base cost difference:              %s\n", FormatUSD(m.CostDifference))
	fmt.Printf("  Cost per life at 100%% adoption:    %s\n", FormatUSD(m.BaselineCostPerLife))
	fmt.Println()
}

// PrintSweepTable prints the adoption-rate sweep as an aligned table.
func PrintSweepTable(sweep SweepResult, config *Config) {
	fmt.Printf("Adoption sweep %g%% – %g%% (step %g%%):\n\n", sweep.MinRate, sweep.MaxRate, sweep.StepSize)

	fmt.Printf("%8s │ %10s %10s %10s │ %16s │ %14s │ %10s\n",
		"Rate", "Children", "Adults", "Total", "Total Cost", "Extra Cost", "$/Life")
	fmt.Println(strings.Repeat("─", 95))

	for _, m := range sweep.Points {
		fmt.Printf("%7.1f%% │ %10s %10s %10s │ %16s │ %14s │ %10s\n",
			m.AdoptionRate,
			FormatCount(m.LivesSaved.Children),
			FormatCount(m.LivesSaved.Adults),
			FormatCount(m.LivesSaved.Total),
			FormatUSD(m.TotalCost),
			FormatUSD(m.AdditionalCost),
			FormatUSD(m.CostPerLifeSaved))
	}
	fmt.Println()
}
