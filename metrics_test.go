package main

import (
	"math"
	"testing"
)

func testConfig() *Config {
	config := &Config{}
	config.ApplyDefaults()
	return config
}

// =============================================================================
// Known Value Tests
// =============================================================================

func TestMetricsAtZeroAdoption(t *testing.T) {
	config := testConfig()
	m := CalculateMetrics(0, config)

	if m.LivesSaved.Children != 0 || m.LivesSaved.Adults != 0 || m.LivesSaved.Total != 0 {
		t.Errorf("At 0%% adoption no lives should be saved, got %d/%d/%d",
			m.LivesSaved.Children, m.LivesSaved.Adults, m.LivesSaved.Total)
	}
	if m.TotalCost != 3329170 {
		t.Errorf("At 0%% adoption total cost should equal the incumbent programme: got %.2f, want 3329170.00", m.TotalCost)
	}
	if m.AdditionalCost != 0 {
		t.Errorf("At 0%% adoption additional cost should be 0, got %.2f", m.AdditionalCost)
	}
	if m.CostPerLifeSaved != 0 {
		t.Errorf("At 0%% adoption cost per life saved should be 0, got %.2f", m.CostPerLifeSaved)
	}
	if m.CandidateCosts.Total != 0 {
		t.Errorf("At 0%% adoption candidate spend should be 0, got %.2f", m.CandidateCosts.Total)
	}
}

func TestMetricsAtFullAdoption(t *testing.T) {
	config := testConfig()
	m := CalculateMetrics(100, config)

	if m.LivesSaved.Children != 9647 {
		t.Errorf("Children lives at 100%%: got %d, want 9647", m.LivesSaved.Children)
	}
	if m.LivesSaved.Adults != 4580 {
		t.Errorf("Adult lives at 100%%: got %d, want 4580", m.LivesSaved.Adults)
	}
	if m.LivesSaved.Total != 14227 {
		t.Errorf("Total lives at 100%%: got %d, want 14227", m.LivesSaved.Total)
	}
	if m.TotalCost != 3348239 {
		t.Errorf("Total cost at 100%%: got %.2f, want 3348239.00", m.TotalCost)
	}
	if m.IncumbentCosts.Total != 0 {
		t.Errorf("Incumbent spend at 100%%: got %.2f, want 0", m.IncumbentCosts.Total)
	}

	// 19069 / 14227 = 1.3403...
	if math.Abs(m.CostPerLifeSaved-1.34) > 0.005 {
		t.Errorf("Cost per life at 100%%: got %.4f, want ~1.34", m.CostPerLifeSaved)
	}
}

func TestMetricsAtHalfAdoption(t *testing.T) {
	config := testConfig()
	m := CalculateMetrics(50, config)

	// 14227 * 0.5 = 7113.5 rounds half away from zero to 7114
	if m.LivesSaved.Total != 7114 {
		t.Errorf("Total lives at 50%%: got %d, want 7114", m.LivesSaved.Total)
	}
	// 9647 * 0.5 = 4823.5 -> 4824
	if m.LivesSaved.Children != 4824 {
		t.Errorf("Children lives at 50%%: got %d, want 4824", m.LivesSaved.Children)
	}
	if m.LivesSaved.Adults != 2290 {
		t.Errorf("Adult lives at 50%%: got %d, want 2290", m.LivesSaved.Adults)
	}
	if m.TotalCost != 3338704.5 {
		t.Errorf("Total cost at 50%%: got %.2f, want 3338704.50", m.TotalCost)
	}
	if math.Abs(m.AdditionalCost-9534.5) > 1e-9 {
		t.Errorf("Additional cost at 50%%: got %.4f, want 9534.50", m.AdditionalCost)
	}
}

func TestCostDifferenceConstant(t *testing.T) {
	// Property: the full-adoption spend gap does not vary with the rate
	config := testConfig()

	for rate := 0.0; rate <= 100; rate += 7 {
		m := CalculateMetrics(rate, config)
		if m.CostDifference != 19069 {
			t.Errorf("Cost difference at %.0f%%: got %.2f, want 19069", rate, m.CostDifference)
		}
	}
}

// =============================================================================
// Property Tests
// =============================================================================

func TestLivesSavedMonotonicallyIncrease(t *testing.T) {
	// Property: raising the adoption rate never loses lives
	config := testConfig()

	var prev LivesSaved
	for rate := 0.0; rate <= 100; rate++ {
		m := CalculateMetrics(rate, config)
		if m.LivesSaved.Children < prev.Children ||
			m.LivesSaved.Adults < prev.Adults ||
			m.LivesSaved.Total < prev.Total {
			t.Errorf("Lives saved decreased between %.0f%% and %.0f%%: %+v -> %+v",
				rate-1, rate, prev, m.LivesSaved)
		}
		prev = m.LivesSaved
	}
}

func TestTotalCostInterpolatesBetweenProgrammes(t *testing.T) {
	// Property: the blended cost stays between the two full-coverage totals
	// and equals incumbent plus candidate spend
	config := testConfig()

	for rate := 0.0; rate <= 100; rate += 2.5 {
		m := CalculateMetrics(rate, config)

		if m.TotalCost < config.Incumbent.TotalCost-1e-6 || m.TotalCost > config.Candidate.TotalCost+1e-6 {
			t.Errorf("Total cost at %.1f%% outside programme bounds: %.2f", rate, m.TotalCost)
		}
		sum := m.IncumbentCosts.Total + m.CandidateCosts.Total
		if math.Abs(m.TotalCost-sum) > 1e-6 {
			t.Errorf("Total cost at %.1f%% is %.2f but parts sum to %.2f", rate, m.TotalCost, sum)
		}
	}
}

func TestAdditionalCostMatchesBaseline(t *testing.T) {
	// Property: additional cost is the rate fraction of the constant gap
	config := testConfig()

	for rate := 0.0; rate <= 100; rate += 10 {
		m := CalculateMetrics(rate, config)
		want := 19069 * rate / 100
		if math.Abs(m.AdditionalCost-want) > 1e-6 {
			t.Errorf("Additional cost at %.0f%%: got %.4f, want %.4f", rate, m.AdditionalCost, want)
		}
	}
}

func TestCostBreakdownsScaleByAgeGroup(t *testing.T) {
	config := testConfig()
	m := CalculateMetrics(25, config)

	if math.Abs(m.IncumbentCosts.Children-2407888*0.75) > 1e-6 {
		t.Errorf("Incumbent children spend at 25%%: got %.2f", m.IncumbentCosts.Children)
	}
	if math.Abs(m.CandidateCosts.Adults-1165998*0.25) > 1e-6 {
		t.Errorf("Candidate adult spend at 25%%: got %.2f", m.CandidateCosts.Adults)
	}
}

func TestBaselineCostPerLife(t *testing.T) {
	config := testConfig()

	m0 := CalculateMetrics(0, config)
	m100 := CalculateMetrics(100, config)
	if m0.BaselineCostPerLife != m100.BaselineCostPerLife {
		t.Errorf("Baseline cost per life should not depend on the rate: %.4f vs %.4f",
			m0.BaselineCostPerLife, m100.BaselineCostPerLife)
	}
	want := 19069.0 / 14227.0
	if math.Abs(m0.BaselineCostPerLife-want) > 1e-9 {
		t.Errorf("Baseline cost per life: got %.6f, want %.6f", m0.BaselineCostPerLife, want)
	}
}

// =============================================================================
// Validation
// =============================================================================

func TestValidateAdoptionRate(t *testing.T) {
	valid := []float64{0, 0.5, 1, 50, 99.9, 100}
	for _, rate := range valid {
		if err := ValidateAdoptionRate(rate); err != nil {
			t.Errorf("Rate %g should be valid, got error: %v", rate, err)
		}
	}

	invalid := []float64{-0.001, -1, 100.001, 150, math.NaN(), math.Inf(1), math.Inf(-1)}
	for _, rate := range invalid {
		if err := ValidateAdoptionRate(rate); err == nil {
			t.Errorf("Rate %g should be rejected", rate)
		}
	}
}

func TestLivesSavedRounding(t *testing.T) {
	// 9647 * 0.001 = 9.647 -> 10; verify rounding, not truncation
	config := testConfig()
	m := CalculateMetrics(0.1, config)

	if m.LivesSaved.Children != 10 {
		t.Errorf("Children lives at 0.1%%: got %d, want 10", m.LivesSaved.Children)
	}
	// 4580 * 0.001 = 4.58 -> 5
	if m.LivesSaved.Adults != 5 {
		t.Errorf("Adult lives at 0.1%%: got %d, want 5", m.LivesSaved.Adults)
	}
}
