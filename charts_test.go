package main

import "testing"

func TestLivesSavedChartShape(t *testing.T) {
	config := testConfig()
	m := CalculateMetrics(50, config)

	spec := BuildLivesSavedChart(m, config)

	if spec.Unit != "lives" {
		t.Errorf("Lives chart unit: got %q, want lives", spec.Unit)
	}
	if len(spec.Series) != 2 {
		t.Fatalf("Lives chart should have 2 series, got %d", len(spec.Series))
	}

	current := spec.Series[0]
	if len(current.Bars) != 2 {
		t.Fatalf("Current series should have 2 bars, got %d", len(current.Bars))
	}
	if current.Bars[0].Value != float64(m.LivesSaved.Children) {
		t.Errorf("Children bar: got %.0f, want %d", current.Bars[0].Value, m.LivesSaved.Children)
	}

	potential := spec.Series[1]
	if potential.Bars[0].Value != 9647 || potential.Bars[1].Value != 4580 {
		t.Errorf("Potential bars: got %.0f/%.0f, want 9647/4580",
			potential.Bars[0].Value, potential.Bars[1].Value)
	}
}

func TestCostChartUsesTreatmentNames(t *testing.T) {
	config := testConfig()
	m := CalculateMetrics(30, config)

	spec := BuildCostChart(m, config)

	if spec.Unit != "usd" {
		t.Errorf("Cost chart unit: got %q, want usd", spec.Unit)
	}
	if spec.Series[0].Name != "Huffstatin Cost" {
		t.Errorf("Incumbent series name: got %q", spec.Series[0].Name)
	}
	if spec.Series[1].Name != "Clairadol Cost" {
		t.Errorf("Candidate series name: got %q", spec.Series[1].Name)
	}
	if spec.Series[0].Bars[0].Value != m.IncumbentCosts.Children {
		t.Errorf("Incumbent children bar: got %.2f, want %.2f",
			spec.Series[0].Bars[0].Value, m.IncumbentCosts.Children)
	}
}

func TestChartMaxValue(t *testing.T) {
	config := testConfig()

	// At 50% the potential bars dominate the lives chart
	spec := BuildLivesSavedChart(CalculateMetrics(50, config), config)
	if spec.MaxValue() != 9647 {
		t.Errorf("Lives chart max: got %.0f, want 9647", spec.MaxValue())
	}

	empty := ChartSpec{}
	if empty.MaxValue() != 0 {
		t.Errorf("Empty chart max: got %.0f, want 0", empty.MaxValue())
	}
}
