package main

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
)

func TestSweepIncludesBothBounds(t *testing.T) {
	config := testConfig()

	sweep, err := RunAdoptionSweep(config, 0, 100, 5)
	if err != nil {
		t.Fatalf("Sweep failed: %v", err)
	}

	if len(sweep.Points) != 21 {
		t.Errorf("Sweep 0-100 step 5 should produce 21 points, got %d", len(sweep.Points))
	}
	if sweep.Points[0].AdoptionRate != 0 {
		t.Errorf("First sweep point should be 0%%, got %g", sweep.Points[0].AdoptionRate)
	}
	if sweep.Points[len(sweep.Points)-1].AdoptionRate != 100 {
		t.Errorf("Last sweep point should be 100%%, got %g", sweep.Points[len(sweep.Points)-1].AdoptionRate)
	}
}

func TestSweepClampsFinalPointToMax(t *testing.T) {
	// Step 30 over 0-100 does not divide evenly; the upper bound must still
	// appear as the final point
	config := testConfig()

	sweep, err := RunAdoptionSweep(config, 0, 100, 30)
	if err != nil {
		t.Fatalf("Sweep failed: %v", err)
	}

	last := sweep.Points[len(sweep.Points)-1]
	if last.AdoptionRate != 100 {
		t.Errorf("Final point should be clamped to 100%%, got %g", last.AdoptionRate)
	}
}

func TestSweepFractionalStepHasNoDuplicateNearMax(t *testing.T) {
	// Step 0.1 is not exactly representable; an additive loop would land
	// the last iterate just under 100 and emit a near-duplicate of the
	// clamped final point
	config := testConfig()

	sweep, err := RunAdoptionSweep(config, 0, 100, 0.1)
	if err != nil {
		t.Fatalf("Sweep failed: %v", err)
	}

	if len(sweep.Points) != 1001 {
		t.Errorf("Sweep 0-100 step 0.1 should produce 1001 points, got %d", len(sweep.Points))
	}

	last := sweep.Points[len(sweep.Points)-1]
	penultimate := sweep.Points[len(sweep.Points)-2]
	if last.AdoptionRate != 100 {
		t.Errorf("Final point should be 100%%, got %g", last.AdoptionRate)
	}
	if last.AdoptionRate-penultimate.AdoptionRate < 0.05 {
		t.Errorf("Near-duplicate points at the top of the sweep: %g then %g",
			penultimate.AdoptionRate, last.AdoptionRate)
	}
}

func TestSweepRejectsBadParameters(t *testing.T) {
	config := testConfig()

	cases := []struct {
		name           string
		min, max, step float64
	}{
		{"negative min", -10, 100, 5},
		{"max above 100", 0, 120, 5},
		{"min above max", 60, 40, 5},
		{"zero step", 0, 100, 0},
		{"negative step", 0, 100, -5},
	}

	for _, c := range cases {
		if _, err := RunAdoptionSweep(config, c.min, c.max, c.step); err == nil {
			t.Errorf("%s: expected an error for min=%g max=%g step=%g", c.name, c.min, c.max, c.step)
		}
	}
}

func TestSweepLivesMonotonic(t *testing.T) {
	config := testConfig()

	sweep, err := SweepFromConfig(config)
	if err != nil {
		t.Fatalf("Sweep failed: %v", err)
	}

	for i := 1; i < len(sweep.Points); i++ {
		if sweep.Points[i].LivesSaved.Total < sweep.Points[i-1].LivesSaved.Total {
			t.Errorf("Lives saved decreased between %g%% and %g%%",
				sweep.Points[i-1].AdoptionRate, sweep.Points[i].AdoptionRate)
		}
	}
}

func TestSweepCSVOutput(t *testing.T) {
	config := testConfig()

	sweep, err := RunAdoptionSweep(config, 0, 100, 50)
	if err != nil {
		t.Fatalf("Sweep failed: %v", err)
	}

	var buf bytes.Buffer
	if err := sweep.WriteCSV(&buf); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("Generated CSV does not parse: %v", err)
	}

	// Header plus 0, 50 and 100
	if len(records) != 4 {
		t.Fatalf("Expected 4 CSV rows, got %d", len(records))
	}
	if records[0][0] != "adoption_rate" {
		t.Errorf("First header column should be adoption_rate, got %q", records[0][0])
	}
	if len(records[0]) != 9 {
		t.Errorf("Expected 9 CSV columns, got %d", len(records[0]))
	}

	// Row for 100% adoption carries the full potential
	last := records[3]
	if last[0] != "100" {
		t.Errorf("Last row rate should be 100, got %q", last[0])
	}
	if last[3] != "14227" {
		t.Errorf("Last row total lives should be 14227, got %q", last[3])
	}
	if !strings.HasPrefix(last[6], "3348239") {
		t.Errorf("Last row total cost should be 3348239.00, got %q", last[6])
	}
}
