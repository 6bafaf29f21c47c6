package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// SweepResult holds metrics evaluated across a range of adoption rates.
type SweepResult struct {
	MinRate  float64   `json:"min_rate"`
	MaxRate  float64   `json:"max_rate"`
	StepSize float64   `json:"step_size"`
	Points   []Metrics `json:"points"`
}

// RunAdoptionSweep evaluates the metrics at every rate from min to max
// (inclusive) in steps of step. The final point is clamped to max so the
// upper bound is always present even when the step does not divide the
// range evenly.
func RunAdoptionSweep(config *Config, min, max, step float64) (SweepResult, error) {
	if err := ValidateAdoptionRate(min); err != nil {
		return SweepResult{}, fmt.Errorf("invalid sweep minimum: %w", err)
	}
	if err := ValidateAdoptionRate(max); err != nil {
		return SweepResult{}, fmt.Errorf("invalid sweep maximum: %w", err)
	}
	if min > max {
		return SweepResult{}, fmt.Errorf("sweep minimum %g exceeds maximum %g", min, max)
	}
	if step <= 0 {
		return SweepResult{}, fmt.Errorf("sweep step must be positive, got %g", step)
	}

	result := SweepResult{MinRate: min, MaxRate: max, StepSize: step}
	// Index-based rates avoid accumulated floating-point drift that an
	// additive loop would pick up on steps like 0.1.
	for i := 0; ; i++ {
		rate := min + float64(i)*step
		if rate >= max {
			break
		}
		result.Points = append(result.Points, CalculateMetrics(rate, config))
	}
	result.Points = append(result.Points, CalculateMetrics(max, config))

	return result, nil
}

// SweepFromConfig runs a sweep using the configured range and step.
func SweepFromConfig(config *Config) (SweepResult, error) {
	return RunAdoptionSweep(config, config.Sweep.MinRate, config.Sweep.MaxRate, config.Sweep.StepSize)
}

// WriteCSV writes the sweep as CSV: one row per adoption rate with the
// lives-saved and cost columns the dashboard displays.
func (s SweepResult) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	header := []string{
		"adoption_rate",
		"children_lives_saved", "adult_lives_saved", "total_lives_saved",
		"incumbent_cost", "candidate_cost", "total_cost",
		"additional_cost", "cost_per_life_saved",
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, m := range s.Points {
		row := []string{
			strconv.FormatFloat(m.AdoptionRate, 'f', -1, 64),
			strconv.Itoa(m.LivesSaved.Children),
			strconv.Itoa(m.LivesSaved.Adults),
			strconv.Itoa(m.LivesSaved.Total),
			strconv.FormatFloat(m.IncumbentCosts.Total, 'f', 2, 64),
			strconv.FormatFloat(m.CandidateCosts.Total, 'f', 2, 64),
			strconv.FormatFloat(m.TotalCost, 'f', 2, 64),
			strconv.FormatFloat(m.AdditionalCost, 'f', 2, 64),
			strconv.FormatFloat(m.CostPerLifeSaved, 'f', 4, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
