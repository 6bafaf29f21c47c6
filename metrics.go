package main

import (
	"fmt"
	"math"
)

// LivesSaved holds projected lives saved at a given adoption rate, by age group.
type LivesSaved struct {
	Children int `json:"children"`
	Adults   int `json:"adults"`
	Total    int `json:"total"`
}

// CostBreakdown holds one treatment's projected program spend at a given
// adoption rate, by age group.
type CostBreakdown struct {
	Total    float64 `json:"total"`
	Children float64 `json:"children"`
	Adults   float64 `json:"adults"`
}

// Metrics is the complete set of figures derived from one adoption rate.
// All values are deterministic, pure functions of the rate and the dataset;
// nothing is retained between calls.
type Metrics struct {
	AdoptionRate float64    `json:"adoption_rate"`
	LivesSaved   LivesSaved `json:"lives_saved"`

	// IncumbentCosts scales down as adoption rises; CandidateCosts scales up.
	IncumbentCosts CostBreakdown `json:"incumbent_costs"`
	CandidateCosts CostBreakdown `json:"candidate_costs"`

	TotalCost      float64 `json:"total_cost"`
	AdditionalCost float64 `json:"additional_cost"`

	// CostDifference is the candidate-vs-incumbent spend gap at full adoption.
	// It does not vary with the adoption rate.
	CostDifference float64 `json:"cost_difference"`

	// CostPerLifeSaved is the incremental spend divided by incremental lives
	// saved at this rate. Zero when no lives are saved yet (rate 0).
	CostPerLifeSaved float64 `json:"cost_per_life_saved"`

	// BaselineCostPerLife is the cost per life saved at 100% adoption.
	BaselineCostPerLife float64 `json:"baseline_cost_per_life"`
}

// ValidateAdoptionRate checks that a rate is a real number in [0,100].
func ValidateAdoptionRate(rate float64) error {
	if math.IsNaN(rate) || math.IsInf(rate, 0) {
		return fmt.Errorf("adoption rate must be a number between 0 and 100")
	}
	if rate < 0 || rate > 100 {
		return fmt.Errorf("adoption rate must be between 0 and 100, got %g", rate)
	}
	return nil
}

// CalculateMetrics derives all dashboard figures for an adoption rate.
// The rate must already be validated; see ValidateAdoptionRate.
//
// Lives saved interpolate linearly from zero to the trial's potential.
// Incumbent costs carry the (1-f) share of the population, candidate costs
// the f share, so total cost interpolates linearly between the two regimes.
func CalculateMetrics(rate float64, config *Config) Metrics {
	f := rate / 100

	out := config.Outcomes
	lives := LivesSaved{
		Children: int(math.Round(out.ChildrenPotentialLives * f)),
		Adults:   int(math.Round(out.AdultPotentialLives * f)),
		Total:    int(math.Round(out.PotentialLivesTotal() * f)),
	}

	incumbent := CostBreakdown{
		Total:    config.Incumbent.TotalCost * (1 - f),
		Children: config.Incumbent.ChildrenCost * (1 - f),
		Adults:   config.Incumbent.AdultCost * (1 - f),
	}
	candidate := CostBreakdown{
		Total:    config.Candidate.TotalCost * f,
		Children: config.Candidate.ChildrenCost * f,
		Adults:   config.Candidate.AdultCost * f,
	}

	costDifference := config.Candidate.TotalCost - config.Incumbent.TotalCost

	// Guard against division by zero at rate 0: no lives saved yet means
	// there is no meaningful cost per life, so report 0.
	costPerLife := 0.0
	if lives.Total > 0 {
		costPerLife = (costDifference * f) / float64(lives.Total)
	}

	baseline := 0.0
	if total := out.PotentialLivesTotal(); total > 0 {
		baseline = costDifference / total
	}

	return Metrics{
		AdoptionRate:        rate,
		LivesSaved:          lives,
		IncumbentCosts:      incumbent,
		CandidateCosts:      candidate,
		TotalCost:           incumbent.Total + candidate.Total,
		AdditionalCost:      costDifference * f,
		CostDifference:      costDifference,
		CostPerLifeSaved:    costPerLife,
		BaselineCostPerLife: baseline,
	}
}
