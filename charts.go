package main

// ChartBar is a single bar within a series: one value for one age group.
type ChartBar struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Color string  `json:"color"`
}

// ChartSeries groups the bars that share a legend entry.
type ChartSeries struct {
	Name string     `json:"name"`
	Bars []ChartBar `json:"bars"`
}

// ChartSpec is a declarative grouped-bar chart description. The web UI, the
// HTML report and the PDF report all render from the same spec.
type ChartSpec struct {
	Title  string        `json:"title"`
	Unit   string        `json:"unit"` // "lives" or "usd"
	Series []ChartSeries `json:"series"`
}

// Bar palette shared by all renderers.
const (
	colorChildren  = "rgb(59, 130, 246)"
	colorAdults    = "rgb(16, 185, 129)"
	colorPotential = "rgb(229, 231, 235)"
	colorIncumbent = "rgb(251, 191, 36)"
	colorCandidate = "rgb(239, 68, 68)"
)

// BuildLivesSavedChart builds the lives-saved-by-age-group chart: current
// projected lives saved next to the potential at 100% adoption.
func BuildLivesSavedChart(m Metrics, config *Config) ChartSpec {
	return ChartSpec{
		Title: "Lives Saved by Age Group",
		Unit:  "lives",
		Series: []ChartSeries{
			{
				Name: "Current Lives Saved",
				Bars: []ChartBar{
					{Label: "Children", Value: float64(m.LivesSaved.Children), Color: colorChildren},
					{Label: "Adults", Value: float64(m.LivesSaved.Adults), Color: colorAdults},
				},
			},
			{
				Name: "Potential at 100%",
				Bars: []ChartBar{
					{Label: "Children", Value: config.Outcomes.ChildrenPotentialLives, Color: colorPotential},
					{Label: "Adults", Value: config.Outcomes.AdultPotentialLives, Color: colorPotential},
				},
			},
		},
	}
}

// BuildCostChart builds the treatment-costs-by-age-group chart: the
// incumbent's remaining spend next to the candidate's spend at the current
// adoption rate.
func BuildCostChart(m Metrics, config *Config) ChartSpec {
	return ChartSpec{
		Title: "Treatment Costs by Age Group",
		Unit:  "usd",
		Series: []ChartSeries{
			{
				Name: config.Incumbent.Name + " Cost",
				Bars: []ChartBar{
					{Label: "Children", Value: m.IncumbentCosts.Children, Color: colorIncumbent},
					{Label: "Adults", Value: m.IncumbentCosts.Adults, Color: colorIncumbent},
				},
			},
			{
				Name: config.Candidate.Name + " Cost",
				Bars: []ChartBar{
					{Label: "Children", Value: m.CandidateCosts.Children, Color: colorCandidate},
					{Label: "Adults", Value: m.CandidateCosts.Adults, Color: colorCandidate},
				},
			},
		},
	}
}

// MaxValue returns the largest bar value in the chart, used to scale bars.
func (c ChartSpec) MaxValue() float64 {
	max := 0.0
	for _, s := range c.Series {
		for _, b := range s.Bars {
			if b.Value > max {
				max = b.Value
			}
		}
	}
	return max
}
