package main

import (
	_ "embed"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default-config.yaml
var defaultConfigYAML string

// TreatmentConfig describes one treatment's projected national program cost
// at full coverage, split by age group.
type TreatmentConfig struct {
	Name         string  `yaml:"name" json:"name"`
	TotalCost    float64 `yaml:"total_cost" json:"total_cost"`
	ChildrenCost float64 `yaml:"children_cost" json:"children_cost"`
	AdultCost    float64 `yaml:"adult_cost" json:"adult_cost"`
}

// OutcomeConfig holds the trial outcome data the projections derive from:
// potential lives saved at 100% adoption and the mortality rates behind them.
// Mortality rates are display data only; they do not enter the calculation.
type OutcomeConfig struct {
	ChildrenPotentialLives float64 `yaml:"children_potential_lives" json:"children_potential_lives"`
	AdultPotentialLives    float64 `yaml:"adult_potential_lives" json:"adult_potential_lives"`
	TotalPotentialLives    float64 `yaml:"total_potential_lives,omitempty" json:"total_potential_lives,omitempty"`

	ChildrenMortalityBefore float64 `yaml:"children_mortality_before" json:"children_mortality_before"` // e.g. 0.109 = 10.9%
	ChildrenMortalityAfter  float64 `yaml:"children_mortality_after" json:"children_mortality_after"`
	AdultMortalityBefore    float64 `yaml:"adult_mortality_before" json:"adult_mortality_before"`
	AdultMortalityAfter     float64 `yaml:"adult_mortality_after" json:"adult_mortality_after"`
}

// PotentialLivesTotal returns the configured total, falling back to the sum
// of the age groups when the total is not set explicitly.
func (o *OutcomeConfig) PotentialLivesTotal() float64 {
	if o.TotalPotentialLives > 0 {
		return o.TotalPotentialLives
	}
	return o.ChildrenPotentialLives + o.AdultPotentialLives
}

// DashboardConfig holds interactive dashboard settings.
type DashboardConfig struct {
	DefaultAdoptionRate float64 `yaml:"default_adoption_rate" json:"default_adoption_rate"`
	SliderStep          float64 `yaml:"slider_step" json:"slider_step"`
}

// ServerConfig holds web server settings.
type ServerConfig struct {
	Address string `yaml:"address" json:"address"`
}

// SweepConfig holds adoption-rate sweep parameters.
type SweepConfig struct {
	MinRate  float64 `yaml:"min_rate" json:"min_rate"`
	MaxRate  float64 `yaml:"max_rate" json:"max_rate"`
	StepSize float64 `yaml:"step_size" json:"step_size"`
}

// Config holds the complete configuration.
type Config struct {
	Country   string          `yaml:"country" json:"country"`
	Incumbent TreatmentConfig `yaml:"incumbent" json:"incumbent"`
	Candidate TreatmentConfig `yaml:"candidate" json:"candidate"`
	Outcomes  OutcomeConfig   `yaml:"outcomes" json:"outcomes"`
	Dashboard DashboardConfig `yaml:"dashboard" json:"dashboard"`
	Sweep     SweepConfig     `yaml:"sweep" json:"sweep"`
	Server    ServerConfig    `yaml:"server" json:"server"`
}

// LoadConfig loads configuration from a YAML file and fills any missing
// sections from the standard dataset.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	config.ApplyDefaults()
	return &config, nil
}

// SaveConfig saves configuration to a YAML file with a usage header.
func SaveConfig(config *Config, filename string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	header := []byte(`# Clairadol Impact Calculator Configuration
#
# The treatment dataset below comes from the Zachistan trial programme.
# Costs are USD at full national coverage; the calculator interpolates
# linearly between the incumbent and candidate regimes as the adoption
# rate moves from 0% to 100%.
#
# VALUE FORMATS
#   Rates:     0-100 (percent)
#   Mortality: decimals (0.109 = 10.9%)
#   Money:     USD (e.g. 3329170)
#
# RUN COMMANDS
#   ./goImpactCalculator              Interactive mode selector
#   ./goImpactCalculator -web         Web dashboard (external browser)
#   ./goImpactCalculator -ui          Desktop window (embedded browser)
#   ./goImpactCalculator -rate 75     Console summary at 75% adoption
#   ./goImpactCalculator -sweep       Adoption-rate sweep table
#   ./goImpactCalculator -html -pdf   Generate reports
#   ./goImpactCalculator -help        Show all options

`)
	return os.WriteFile(filename, append(header, data...), 0644)
}

// LoadDefaultConfig loads the embedded default configuration.
func LoadDefaultConfig() (*Config, error) {
	var config Config
	if err := yaml.Unmarshal([]byte(defaultConfigYAML), &config); err != nil {
		return nil, err
	}
	config.ApplyDefaults()
	return &config, nil
}

// ApplyDefaults fills zero-valued fields with the standard dataset and
// dashboard settings so a partial config file still produces a working
// calculator.
func (c *Config) ApplyDefaults() {
	if c.Country == "" {
		c.Country = "Zachistan"
	}
	if c.Incumbent.Name == "" {
		c.Incumbent.Name = "Huffstatin"
	}
	if c.Incumbent.TotalCost == 0 {
		c.Incumbent.TotalCost = 3329170
		c.Incumbent.ChildrenCost = 2407888
		c.Incumbent.AdultCost = 921283
	}
	if c.Candidate.Name == "" {
		c.Candidate.Name = "Clairadol"
	}
	if c.Candidate.TotalCost == 0 {
		c.Candidate.TotalCost = 3348239
		c.Candidate.ChildrenCost = 2182241
		c.Candidate.AdultCost = 1165998
	}
	if c.Outcomes.ChildrenPotentialLives == 0 && c.Outcomes.AdultPotentialLives == 0 {
		c.Outcomes.ChildrenPotentialLives = 9647
		c.Outcomes.AdultPotentialLives = 4580
		c.Outcomes.TotalPotentialLives = 14227
	}
	if c.Outcomes.ChildrenMortalityBefore == 0 {
		c.Outcomes.ChildrenMortalityBefore = 0.109
		c.Outcomes.ChildrenMortalityAfter = 0.085
	}
	if c.Outcomes.AdultMortalityBefore == 0 {
		c.Outcomes.AdultMortalityBefore = 0.22
		c.Outcomes.AdultMortalityAfter = 0.15
	}
	if c.Dashboard.DefaultAdoptionRate == 0 {
		c.Dashboard.DefaultAdoptionRate = 50
	}
	if c.Dashboard.SliderStep == 0 {
		c.Dashboard.SliderStep = 1
	}
	if c.Sweep.MaxRate == 0 {
		c.Sweep.MaxRate = 100
	}
	if c.Sweep.StepSize == 0 {
		c.Sweep.StepSize = 5
	}
	if c.Server.Address == "" {
		c.Server.Address = "localhost:0"
	}
}
