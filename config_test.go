package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaultConfig(t *testing.T) {
	config, err := LoadDefaultConfig()
	if err != nil {
		t.Fatalf("Embedded default config failed to load: %v", err)
	}

	if config.Country != "Zachistan" {
		t.Errorf("Default country: got %q, want Zachistan", config.Country)
	}
	if config.Incumbent.Name != "Huffstatin" || config.Candidate.Name != "Clairadol" {
		t.Errorf("Default treatments: got %q vs %q", config.Incumbent.Name, config.Candidate.Name)
	}
	if config.Incumbent.TotalCost != 3329170 {
		t.Errorf("Incumbent total cost: got %.0f, want 3329170", config.Incumbent.TotalCost)
	}
	if config.Candidate.TotalCost != 3348239 {
		t.Errorf("Candidate total cost: got %.0f, want 3348239", config.Candidate.TotalCost)
	}
	if config.Outcomes.PotentialLivesTotal() != 14227 {
		t.Errorf("Potential lives total: got %.0f, want 14227", config.Outcomes.PotentialLivesTotal())
	}
	if config.Dashboard.DefaultAdoptionRate != 50 {
		t.Errorf("Default adoption rate: got %g, want 50", config.Dashboard.DefaultAdoptionRate)
	}
	if config.Dashboard.SliderStep != 1 {
		t.Errorf("Slider step: got %g, want 1", config.Dashboard.SliderStep)
	}
}

func TestApplyDefaultsFillsMissingSections(t *testing.T) {
	// A config that only names the country still gets the full dataset
	config := &Config{Country: "Elsewhere"}
	config.ApplyDefaults()

	if config.Country != "Elsewhere" {
		t.Errorf("Explicit country was overwritten: %q", config.Country)
	}
	if config.Incumbent.TotalCost != 3329170 {
		t.Errorf("Incumbent costs not defaulted: %.0f", config.Incumbent.TotalCost)
	}
	if config.Outcomes.ChildrenPotentialLives != 9647 {
		t.Errorf("Outcome data not defaulted: %.0f", config.Outcomes.ChildrenPotentialLives)
	}
	if config.Sweep.MaxRate != 100 || config.Sweep.StepSize != 5 {
		t.Errorf("Sweep settings not defaulted: max %g step %g", config.Sweep.MaxRate, config.Sweep.StepSize)
	}
	if config.Server.Address != "localhost:0" {
		t.Errorf("Server address not defaulted: %q", config.Server.Address)
	}
}

func TestServerAddressConfigurable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := "server:\n  address: \"127.0.0.1:8080\"\n"
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if config.Server.Address != "127.0.0.1:8080" {
		t.Errorf("Configured server address dropped: got %q, want 127.0.0.1:8080", config.Server.Address)
	}
	// The rest of the dataset still fills in
	if config.Candidate.TotalCost != 3348239 {
		t.Errorf("Dataset defaults missing alongside server section: %.0f", config.Candidate.TotalCost)
	}
}

func TestApplyDefaultsKeepsExplicitValues(t *testing.T) {
	config := &Config{}
	config.Incumbent.Name = "OldDrug"
	config.Incumbent.TotalCost = 1000000
	config.Dashboard.DefaultAdoptionRate = 75
	config.ApplyDefaults()

	if config.Incumbent.Name != "OldDrug" || config.Incumbent.TotalCost != 1000000 {
		t.Errorf("Explicit incumbent settings overwritten: %q %.0f",
			config.Incumbent.Name, config.Incumbent.TotalCost)
	}
	if config.Dashboard.DefaultAdoptionRate != 75 {
		t.Errorf("Explicit default rate overwritten: %g", config.Dashboard.DefaultAdoptionRate)
	}
}

func TestPotentialLivesTotalFallsBackToSum(t *testing.T) {
	out := OutcomeConfig{ChildrenPotentialLives: 100, AdultPotentialLives: 50}
	if out.PotentialLivesTotal() != 150 {
		t.Errorf("Fallback total: got %.0f, want 150", out.PotentialLivesTotal())
	}

	out.TotalPotentialLives = 149
	if out.PotentialLivesTotal() != 149 {
		t.Errorf("Explicit total should win: got %.0f, want 149", out.PotentialLivesTotal())
	}
}

func TestSaveAndLoadConfigRoundTrip(t *testing.T) {
	config, err := LoadDefaultConfig()
	if err != nil {
		t.Fatalf("Default config failed to load: %v", err)
	}
	config.Dashboard.DefaultAdoptionRate = 60

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := SaveConfig(config, path); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if loaded.Country != config.Country {
		t.Errorf("Country did not round-trip: %q vs %q", loaded.Country, config.Country)
	}
	if loaded.Candidate.TotalCost != config.Candidate.TotalCost {
		t.Errorf("Candidate cost did not round-trip: %.0f vs %.0f",
			loaded.Candidate.TotalCost, config.Candidate.TotalCost)
	}
	if loaded.Dashboard.DefaultAdoptionRate != 60 {
		t.Errorf("Dashboard setting did not round-trip: %g", loaded.Dashboard.DefaultAdoptionRate)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if !os.IsNotExist(err) {
		t.Errorf("Expected a not-exist error, got %v", err)
	}
}

func TestLoadConfigRejectsInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("country: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Error("Expected an error for malformed YAML")
	}
}
