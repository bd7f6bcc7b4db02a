package stats

import (
	"testing"
)

func TestFrequencyDistribution_Validate(t *testing.T) {
	valid := FrequencyDistribution{
		Column: "x",
		Total:  4,
		Bins: []FrequencyBin{
			{Label: "0-9", Count: 1, CumulativePct: 25},
			{Label: "10-19", Count: 3, CumulativePct: 100},
		},
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid distribution rejected: %v", err)
	}
}

func TestFrequencyDistribution_Validate_Empty(t *testing.T) {
	var d FrequencyDistribution
	if err := d.Validate(); err == nil {
		t.Fatal("empty distribution accepted")
	}
}

func TestFrequencyDistribution_Validate_NonMonotonic(t *testing.T) {
	d := FrequencyDistribution{
		Bins: []FrequencyBin{
			{CumulativePct: 60},
			{CumulativePct: 40},
		},
	}
	if err := d.Validate(); err == nil {
		t.Fatal("non-monotonic cumulative percentages accepted")
	}
}

func TestFrequencyDistribution_Validate_NotClosing(t *testing.T) {
	d := FrequencyDistribution{
		Bins: []FrequencyBin{
			{CumulativePct: 50},
			{CumulativePct: 99.5},
		},
	}
	if err := d.Validate(); err == nil {
		t.Fatal("distribution not closing at 100 accepted")
	}
}

func TestFrequencyDistribution_Validate_WithinTolerance(t *testing.T) {
	d := FrequencyDistribution{
		Bins: []FrequencyBin{
			{CumulativePct: 50},
			{CumulativePct: 99.995},
		},
	}
	if err := d.Validate(); err != nil {
		t.Fatalf("distribution within rounding tolerance rejected: %v", err)
	}
}
