package run

import (
	"testing"
)

func TestManifest_Lifecycle(t *testing.T) {
	m := NewManifest(42, []string{"data/claims.csv", "data/revenue_monthly.csv"}, "test")

	if m.RunID == "" {
		t.Fatal("manifest has no run ID")
	}
	if m.StartedAt.IsZero() {
		t.Fatal("manifest has no start time")
	}

	m.Record(ArtifactSummary, "outputs/descriptive_stats_claims.csv")
	m.Record(ArtifactChart, "figures/hist_claim_amounts.html")

	if len(m.Artifacts) != 2 {
		t.Fatalf("expected 2 artifacts, got %d", len(m.Artifacts))
	}

	// Incomplete manifest must not validate
	if err := m.Validate(); err == nil {
		t.Fatal("incomplete manifest validated")
	}

	m.Complete()
	if err := m.Validate(); err != nil {
		t.Fatalf("completed manifest rejected: %v", err)
	}
}

func TestManifest_RequiresInputs(t *testing.T) {
	m := NewManifest(1, nil, "test")
	m.Complete()
	if err := m.Validate(); err == nil {
		t.Fatal("manifest without inputs validated")
	}
}

func TestManifest_UniqueRunIDs(t *testing.T) {
	a := NewManifest(1, []string{"x"}, "test")
	b := NewManifest(1, []string{"x"}, "test")
	if a.RunID == b.RunID {
		t.Fatal("two manifests share a run ID")
	}
}
