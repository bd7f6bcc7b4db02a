package config

import (
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("default config rejected: %v", err)
	}

	if cfg.Paths.OutputDir != "outputs" {
		t.Errorf("unexpected default output dir: %s", cfg.Paths.OutputDir)
	}
	if cfg.Run.Seed != 42 {
		t.Errorf("unexpected default seed: %d", cfg.Run.Seed)
	}
	if cfg.Run.Trials != 10000 {
		t.Errorf("unexpected default trial count: %d", cfg.Run.Trials)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DATA_DIR", "/tmp/data")
	t.Setenv("CLAIMS_FILE", "/tmp/data/my_claims.csv")
	t.Setenv("SEED", "7")
	t.Setenv("TRIALS", "500")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("config with env overrides rejected: %v", err)
	}

	if cfg.Paths.ClaimsFile != "/tmp/data/my_claims.csv" {
		t.Errorf("CLAIMS_FILE override ignored: %s", cfg.Paths.ClaimsFile)
	}
	if cfg.Run.Seed != 7 {
		t.Errorf("SEED override ignored: %d", cfg.Run.Seed)
	}
	if cfg.Run.Trials != 500 {
		t.Errorf("TRIALS override ignored: %d", cfg.Run.Trials)
	}
}

func TestLoad_InvalidTrials(t *testing.T) {
	t.Setenv("TRIALS", "-1")
	if _, err := Load(); err == nil {
		t.Fatal("negative trial count accepted")
	}
}
