package run

import (
	"claimstat/domain/core"
)

// Manifest records everything needed to reproduce a pipeline run.
// It is written once, after the run completes, and is the truth source
// for replaying or auditing a set of output artifacts.
type Manifest struct {
	RunID       core.RunID     `json:"run_id"`
	Seed        int64          `json:"seed"`
	Inputs      []string       `json:"inputs"`
	Artifacts   []Artifact     `json:"artifacts"`
	StartedAt   core.Timestamp `json:"started_at"`
	CompletedAt core.Timestamp `json:"completed_at"`
	CodeVersion string         `json:"code_version"`
}

// Artifact is one output file produced by a run.
type Artifact struct {
	Kind ArtifactKind `json:"kind"`
	Path string       `json:"path"`
}

// ArtifactKind defines types of run outputs.
type ArtifactKind string

const (
	ArtifactSummary      ArtifactKind = "summary"
	ArtifactFrequency    ArtifactKind = "frequency"
	ArtifactMatrix       ArtifactKind = "matrix"
	ArtifactTestResult   ArtifactKind = "test_result"
	ArtifactChart        ArtifactKind = "chart"
	ArtifactReport       ArtifactKind = "report"
	ArtifactProbability  ArtifactKind = "probability"
	ArtifactExpectedCost ArtifactKind = "expected_cost"
)

// NewManifest creates a manifest for a run that is about to start.
func NewManifest(seed int64, inputs []string, codeVersion string) *Manifest {
	return &Manifest{
		RunID:       core.RunID(core.NewID()),
		Seed:        seed,
		Inputs:      inputs,
		StartedAt:   core.Now(),
		CodeVersion: codeVersion,
	}
}

// Record appends an output artifact to the manifest.
func (m *Manifest) Record(kind ArtifactKind, path string) {
	m.Artifacts = append(m.Artifacts, Artifact{Kind: kind, Path: path})
}

// Complete stamps the completion time.
func (m *Manifest) Complete() {
	m.CompletedAt = core.Now()
}

// Validate checks if the manifest is complete.
func (m *Manifest) Validate() error {
	if core.ID(m.RunID).IsEmpty() {
		return core.NewDataFormatError("run_manifest", "run_id cannot be empty")
	}
	if len(m.Inputs) == 0 {
		return core.NewDataFormatError("run_manifest", "inputs cannot be empty")
	}
	if m.CompletedAt.IsZero() {
		return core.NewDataFormatError("run_manifest", "run has not completed")
	}
	return nil
}
