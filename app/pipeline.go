package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"claimstat/adapters/charts"
	"claimstat/adapters/report"
	"claimstat/adapters/stats"
	"claimstat/adapters/tabular"
	"claimstat/domain/core"
	"claimstat/domain/run"
	"claimstat/internal"
	"claimstat/internal/config"
	apperrors "claimstat/internal/errors"
)

// CodeVersion is stamped into run manifests.
const CodeVersion = "claimstat/0.1.0"

// Fixed analysis parameters, matching the reference dataset's report.
const (
	claimBinWidth      = 400.0
	revenueBinTarget   = 12
	highClaimThreshold = 2500.0
)

// Expected-value demo table: claim categories with their probabilities and
// average costs.
var (
	claimCategories  = []string{"Routine", "Specialist", "Emergency"}
	categoryProbs    = []float64{0.62, 0.28, 0.10}
	categoryAvgCosts = []float64{1000, 3000, 10000}
)

// Pipeline runs the full descriptive-analytics pass: load both tables,
// compute every statistic, render every figure, write every result file.
// Each stage is an independent pure computation; the pipeline only sequences
// them and owns the output side effects.
type Pipeline struct {
	cfg    *config.Config
	logger *internal.Logger
}

// NewPipeline creates a pipeline bound to a configuration.
func NewPipeline(cfg *config.Config, logger *internal.Logger) *Pipeline {
	return &Pipeline{cfg: cfg, logger: logger}
}

// Run executes the analysis end to end. The first failing step aborts the
// run; partial outputs are not cleaned up but the manifest is only written
// on success.
func (p *Pipeline) Run(ctx context.Context) error {
	manifest := run.NewManifest(
		p.cfg.Run.Seed,
		[]string{p.cfg.Paths.ClaimsFile, p.cfg.Paths.RevenueFile},
		CodeVersion,
	)
	p.logger.Info("starting analysis run %s (seed %d)", manifest.RunID, manifest.Seed)

	if err := os.MkdirAll(p.cfg.Paths.FiguresDir, 0o755); err != nil {
		return core.NewWriteError(p.cfg.Paths.FiguresDir, err)
	}
	writer, err := report.NewWriter(p.cfg.Paths.OutputDir)
	if err != nil {
		return err
	}

	claims, revenue, err := p.loadTables(ctx)
	if err != nil {
		return err
	}

	amounts, err := claims.NumericColumn("ClaimAmount")
	if err != nil {
		return err
	}

	summary := report.NewSummaryBuilder("Claims Analysis Report")

	steps := []struct {
		name string
		fn   func() error
	}{
		{"descriptive_stats", func() error { return p.describeClaims(writer, summary, manifest, amounts) }},
		{"frequency_distribution", func() error { return p.frequencyDistribution(writer, summary, manifest, amounts) }},
		{"figures", func() error { return p.renderFigures(manifest, claims, amounts) }},
		{"correlation_covariance", func() error { return p.correlationCovariance(writer, manifest, claims) }},
		{"welch_ttest", func() error { return p.welchBySmoker(writer, summary, manifest, claims) }},
		{"anova", func() error { return p.anovaByDepartment(writer, summary, manifest, claims) }},
		{"chi_square", func() error { return p.chiSquareDeniedSmoker(writer, summary, manifest, claims) }},
		{"expected_value", func() error { return p.expectedValue(writer, summary, manifest) }},
		{"probability_demo", func() error { return p.probabilityDemo(writer, summary, manifest, amounts) }},
		{"revenue", func() error { return p.revenueAnalysis(writer, summary, manifest, revenue) }},
		{"report", func() error { return p.writeReport(writer, summary, manifest) }},
	}

	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		p.logger.Info("step: %s", step.name)
		if err := step.fn(); err != nil {
			p.logger.Error("step %s failed: %v", step.name, err)
			return apperrors.Wrapf(err, "step %s failed", step.name)
		}
	}

	manifest.Complete()
	if err := manifest.Validate(); err != nil {
		return err
	}
	if err := writer.WriteManifest("run_manifest.json", manifest); err != nil {
		return err
	}

	p.logger.Info("analysis complete: %d artifacts in %s and %s",
		len(manifest.Artifacts), p.cfg.Paths.OutputDir, p.cfg.Paths.FiguresDir)
	return nil
}

func (p *Pipeline) loadTables(ctx context.Context) (*tabular.Table, *tabular.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	claims, err := tabular.NewTableReader(p.cfg.Paths.ClaimsFile).Read()
	if err != nil {
		return nil, nil, err
	}
	if err := claims.RequireColumns("Age", "Department", "ClaimAmount", "IsSmoker", "Denied"); err != nil {
		return nil, nil, err
	}

	revenue, err := tabular.NewTableReader(p.cfg.Paths.RevenueFile).Read()
	if err != nil {
		return nil, nil, err
	}
	if err := revenue.RequireColumns("Month", "Revenue"); err != nil {
		return nil, nil, err
	}

	p.logger.Debug("loaded %d claims rows, %d revenue rows", claims.Len(), revenue.Len())
	return claims, revenue, nil
}

func (p *Pipeline) describeClaims(w *report.Writer, s *report.SummaryBuilder, m *run.Manifest, amounts []float64) error {
	desc, err := stats.Describe(amounts)
	if err != nil {
		return err
	}
	if err := w.WriteSummaryCSV("descriptive_stats_claims.csv", desc); err != nil {
		return err
	}
	s.AddSummary("Claim Amounts", desc)
	m.Record(run.ArtifactSummary, w.Path("descriptive_stats_claims.csv"))
	return nil
}

func (p *Pipeline) frequencyDistribution(w *report.Writer, s *report.SummaryBuilder, m *run.Manifest, amounts []float64) error {
	dist, err := stats.FrequencyTable("ClaimAmount", amounts, claimBinWidth)
	if err != nil {
		return err
	}
	if err := w.WriteFrequencyCSV("frequency_distribution_claims.csv", dist); err != nil {
		return err
	}
	s.AddTest("Frequency Distribution",
		fmt.Sprintf("%d bins of width %.0f over %d claims.", len(dist.Bins), dist.BinWidth, dist.Total))
	m.Record(run.ArtifactFrequency, w.Path("frequency_distribution_claims.csv"))
	return nil
}

func (p *Pipeline) renderFigures(m *run.Manifest, claims *tabular.Table, amounts []float64) error {
	dist, err := stats.FrequencyTable("ClaimAmount", amounts, claimBinWidth)
	if err != nil {
		return err
	}

	histPath := p.figPath("hist_claim_amounts.html")
	if err := charts.Histogram(dist, "Histogram of Claim Amounts", "Claim Amount", histPath); err != nil {
		return err
	}
	m.Record(run.ArtifactChart, histPath)

	boxAllPath := p.figPath("box_claim_all.html")
	if err := charts.BoxPlot([]string{"All"}, [][]float64{amounts},
		"Box Plot: Claim Amounts (All)", "Claim Amount", boxAllPath); err != nil {
		return err
	}
	m.Record(run.ArtifactChart, boxAllPath)

	deptNames, deptGroups, err := claims.GroupBy("Department", "ClaimAmount")
	if err != nil {
		return err
	}
	sortGroups(deptNames, deptGroups)
	boxDeptPath := p.figPath("box_claim_by_dept.html")
	if err := charts.BoxPlot(deptNames, deptGroups,
		"Box Plot: Claim Amounts by Department", "Claim Amount", boxDeptPath); err != nil {
		return err
	}
	m.Record(run.ArtifactChart, boxDeptPath)

	ages, err := claims.NumericColumn("Age")
	if err != nil {
		return err
	}
	scatterPath := p.figPath("scatter_age_claim.html")
	if err := charts.Scatter(ages, amounts,
		"Scatterplot: Age vs Claim Amount", "Age", "Claim Amount", scatterPath); err != nil {
		return err
	}
	m.Record(run.ArtifactChart, scatterPath)
	return nil
}

func (p *Pipeline) correlationCovariance(w *report.Writer, m *run.Manifest, claims *tabular.Table) error {
	labels := []string{"Age", "ClaimAmount", "IsSmoker", "Denied"}
	columns := make([][]float64, len(labels))
	for i, label := range labels {
		col, err := claims.NumericColumn(label)
		if err != nil {
			return err
		}
		columns[i] = col
	}

	corr, err := stats.CorrelationMatrix(labels, columns)
	if err != nil {
		return err
	}
	if err := w.WriteMatrixCSV("correlation_matrix.csv", corr); err != nil {
		return err
	}
	m.Record(run.ArtifactMatrix, w.Path("correlation_matrix.csv"))

	cov, err := stats.CovarianceMatrix(labels, columns)
	if err != nil {
		return err
	}
	if err := w.WriteMatrixCSV("covariance_matrix.csv", cov); err != nil {
		return err
	}
	m.Record(run.ArtifactMatrix, w.Path("covariance_matrix.csv"))
	return nil
}

func (p *Pipeline) welchBySmoker(w *report.Writer, s *report.SummaryBuilder, m *run.Manifest, claims *tabular.Table) error {
	smokers, nonSmokers, err := splitBinary(claims, "IsSmoker", "ClaimAmount")
	if err != nil {
		return err
	}
	result, err := stats.WelchTTest(smokers, nonSmokers)
	if err != nil {
		return err
	}
	if err := w.WriteTTest("t_test_smoker_vs_nonsmoker.txt", result); err != nil {
		return err
	}
	s.AddTest("Welch t-test: smokers vs non-smokers",
		fmt.Sprintf("t=%.4f, df=%.2f, p=%.6f", result.T, result.DF, result.PValue))
	m.Record(run.ArtifactTestResult, w.Path("t_test_smoker_vs_nonsmoker.txt"))
	return nil
}

func (p *Pipeline) anovaByDepartment(w *report.Writer, s *report.SummaryBuilder, m *run.Manifest, claims *tabular.Table) error {
	deptNames, deptGroups, err := claims.GroupBy("Department", "ClaimAmount")
	if err != nil {
		return err
	}
	sortGroups(deptNames, deptGroups)

	result, err := stats.OneWayANOVA(deptGroups...)
	if err != nil {
		return err
	}
	if err := w.WriteANOVA("anova_by_department.txt", result); err != nil {
		return err
	}
	s.AddTest("One-way ANOVA: claim amount by department",
		fmt.Sprintf("F=%.4f, p=%.6f across %d departments", result.F, result.PValue, result.Groups))
	m.Record(run.ArtifactTestResult, w.Path("anova_by_department.txt"))
	return nil
}

func (p *Pipeline) chiSquareDeniedSmoker(w *report.Writer, s *report.SummaryBuilder, m *run.Manifest, claims *tabular.Table) error {
	denied, err := claims.StringColumn("Denied")
	if err != nil {
		return err
	}
	smoker, err := claims.StringColumn("IsSmoker")
	if err != nil {
		return err
	}

	rowLabels, colLabels, table, err := stats.Crosstab(denied, smoker)
	if err != nil {
		return err
	}
	result, err := stats.ChiSquareIndependence(table)
	if err != nil {
		return err
	}
	if err := w.WriteChiSquare("chi_square_denied_vs_smoker.txt", rowLabels, colLabels, result); err != nil {
		return err
	}
	s.AddTest("Chi-square: denied vs smoker",
		fmt.Sprintf("chi2=%.4f, p=%.6f, dof=%d", result.ChiSquare, result.PValue, result.DF))
	m.Record(run.ArtifactTestResult, w.Path("chi_square_denied_vs_smoker.txt"))
	return nil
}

func (p *Pipeline) expectedValue(w *report.Writer, s *report.SummaryBuilder, m *run.Manifest) error {
	table, err := stats.ExpectedValue(claimCategories, categoryProbs, categoryAvgCosts)
	if err != nil {
		return err
	}
	if err := w.WriteExpectedValue("expected_value_table.csv", "expected_value_result.txt", table); err != nil {
		return err
	}
	s.AddTest("Expected claim cost", fmt.Sprintf("%.2f", table.Value))
	m.Record(run.ArtifactExpectedCost, w.Path("expected_value_table.csv"))
	m.Record(run.ArtifactExpectedCost, w.Path("expected_value_result.txt"))
	return nil
}

func (p *Pipeline) probabilityDemo(w *report.Writer, s *report.SummaryBuilder, m *run.Manifest, amounts []float64) error {
	share, err := stats.EmpiricalShare(amounts, highClaimThreshold)
	if err != nil {
		return err
	}

	sim, err := stats.NewSimulator(p.cfg.Run.Seed).Run(share, p.cfg.Run.Trials)
	if err != nil {
		return err
	}
	if err := w.WriteProbability("probability_demo.txt", share, highClaimThreshold, sim); err != nil {
		return err
	}
	s.AddTest("Empirical probability",
		fmt.Sprintf("P(ClaimAmount > %.0f) = %.4f observed, %.4f simulated over %d trials",
			highClaimThreshold, share, sim.Empirical, sim.Trials))
	m.Record(run.ArtifactProbability, w.Path("probability_demo.txt"))
	return nil
}

func (p *Pipeline) revenueAnalysis(w *report.Writer, s *report.SummaryBuilder, m *run.Manifest, revenue *tabular.Table) error {
	values, err := revenue.NumericColumn("Revenue")
	if err != nil {
		return err
	}

	width := stats.DefaultBinWidth(values, revenueBinTarget)
	dist, err := stats.FrequencyTable("Revenue", values, width)
	if err != nil {
		return err
	}
	histPath := p.figPath("hist_revenue.html")
	if err := charts.Histogram(dist, "Histogram of Monthly Revenue", "Revenue", histPath); err != nil {
		return err
	}
	m.Record(run.ArtifactChart, histPath)

	desc, err := stats.Describe(values)
	if err != nil {
		return err
	}
	if err := w.WriteSummaryCSV("revenue_descriptive_stats.csv", desc); err != nil {
		return err
	}
	s.AddSummary("Monthly Revenue", desc)
	m.Record(run.ArtifactSummary, w.Path("revenue_descriptive_stats.csv"))
	return nil
}

func (p *Pipeline) writeReport(w *report.Writer, s *report.SummaryBuilder, m *run.Manifest) error {
	for _, a := range m.Artifacts {
		s.AddArtifact(string(a.Kind), a.Path)
	}
	if err := s.WriteReport(w, "report.html"); err != nil {
		return err
	}
	m.Record(run.ArtifactReport, w.Path("report.html"))
	return nil
}

func (p *Pipeline) figPath(name string) string {
	return filepath.Join(p.cfg.Paths.FiguresDir, name)
}

// splitBinary splits a numeric column into the "1" and "0" groups of a
// binary categorical column.
func splitBinary(t *tabular.Table, binaryColumn, numColumn string) (ones, zeros []float64, err error) {
	names, groups, err := t.GroupBy(binaryColumn, numColumn)
	if err != nil {
		return nil, nil, err
	}
	for i, name := range names {
		switch name {
		case "1":
			ones = groups[i]
		case "0":
			zeros = groups[i]
		default:
			return nil, nil, core.NewDataFormatError(t.Name,
				"column "+binaryColumn+" is not binary, found value "+name)
		}
	}
	if len(ones) == 0 || len(zeros) == 0 {
		return nil, nil, core.ErrInsufficientData
	}
	return ones, zeros, nil
}

// sortGroups orders parallel name/group slices by name.
func sortGroups(names []string, groups [][]float64) {
	sort.Sort(&groupSorter{names: names, groups: groups})
}

type groupSorter struct {
	names  []string
	groups [][]float64
}

func (g *groupSorter) Len() int           { return len(g.names) }
func (g *groupSorter) Less(i, j int) bool { return g.names[i] < g.names[j] }
func (g *groupSorter) Swap(i, j int) {
	g.names[i], g.names[j] = g.names[j], g.names[i]
	g.groups[i], g.groups[j] = g.groups[j], g.groups[i]
}
