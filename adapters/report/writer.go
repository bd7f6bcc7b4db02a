// Package report serializes numeric results to flat, human-readable files.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"claimstat/domain/core"
	"claimstat/domain/run"
	domstats "claimstat/domain/stats"
)

// Writer writes named results into a fixed output directory.
type Writer struct {
	dir string
}

// NewWriter creates a writer rooted at dir, creating it if needed.
func NewWriter(dir string) (*Writer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, core.NewWriteError(dir, err)
	}
	return &Writer{dir: dir}, nil
}

// Path returns the full path for a named output file.
func (w *Writer) Path(name string) string {
	return filepath.Join(w.dir, name)
}

// WriteSummaryCSV writes a summary-statistics record as name,value rows.
func (w *Writer) WriteSummaryCSV(name string, s domstats.SummaryStats) error {
	rows := [][]string{
		{"statistic", "value"},
		{"count", strconv.Itoa(s.Count)},
		{"mean", formatFloat(s.Mean)},
		{"median", formatFloat(s.Median)},
		{"sample_variance", formatFloat(s.SampleVariance)},
		{"population_variance", formatFloat(s.PopulationVariance)},
		{"std_dev", formatFloat(s.StdDev)},
		{"min", formatFloat(s.Min)},
		{"max", formatFloat(s.Max)},
		{"q1", formatFloat(s.Q1)},
		{"q3", formatFloat(s.Q3)},
		{"iqr", formatFloat(s.IQR)},
		{"skewness", formatFloat(s.Skewness)},
		{"kurtosis", formatFloat(s.Kurtosis)},
	}
	return w.writeCSV(name, rows)
}

// WriteFrequencyCSV writes a frequency distribution, one bin per row.
func (w *Writer) WriteFrequencyCSV(name string, d domstats.FrequencyDistribution) error {
	rows := [][]string{{"range", "frequency", "relative_pct", "cumulative_pct"}}
	for _, b := range d.Bins {
		rows = append(rows, []string{
			b.Label,
			strconv.Itoa(b.Count),
			formatFloat(b.RelativePct),
			formatFloat(b.CumulativePct),
		})
	}
	return w.writeCSV(name, rows)
}

// WriteMatrixCSV writes a labeled square matrix with a leading label column.
func (w *Writer) WriteMatrixCSV(name string, m domstats.Matrix) error {
	header := append([]string{""}, m.Labels...)
	rows := [][]string{header}
	for i, label := range m.Labels {
		row := make([]string, 0, len(m.Labels)+1)
		row = append(row, label)
		for _, v := range m.Values[i] {
			row = append(row, formatFloat(v))
		}
		rows = append(rows, row)
	}
	return w.writeCSV(name, rows)
}

// WriteTTest writes a Welch t-test result as a flat text file.
func (w *Writer) WriteTTest(name string, r domstats.TTestResult) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Welch t-test: t=%.4f, df=%.2f, p=%.6f\n", r.T, r.DF, r.PValue)
	fmt.Fprintf(&b, "group A: mean=%.4f n=%d\n", r.MeanA, r.SizeA)
	fmt.Fprintf(&b, "group B: mean=%.4f n=%d\n", r.MeanB, r.SizeB)
	fmt.Fprintf(&b, "Cohen's d=%.4f\n", r.CohensD)
	return w.writeText(name, b.String())
}

// WriteANOVA writes a one-way ANOVA result as a flat text file.
func (w *Writer) WriteANOVA(name string, r domstats.ANOVAResult) error {
	var b strings.Builder
	fmt.Fprintf(&b, "ANOVA: F=%.4f, p=%.6f\n", r.F, r.PValue)
	fmt.Fprintf(&b, "df between=%d, df within=%d, groups=%d, n=%d\n",
		r.DFBetween, r.DFWithin, r.Groups, r.N)
	return w.writeText(name, b.String())
}

// WriteChiSquare writes a chi-square result with observed and expected tables.
func (w *Writer) WriteChiSquare(name string, rowLabels, colLabels []string, r domstats.ChiSquareResult) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Chi-square: chi2=%.4f, p=%.6f, dof=%d\n", r.ChiSquare, r.PValue, r.DF)
	fmt.Fprintf(&b, "Cramer's V=%.4f\n\n", r.CramersV)

	b.WriteString("Observed:\n")
	writeTableHeader(&b, colLabels)
	for i, label := range rowLabels {
		fmt.Fprintf(&b, "%-12s", label)
		for _, c := range r.Observed[i] {
			fmt.Fprintf(&b, "%12d", c)
		}
		b.WriteString("\n")
	}

	b.WriteString("\nExpected:\n")
	writeTableHeader(&b, colLabels)
	for i, label := range rowLabels {
		fmt.Fprintf(&b, "%-12s", label)
		for _, e := range r.Expected[i] {
			fmt.Fprintf(&b, "%12.2f", e)
		}
		b.WriteString("\n")
	}

	for _, warning := range r.Warnings {
		fmt.Fprintf(&b, "\nwarning: %s", warning)
	}
	if len(r.Warnings) > 0 {
		b.WriteString("\n")
	}
	return w.writeText(name, b.String())
}

// WriteExpectedValue writes the probability/payoff table as CSV and the
// scalar result as text.
func (w *Writer) WriteExpectedValue(tableName, resultName string, t domstats.ExpectedValueTable) error {
	rows := [][]string{{"outcome", "probability", "payoff", "contribution"}}
	for _, r := range t.Rows {
		rows = append(rows, []string{
			r.Outcome,
			formatFloat(r.Probability),
			formatFloat(r.Payoff),
			formatFloat(r.Contribution),
		})
	}
	if err := w.writeCSV(tableName, rows); err != nil {
		return err
	}
	return w.writeText(resultName, fmt.Sprintf("Expected Claim Cost = %.2f\n", t.Value))
}

// WriteProbability writes the empirical-vs-theoretical probability demo.
func (w *Writer) WriteProbability(name string, observedShare float64, threshold float64, sim domstats.SimulationResult) error {
	var b strings.Builder
	fmt.Fprintf(&b, "P(ClaimAmount > %.0f) observed in data = %.4f\n", threshold, observedShare)
	fmt.Fprintf(&b, "simulated empirical frequency over %d trials (seed %d) = %.4f\n",
		sim.Trials, sim.Seed, sim.Empirical)
	fmt.Fprintf(&b, "theoretical probability = %.4f\n", sim.Theoretical)
	return w.writeText(name, b.String())
}

// WriteManifest writes the run manifest as indented JSON.
func (w *Writer) WriteManifest(name string, m *run.Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return core.NewWriteError(w.Path(name), err)
	}
	return w.writeBytes(name, append(data, '\n'))
}

func (w *Writer) writeCSV(name string, rows [][]string) error {
	path := w.Path(name)
	f, err := os.Create(path)
	if err != nil {
		return core.NewWriteError(path, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.WriteAll(rows); err != nil {
		return core.NewWriteError(path, err)
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return core.NewWriteError(path, err)
	}
	return nil
}

func (w *Writer) writeText(name, content string) error {
	return w.writeBytes(name, []byte(content))
}

func (w *Writer) writeBytes(name string, data []byte) error {
	path := w.Path(name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return core.NewWriteError(path, err)
	}
	return nil
}

func writeTableHeader(b *strings.Builder, colLabels []string) {
	fmt.Fprintf(b, "%-12s", "")
	for _, c := range colLabels {
		fmt.Fprintf(b, "%12s", c)
	}
	b.WriteString("\n")
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
