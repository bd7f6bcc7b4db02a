package report

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"claimstat/domain/run"
	domstats "claimstat/domain/stats"
)

func newTestWriter(t *testing.T) *Writer {
	t.Helper()
	w, err := NewWriter(t.TempDir())
	require.NoError(t, err)
	return w
}

func TestWriteSummaryCSV_Roundtrip(t *testing.T) {
	w := newTestWriter(t)

	err := w.WriteSummaryCSV("summary.csv", domstats.SummaryStats{
		Count: 5, Mean: 300, Median: 300, PopulationVariance: 20000,
	})
	require.NoError(t, err)

	f, err := os.Open(w.Path("summary.csv"))
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	require.Equal(t, 14, len(rows)) // header + 13 statistics
	assert.Equal(t, []string{"statistic", "value"}, rows[0])
	assert.Equal(t, []string{"mean", "300"}, rows[2])
}

func TestWriteFrequencyCSV(t *testing.T) {
	w := newTestWriter(t)

	err := w.WriteFrequencyCSV("freq.csv", domstats.FrequencyDistribution{
		Total: 5,
		Bins: []domstats.FrequencyBin{
			{Label: "0-399", Count: 3, RelativePct: 60, CumulativePct: 60},
			{Label: "400-799", Count: 2, RelativePct: 40, CumulativePct: 100},
		},
	})
	require.NoError(t, err)

	content, err := os.ReadFile(w.Path("freq.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "0-399,3,60,60")
}

func TestWriteChiSquare_Tables(t *testing.T) {
	w := newTestWriter(t)

	err := w.WriteChiSquare("chi.txt",
		[]string{"0", "1"}, []string{"0", "1"},
		domstats.ChiSquareResult{
			ChiSquare: 0, DF: 1, PValue: 1,
			Observed: [][]int{{10, 10}, {10, 10}},
			Expected: [][]float64{{10, 10}, {10, 10}},
			Warnings: []string{"expected count 4.90 below 5 at cell (1,1)"},
		})
	require.NoError(t, err)

	content, err := os.ReadFile(w.Path("chi.txt"))
	require.NoError(t, err)
	text := string(content)
	assert.Contains(t, text, "chi2=0.0000")
	assert.Contains(t, text, "Observed:")
	assert.Contains(t, text, "Expected:")
	assert.Contains(t, text, "warning:")
}

func TestWriteManifest_JSON(t *testing.T) {
	w := newTestWriter(t)

	m := run.NewManifest(42, []string{"claims.csv"}, "test")
	m.Record(run.ArtifactSummary, "out/summary.csv")
	m.Complete()

	require.NoError(t, w.WriteManifest("manifest.json", m))

	content, err := os.ReadFile(w.Path("manifest.json"))
	require.NoError(t, err)

	var decoded run.Manifest
	require.NoError(t, json.Unmarshal(content, &decoded))
	assert.Equal(t, m.RunID, decoded.RunID)
	assert.Equal(t, int64(42), decoded.Seed)
	require.Len(t, decoded.Artifacts, 1)
}

func TestSummaryBuilder_RenderHTML(t *testing.T) {
	b := NewSummaryBuilder("Test Report")
	b.AddSummary("Claims", domstats.SummaryStats{Count: 3, Mean: 2})
	b.AddTest("Welch t-test", "t=-3.67, p=0.021")
	b.AddArtifact("summary", "outputs/summary.csv")

	html := string(b.RenderHTML())
	assert.True(t, strings.Contains(html, "<html"))
	assert.Contains(t, html, "Test Report")
	assert.Contains(t, html, "Welch t-test")
}

func TestWriter_WriteFailure(t *testing.T) {
	w := &Writer{dir: "/nonexistent-root-dir/deep"}
	err := w.WriteSummaryCSV("x.csv", domstats.SummaryStats{})
	assert.Error(t, err)
}
