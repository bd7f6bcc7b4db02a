package report

import (
	"fmt"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	domstats "claimstat/domain/stats"
)

// SummaryBuilder accumulates a markdown run summary section by section and
// renders it to a single HTML report at the end of the run.
type SummaryBuilder struct {
	title string
	body  strings.Builder
}

// NewSummaryBuilder starts a summary document with the given title.
func NewSummaryBuilder(title string) *SummaryBuilder {
	b := &SummaryBuilder{title: title}
	fmt.Fprintf(&b.body, "# %s\n\n", title)
	return b
}

// AddSummary appends a descriptive-statistics section.
func (b *SummaryBuilder) AddSummary(heading string, s domstats.SummaryStats) {
	fmt.Fprintf(&b.body, "## %s\n\n", heading)
	fmt.Fprintf(&b.body, "| statistic | value |\n|---|---|\n")
	fmt.Fprintf(&b.body, "| count | %d |\n", s.Count)
	fmt.Fprintf(&b.body, "| mean | %.4f |\n", s.Mean)
	fmt.Fprintf(&b.body, "| median | %.4f |\n", s.Median)
	fmt.Fprintf(&b.body, "| std dev | %.4f |\n", s.StdDev)
	fmt.Fprintf(&b.body, "| min | %.4f |\n", s.Min)
	fmt.Fprintf(&b.body, "| max | %.4f |\n", s.Max)
	fmt.Fprintf(&b.body, "| IQR | %.4f |\n", s.IQR)
	fmt.Fprintf(&b.body, "| skewness | %.4f |\n", s.Skewness)
	fmt.Fprintf(&b.body, "| kurtosis | %.4f |\n\n", s.Kurtosis)
}

// AddTest appends a one-line hypothesis-test section.
func (b *SummaryBuilder) AddTest(heading, line string) {
	fmt.Fprintf(&b.body, "## %s\n\n%s\n\n", heading, line)
}

// AddArtifact appends a pointer to a produced file.
func (b *SummaryBuilder) AddArtifact(label, path string) {
	fmt.Fprintf(&b.body, "- %s: `%s`\n", label, path)
}

// Markdown returns the accumulated markdown source.
func (b *SummaryBuilder) Markdown() string {
	return b.body.String()
}

// RenderHTML converts the accumulated markdown into a complete HTML page.
func (b *SummaryBuilder) RenderHTML() []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs | parser.Tables)
	renderer := html.NewRenderer(html.RendererOptions{
		Title: b.title,
		Flags: html.CommonFlags | html.CompletePage,
	})
	return markdown.ToHTML([]byte(b.body.String()), p, renderer)
}

// WriteReport renders the summary and writes it through the writer.
func (b *SummaryBuilder) WriteReport(w *Writer, name string) error {
	return w.writeBytes(name, b.RenderHTML())
}
