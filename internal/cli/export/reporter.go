package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/template"

	"banking-reports/internal/models"
)

var summaryTemplate = template.Must(template.New("summary").Parse(`
{{.ReportType}} (generated {{.GeneratedAt.Format "2006-01-02 15:04"}} UTC)
{{range .KeyMetrics}}
  {{.Label}}: {{.Value}}
{{- end}}
{{if .Highlights}}
Highlights:
{{- range .Highlights}}
  - {{.}}
{{- end}}
{{end}}
{{- if .Recommendations}}
Recommendations:
{{- range .Recommendations}}
  - {{.}}
{{- end}}
{{end}}`))

var catalogTemplate = template.Must(template.New("catalog").Parse(`
{{- range .}}{{.Domain}}:
{{- range .ReportTypes}}
  {{.}}
{{- end}}
{{end}}`))

// Reporter writes command results to the terminal
type Reporter struct {
	writer io.Writer
}

// NewReporter creates a reporter writing to writer, stdout when nil
func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

// JSON writes v as indented JSON
func (r *Reporter) JSON(v interface{}) error {
	encoder := json.NewEncoder(r.writer)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}

// Summary renders a report summary as text
func (r *Reporter) Summary(summary *models.ReportSummary) error {
	return summaryTemplate.Execute(r.writer, summary)
}

// Catalog renders the report catalog as text
func (r *Reporter) Catalog(entries []models.CatalogEntry) error {
	return catalogTemplate.Execute(r.writer, entries)
}

// Printf writes a formatted status line
func (r *Reporter) Printf(format string, args ...interface{}) {
	fmt.Fprintf(r.writer, format, args...)
}
