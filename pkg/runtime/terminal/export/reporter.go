package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/de-tools/hiring-pulse/pkg/adapters"
	"github.com/de-tools/hiring-pulse/pkg/models/domain"
)

const (
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
	FormatXLSX     = "xlsx"
)

// Reporter renders one summary
type Reporter interface {
	Handle(src domain.Source, summary domain.Summary) error
}

// NewReporter picks a reporter by output format
func NewReporter(format string, writer io.Writer) (Reporter, error) {
	if writer == nil {
		writer = os.Stdout
	}
	switch strings.ToLower(format) {
	case "", FormatMarkdown, "md":
		return NewMarkdownReporter(writer), nil
	case FormatJSON:
		return &JSONReporter{writer: writer}, nil
	case FormatXLSX, "excel":
		return NewExcelReporter(writer), nil
	default:
		return nil, fmt.Errorf("unsupported format %q (supported: %s, %s, %s)", format, FormatMarkdown, FormatJSON, FormatXLSX)
	}
}

const markdownTemplate = `
**Indeed Job-Postings Index ({{.Source.Country}}) – {{.Summary.Anchor.Format "Jan 02 2006"}}**

* National index: **{{level .Summary.National.Current}}** (Δ {{pp .Summary.NationalWeek.DeltaPP}} pp w/w, {{pp .Summary.National.DeltaMonth}} pp vs 4 wks)
* **Breadth:** {{printf "%.0f" .Summary.BreadthPct}}% of {{.Summary.SectorsCompared}} sectors expanded w/w
* Seasonal means → {{seasons .Summary.National}}

---
**Sector movers** (w/w):

* **Top gainer – {{.Summary.Leader.Sector}}**  
  Level **{{level .Summary.LeaderView.Current}}** (Δ {{pp .Summary.Leader.DeltaPP}} pp w/w, {{pp .Summary.LeaderView.DeltaMonth}} pp vs 4 wks)  
  Seasonal → {{seasons .Summary.LeaderView}}

* **Top decliner – {{.Summary.Laggard.Sector}}**  
  Level **{{level .Summary.LaggardView.Current}}** (Δ {{pp .Summary.Laggard.DeltaPP}} pp w/w, {{pp .Summary.LaggardView.DeltaMonth}} pp vs 4 wks)  
  Seasonal → {{seasons .Summary.LaggardView}}

*All changes are percentage-point (pp) moves relative to the Feb 2020 baseline.*
`

// MarkdownReporter writes the chat-ready weekly snapshot
type MarkdownReporter struct {
	writer io.Writer
}

func NewMarkdownReporter(writer io.Writer) *MarkdownReporter {
	return &MarkdownReporter{writer: writer}
}

func (c *MarkdownReporter) Handle(src domain.Source, summary domain.Summary) error {
	funcMap := template.FuncMap{
		"level": func(v float64) string {
			return fmt.Sprintf("%.1f", v)
		},
		"pp": func(v float64) string {
			return fmt.Sprintf("%+.2f", v)
		},
		"seasons": func(view domain.LongViewRecord) string {
			return seasonLine(view, summary.Seasons)
		},
	}

	t, err := template.New("report").Funcs(funcMap).Parse(markdownTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, struct {
		Source  domain.Source
		Summary domain.Summary
	}{src, summary})
}

// seasonLine renders "Summer 110 | Fall 108" using the first word of each season name
func seasonLine(view domain.LongViewRecord, seasons []domain.SeasonWindow) string {
	means := adapters.OrderedSeasonMeans(view, seasons)
	parts := make([]string, 0, len(means))
	for _, m := range means {
		label := m.Season
		if fields := strings.Fields(m.Season); len(fields) > 0 {
			label = fields[0]
		}
		parts = append(parts, fmt.Sprintf("%s %.0f", label, m.Mean))
	}
	return strings.Join(parts, " | ")
}

// JSONReporter writes the api.Summary model
type JSONReporter struct {
	writer io.Writer
}

func (j *JSONReporter) Handle(src domain.Source, summary domain.Summary) error {
	enc := json.NewEncoder(j.writer)
	enc.SetIndent("", "  ")
	if err := enc.Encode(adapters.MapDomainSummaryToAPI(src.Name, summary)); err != nil {
		return fmt.Errorf("failed to encode summary: %w", err)
	}
	return nil
}
