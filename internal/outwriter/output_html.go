package outwriter

import (
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/IlyaRucavitcyn/ai-indicator/internal/contract"
	"github.com/IlyaRucavitcyn/ai-indicator/schema"
)

// htmlIndicatorRow is the render model for one indicator in the HTML report.
type htmlIndicatorRow struct {
	Name        string
	Value       string
	Label       string
	Description string
}

// htmlReportModel is the render model for the full HTML report.
type htmlReportModel struct {
	Target     string
	AnalyzedAt string
	Duration   string
	Basic      schema.BasicMetrics
	FilesRead  int
	Indicators []htmlIndicatorRow
}

var htmlReportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>AI Indicator Report - {{.Target}}</title>
<style>
body { font-family: sans-serif; margin: 2em; color: #222; }
h1 { font-size: 1.4em; }
table { border-collapse: collapse; margin-top: 1em; }
th, td { border: 1px solid #ccc; padding: 0.4em 0.8em; text-align: left; }
th { background: #f0f0f0; }
td.num { text-align: right; }
.label-Strong { color: #b00020; font-weight: bold; }
.label-Elevated { color: #8e24aa; font-weight: bold; }
.label-Moderate { color: #b8860b; }
.label-Weak { color: #00796b; }
.meta { color: #666; font-size: 0.9em; }
</style>
</head>
<body>
<h1>AI Indicator Report</h1>
<p class="meta">Repository: {{.Target}}<br>
Analyzed at: {{.AnalyzedAt}}<br>
Completed in {{.Duration}}</p>

<h2>Repository overview</h2>
<table>
<tr><th>Commits</th><td class="num">{{.Basic.TotalCommits}}</td></tr>
<tr><th>Contributors</th><td class="num">{{.Basic.Contributors}}</td></tr>
<tr><th>Duration (days)</th><td class="num">{{.Basic.DurationDays}}</td></tr>
<tr><th>Avg commits/day</th><td class="num">{{printf "%.2f" .Basic.AvgCommitsPerDay}}</td></tr>
<tr><th>Top contributor</th><td>{{.Basic.TopContributor}}</td></tr>
<tr><th>Files read</th><td class="num">{{.FilesRead}}</td></tr>
</table>

<h2>Indicators</h2>
<table>
<tr><th>Indicator</th><th>Value</th><th>Label</th><th>Description</th></tr>
{{range .Indicators}}<tr>
<td>{{.Name}}</td>
<td class="num">{{.Value}}</td>
<td{{if .Label}} class="label-{{.Label}}"{{end}}>{{if .Label}}{{.Label}}{{else}}-{{end}}</td>
<td>{{.Description}}</td>
</tr>
{{end}}</table>

<h2>Contributors</h2>
<table>
<tr><th>Name</th><th>Email</th><th>Commits</th></tr>
{{range .Basic.ContributorStats}}<tr>
<td>{{.Name}}</td>
<td>{{.Email}}</td>
<td class="num">{{.Commits}}</td>
</tr>
{{end}}</table>
</body>
</html>
`))

// writeHTMLAnalysis renders the analysis as a standalone HTML page.
func writeHTMLAnalysis(w io.Writer, result *schema.AnalysisResult, duration time.Duration) error {
	target := result.RepoPath
	if result.RepoURL != "" {
		target = result.RepoURL
	}

	model := htmlReportModel{
		Target:     target,
		AnalyzedAt: result.AnalyzedAt.Format(DateTimeFormat),
		Duration:   duration.String(),
		Basic:      result.Basic,
		FilesRead:  result.FilesRead,
	}

	for _, row := range result.IndicatorRows() {
		label := ""
		if percentIndicators[row.Name] {
			label = contract.GetPlainLabel(row.Value)
		}
		model.Indicators = append(model.Indicators, htmlIndicatorRow{
			Name:        indicatorDisplayNames[row.Name],
			Value:       fmt.Sprintf("%.2f", row.Value),
			Label:       label,
			Description: row.Description,
		})
	}

	return htmlReportTemplate.Execute(w, model)
}
