package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// GenerateImpactReport writes a static HTML impact report for one adoption
// rate, with the sweep table underneath for context.
func GenerateImpactReport(metrics Metrics, sweep SweepResult, config *Config, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	fmt.Fprintf(f, `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%s Impact Report — %.0f%% Adoption</title>
    <style>
        :root {
            --primary: #2563eb;
            --success: #16a34a;
            --warning: #ea580c;
            --danger: #dc2626;
            --bg: #f8fafc;
            --card-bg: #ffffff;
            --text: #1e293b;
            --text-muted: #64748b;
            --border: #e2e8f0;
        }
        * { box-sizing: border-box; margin: 0; padding: 0; }
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
            background: var(--bg);
            color: var(--text);
            line-height: 1.6;
            padding: 2rem;
        }
        .container { max-width: 1100px; margin: 0 auto; }
        h1 { font-size: 1.75rem; margin-bottom: 0.5rem; color: var(--primary); }
        h2 {
            font-size: 1.25rem;
            margin: 1.5rem 0 1rem;
            padding-bottom: 0.5rem;
            border-bottom: 2px solid var(--primary);
        }
        .subtitle { color: var(--text-muted); margin-bottom: 1.5rem; }
        .card {
            background: var(--card-bg);
            border-radius: 8px;
            box-shadow: 0 1px 3px rgba(0,0,0,0.1);
            padding: 1.5rem;
            margin-bottom: 1.5rem;
        }
        .grid { display: grid; gap: 1rem; }
        .grid-3 { grid-template-columns: repeat(3, 1fr); }
        @media (max-width: 768px) { .grid-3 { grid-template-columns: 1fr; } }
        .metric { text-align: center; padding: 1rem; border-radius: 8px; background: var(--bg); }
        .metric-value { font-size: 1.5rem; font-weight: 700; color: var(--primary); }
        .metric-label { font-size: 0.875rem; color: var(--text-muted); }
        .metric.success .metric-value { color: var(--success); }
        .metric.warning .metric-value { color: var(--warning); }
        table { width: 100%%; border-collapse: collapse; font-size: 0.875rem; }
        th, td { padding: 0.6rem 0.5rem; text-align: right; border-bottom: 1px solid var(--border); }
        th { background: var(--bg); font-weight: 600; }
        th:first-child, td:first-child { text-align: left; }
        tr:hover { background: #f1f5f9; }
        .highlight { background: #fef3c7 !important; }
        .bar-row { display: grid; grid-template-columns: 200px 1fr 120px; align-items: center; gap: 0.75rem; padding: 0.2rem 0; font-size: 0.85rem; }
        .bar-row .name { color: var(--text-muted); text-align: right; }
        .bar-track { background: var(--bg); border-radius: 4px; height: 18px; overflow: hidden; }
        .bar-fill { height: 100%%; border-radius: 4px; }
        .bar-value { font-weight: 600; }
        .group-label { font-size: 0.75rem; font-weight: 600; text-transform: uppercase; color: var(--text-muted); margin-top: 0.6rem; }
        .info-box {
            background: rgba(37, 99, 235, 0.06);
            border-left: 4px solid var(--primary);
            border-radius: 4px;
            padding: 0.75rem 1rem;
            font-size: 0.875rem;
            margin-top: 1rem;
        }
        .footer {
            text-align: center;
            color: var(--text-muted);
            font-size: 0.75rem;
            margin-top: 2rem;
            padding-top: 1rem;
            border-top: 1px solid var(--border);
        }
    </style>
</head>
<body>
    <div class="container">
        <h1>%s Impact Report for %s</h1>
        <p class="subtitle">Adoption rate: %.0f%% · %s vs %s</p>
`, config.Candidate.Name, metrics.AdoptionRate,
		config.Candidate.Name, config.Country,
		metrics.AdoptionRate, config.Incumbent.Name, config.Candidate.Name)

	// Summary metrics
	fmt.Fprintf(f, `
        <div class="card">
            <h2>Lives Saved</h2>
            <div class="grid grid-3">
                <div class="metric">
                    <div class="metric-value">%s</div>
                    <div class="metric-label">Children's Lives Saved</div>
                </div>
                <div class="metric">
                    <div class="metric-value">%s</div>
                    <div class="metric-label">Adult Lives Saved</div>
                </div>
                <div class="metric success">
                    <div class="metric-value">%s</div>
                    <div class="metric-label">Total Lives Saved</div>
                </div>
            </div>
            <div class="info-box">
                Children mortality reduction: %.1f%% (%.1f%% → %.1f%%) ·
                Adult mortality reduction: %.1f%% (%.0f%% → %.0f%%)
            </div>
        </div>
`, FormatCount(metrics.LivesSaved.Children),
		FormatCount(metrics.LivesSaved.Adults),
		FormatCount(metrics.LivesSaved.Total),
		(config.Outcomes.ChildrenMortalityBefore-config.Outcomes.ChildrenMortalityAfter)*100,
		config.Outcomes.ChildrenMortalityBefore*100, config.Outcomes.ChildrenMortalityAfter*100,
		(config.Outcomes.AdultMortalityBefore-config.Outcomes.AdultMortalityAfter)*100,
		config.Outcomes.AdultMortalityBefore*100, config.Outcomes.AdultMortalityAfter*100)

	// Charts
	writeHTMLChart(f, BuildLivesSavedChart(metrics, config), "lives")
	writeHTMLChart(f, BuildCostChart(metrics, config), "usd")

	// Cost summary
	fmt.Fprintf(f, `
        <div class="card">
            <h2>Cost Analysis</h2>
            <div class="grid grid-3">
                <div class="metric">
                    <div class="metric-value">%s</div>
                    <div class="metric-label">Total Treatment Cost</div>
                </div>
                <div class="metric warning">
                    <div class="metric-value">%s</div>
                    <div class="metric-label">Additional Cost</div>
                </div>
                <div class="metric">
                    <div class="metric-value">%s</div>
                    <div class="metric-label">Cost per Life Saved</div>
                </div>
            </div>
            <div class="info-box">
                Base cost difference: %s ·
                Cost per life saved at 100%% adoption: %s ·
                Total potential lives saved: %s
            </div>
        </div>
`, FormatUSD(metrics.TotalCost), FormatUSD(metrics.AdditionalCost), FormatUSD(metrics.CostPerLifeSaved),
		FormatUSD(metrics.CostDifference), FormatUSD(metrics.BaselineCostPerLife),
		FormatCount(int(config.Outcomes.PotentialLivesTotal())))

	// Sweep table
	fmt.Fprintf(f, `
        <div class="card">
            <h2>Adoption Rate Sweep</h2>
            <table>
                <tr>
                    <th>Rate</th><th>Children</th><th>Adults</th><th>Total Lives</th>
                    <th>Total Cost</th><th>Additional Cost</th><th>Cost / Life</th>
                </tr>
`)
	for _, m := range sweep.Points {
		rowClass := ""
		if m.AdoptionRate == metrics.AdoptionRate {
			rowClass = ` class="highlight"`
		}
		fmt.Fprintf(f, `                <tr%s>
                    <td>%.0f%%</td><td>%s</td><td>%s</td><td>%s</td>
                    <td>%s</td><td>%s</td><td>%s</td>
                </tr>
`, rowClass, m.AdoptionRate,
			FormatCount(m.LivesSaved.Children), FormatCount(m.LivesSaved.Adults), FormatCount(m.LivesSaved.Total),
			FormatUSD(m.TotalCost), FormatUSD(m.AdditionalCost), FormatUSD(m.CostPerLifeSaved))
	}

	fmt.Fprintf(f, `            </table>
        </div>
        <div class="footer">Generated %s · %s Impact Calculator</div>
    </div>
</body>
</html>
`, time.Now().Format("2006-01-02 15:04"), config.Candidate.Name)

	return nil
}

// writeHTMLChart renders a chart spec as static CSS bars grouped by label.
func writeHTMLChart(f *os.File, spec ChartSpec, unit string) {
	max := spec.MaxValue()
	if max <= 0 {
		max = 1
	}

	fmt.Fprintf(f, `
        <div class="card">
            <h2>%s</h2>
`, spec.Title)

	if len(spec.Series) == 0 {
		fmt.Fprint(f, "        </div>\n")
		return
	}

	for _, bar := range spec.Series[0].Bars {
		fmt.Fprintf(f, `            <div class="group-label">%s</div>
`, bar.Label)
		for _, s := range spec.Series {
			for _, b := range s.Bars {
				if b.Label != bar.Label {
					continue
				}
				width := b.Value / max * 100
				if width < 0.5 {
					width = 0.5
				}
				value := FormatCount(int(b.Value))
				if unit == "usd" {
					value = FormatUSD(b.Value)
				}
				fmt.Fprintf(f, `            <div class="bar-row">
                <div class="name">%s</div>
                <div class="bar-track"><div class="bar-fill" style="width:%.1f%%;background:%s"></div></div>
                <div class="bar-value">%s</div>
            </div>
`, s.Name, width, b.Color, value)
			}
		}
	}

	fmt.Fprint(f, "        </div>\n")
}

// GenerateImpactReportInDir writes the report into a directory (created if
// needed) and returns the full path.
func GenerateImpactReportInDir(metrics Metrics, sweep SweepResult, config *Config, outputDir, timestamp string) (string, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create report directory: %w", err)
	}

	filename := filepath.Join(outputDir, fmt.Sprintf("impact-report-%.0fpct-%s.html", metrics.AdoptionRate, timestamp))
	if err := GenerateImpactReport(metrics, sweep, config, filename); err != nil {
		return "", err
	}
	return filename, nil
}
