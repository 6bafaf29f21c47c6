package main

// dashboardHTML is the embedded single-page dashboard. It talks to the JSON
// API only; all figures and chart specs come from the server so the page
// never duplicates the calculation.
const dashboardHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Clairadol Impact Calculator</title>
    <link rel="icon" type="image/svg+xml" href="data:image/svg+xml,%3Csvg xmlns='http://www.w3.org/2000/svg' viewBox='0 0 64 64'%3E%3Crect x='8' y='8' width='48' height='48' rx='10' fill='%232563eb'/%3E%3Cpath d='M32 18v28M18 32h28' stroke='white' stroke-width='8' stroke-linecap='round'/%3E%3C/svg%3E">
    <style>
        :root {
            --primary: #2563eb;
            --primary-dark: #1d4ed8;
            --success: #16a34a;
            --warning: #ea580c;
            --danger: #dc2626;
            --bg: #f1f5f9;
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
        }
        .header {
            background: linear-gradient(135deg, var(--primary) 0%, var(--primary-dark) 100%);
            color: white;
            padding: 1.5rem 2rem;
            box-shadow: 0 2px 4px rgba(0,0,0,0.1);
        }
        .header h1 { font-size: 1.5rem; font-weight: 600; }
        .header p { opacity: 0.9; font-size: 0.875rem; }
        .container {
            display: flex;
            height: calc(100vh - 80px);
            overflow: hidden;
        }
        .settings-panel {
            width: 320px;
            min-width: 320px;
            background: var(--card-bg);
            border-right: 1px solid var(--border);
            overflow-y: auto;
            padding: 1rem;
        }
        .results-panel {
            flex: 1;
            overflow-y: auto;
            padding: 1.5rem;
        }
        @media (max-width: 900px) {
            .container { flex-direction: column; height: auto; }
            .settings-panel { width: 100%; min-width: 100%; border-right: none; border-bottom: 1px solid var(--border); }
        }
        .card {
            background: var(--card-bg);
            border-radius: 8px;
            box-shadow: 0 1px 3px rgba(0,0,0,0.1);
            padding: 1rem;
            margin-bottom: 1rem;
        }
        .card h2 {
            font-size: 0.9rem;
            font-weight: 600;
            margin-bottom: 0.75rem;
            color: var(--primary);
        }
        .slider-value {
            font-size: 2rem;
            font-weight: 700;
            color: var(--primary);
            text-align: center;
        }
        .slider-label {
            font-size: 0.75rem;
            color: var(--text-muted);
            text-transform: uppercase;
            text-align: center;
            margin-bottom: 0.5rem;
        }
        input[type="range"] {
            width: 100%;
            accent-color: var(--primary);
        }
        .slider-bounds {
            display: flex;
            justify-content: space-between;
            font-size: 0.7rem;
            color: var(--text-muted);
        }
        .btn {
            display: inline-flex;
            align-items: center;
            justify-content: center;
            gap: 0.3rem;
            padding: 0.5rem 1rem;
            font-size: 0.8rem;
            font-weight: 500;
            border: none;
            border-radius: 6px;
            cursor: pointer;
            text-decoration: none;
            transition: all 0.2s;
        }
        .btn-primary { background: var(--primary); color: white; }
        .btn-primary:hover { background: var(--primary-dark); }
        .btn-group { display: flex; gap: 0.5rem; flex-wrap: wrap; }
        .metrics-grid {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(180px, 1fr));
            gap: 1rem;
            margin-bottom: 1.5rem;
        }
        .metric {
            text-align: center;
            padding: 1rem;
            background: var(--card-bg);
            border-radius: 8px;
            box-shadow: 0 1px 3px rgba(0,0,0,0.1);
        }
        .metric-value {
            font-size: 1.5rem;
            font-weight: 700;
            color: var(--primary);
        }
        .metric-label {
            font-size: 0.75rem;
            color: var(--text-muted);
            text-transform: uppercase;
        }
        .metric.success .metric-value { color: var(--success); }
        .metric.warning .metric-value { color: var(--warning); }
        .tabs {
            display: flex;
            gap: 0.25rem;
            margin-bottom: 1rem;
            border-bottom: 2px solid var(--border);
        }
        .tab-btn {
            padding: 0.6rem 1.2rem;
            font-size: 0.85rem;
            font-weight: 600;
            border: none;
            border-bottom: 3px solid transparent;
            background: none;
            color: var(--text-muted);
            cursor: pointer;
        }
        .tab-btn:hover { color: var(--primary); }
        .tab-btn.active { color: var(--primary); border-bottom-color: var(--primary); }
        .tab-panel { display: none; }
        .tab-panel.active { display: block; }
        .chart { margin: 0.5rem 0; }
        .chart-title {
            font-size: 0.9rem;
            font-weight: 600;
            margin-bottom: 0.75rem;
        }
        .chart-row {
            display: grid;
            grid-template-columns: 180px 1fr 110px;
            align-items: center;
            gap: 0.75rem;
            padding: 0.25rem 0;
            font-size: 0.8rem;
        }
        .chart-row .name { color: var(--text-muted); text-align: right; }
        .chart-track {
            background: var(--bg);
            border-radius: 4px;
            height: 18px;
            overflow: hidden;
        }
        .chart-fill {
            height: 100%;
            border-radius: 4px;
            transition: width 0.25s ease;
        }
        .chart-value { font-weight: 600; }
        .chart-group-label {
            font-size: 0.75rem;
            font-weight: 600;
            text-transform: uppercase;
            color: var(--text-muted);
            margin-top: 0.75rem;
        }
        .info-grid { display: grid; grid-template-columns: 1fr 1fr; gap: 1rem; }
        @media (max-width: 700px) { .info-grid { grid-template-columns: 1fr; } }
        .info-box {
            background: rgba(37, 99, 235, 0.06);
            border-left: 4px solid var(--primary);
            border-radius: 4px;
            padding: 0.75rem 1rem;
            font-size: 0.85rem;
        }
        .info-box ul { margin-left: 1rem; }
        .error-banner {
            display: none;
            background: #fee2e2;
            color: var(--danger);
            border-radius: 6px;
            padding: 0.75rem 1rem;
            margin-bottom: 1rem;
            font-size: 0.85rem;
        }
        .error-banner.show { display: block; }
    </style>
</head>
<body>
    <div class="header">
        <h1 id="page-title">Clairadol Impact Calculator</h1>
        <p id="page-subtitle">Cost/benefit tradeoff of switching treatments</p>
    </div>
    <div class="container">
        <div class="settings-panel">
            <div class="card">
                <h2>Settings</h2>
                <div class="slider-label" id="slider-label">Clairadol Adoption Rate (%)</div>
                <div class="slider-value"><span id="rate-value">50</span>%</div>
                <input type="range" id="rate-slider" min="0" max="100" step="1" value="50">
                <div class="slider-bounds"><span>0%</span><span>100%</span></div>
            </div>
            <div class="card">
                <h2>Export</h2>
                <div class="btn-group">
                    <a class="btn btn-primary" href="/api/export-csv">Sweep CSV</a>
                    <a class="btn btn-primary" id="pdf-link" href="/api/download-pdf?rate=50">PDF Report</a>
                </div>
            </div>
        </div>
        <div class="results-panel">
            <div class="error-banner" id="error-banner"></div>
            <div class="metrics-grid">
                <div class="metric">
                    <div class="metric-value" id="lives-children">–</div>
                    <div class="metric-label">Children's Lives Saved</div>
                </div>
                <div class="metric">
                    <div class="metric-value" id="lives-adults">–</div>
                    <div class="metric-label">Adult Lives Saved</div>
                </div>
                <div class="metric success">
                    <div class="metric-value" id="lives-total">–</div>
                    <div class="metric-label">Total Lives Saved</div>
                </div>
            </div>
            <div class="tabs">
                <button class="tab-btn active" data-tab="lives">Lives Saved Analysis</button>
                <button class="tab-btn" data-tab="costs">Cost Analysis</button>
            </div>
            <div class="tab-panel active" id="tab-lives">
                <div class="card">
                    <div class="chart" id="lives-chart"></div>
                </div>
                <div class="card">
                    <h2>Mortality Reduction Statistics</h2>
                    <div class="info-grid">
                        <div class="info-box" id="mortality-children">–</div>
                        <div class="info-box" id="mortality-adults">–</div>
                    </div>
                </div>
            </div>
            <div class="tab-panel" id="tab-costs">
                <div class="metrics-grid">
                    <div class="metric">
                        <div class="metric-value" id="total-cost">–</div>
                        <div class="metric-label">Total Treatment Cost</div>
                    </div>
                    <div class="metric warning">
                        <div class="metric-value" id="additional-cost">–</div>
                        <div class="metric-label">Additional Cost</div>
                    </div>
                    <div class="metric">
                        <div class="metric-value" id="cost-per-life">–</div>
                        <div class="metric-label">Cost per Life Saved</div>
                    </div>
                </div>
                <div class="card">
                    <div class="chart" id="cost-chart"></div>
                </div>
                <div class="card">
                    <h2>Cost Analysis Details</h2>
                    <div class="info-box"><ul id="cost-details"></ul></div>
                </div>
            </div>
        </div>
    </div>

    <script>
        var appConfig = null;
        var pendingFetch = null;

        function formatCount(n) {
            return n.toLocaleString('en-US');
        }
        function formatUSD(v, decimals) {
            if (decimals === undefined) decimals = 2;
            return '$' + v.toLocaleString('en-US', { minimumFractionDigits: decimals, maximumFractionDigits: decimals });
        }

        function showError(msg) {
            var banner = document.getElementById('error-banner');
            if (msg) {
                banner.textContent = msg;
                banner.classList.add('show');
            } else {
                banner.classList.remove('show');
            }
        }

        // Render a grouped-bar chart spec as CSS bars, one row per bar,
        // grouped by age-group label.
        function renderChart(containerId, spec) {
            var container = document.getElementById(containerId);
            var max = 0;
            spec.series.forEach(function(s) {
                s.bars.forEach(function(b) { if (b.value > max) max = b.value; });
            });
            if (max <= 0) max = 1;

            var html = '<div class="chart-title">' + spec.title + '</div>';
            var labels = [];
            spec.series[0].bars.forEach(function(b) { labels.push(b.label); });

            labels.forEach(function(label) {
                html += '<div class="chart-group-label">' + label + '</div>';
                spec.series.forEach(function(s) {
                    var bar = null;
                    s.bars.forEach(function(b) { if (b.label === label) bar = b; });
                    if (!bar) return;
                    var pct = Math.max(0.5, bar.value / max * 100);
                    var valueText = spec.unit === 'usd' ? formatUSD(bar.value) : formatCount(Math.round(bar.value));
                    html += '<div class="chart-row">' +
                        '<div class="name">' + s.name + '</div>' +
                        '<div class="chart-track"><div class="chart-fill" style="width:' + pct + '%;background:' + bar.color + '"></div></div>' +
                        '<div class="chart-value">' + valueText + '</div>' +
                        '</div>';
                });
            });
            container.innerHTML = html;
        }

        function renderMetrics(data) {
            var m = data.metrics;
            document.getElementById('lives-children').textContent = formatCount(m.lives_saved.children);
            document.getElementById('lives-adults').textContent = formatCount(m.lives_saved.adults);
            document.getElementById('lives-total').textContent = formatCount(m.lives_saved.total);
            document.getElementById('total-cost').textContent = formatUSD(m.total_cost);
            document.getElementById('additional-cost').textContent = formatUSD(m.additional_cost);
            document.getElementById('cost-per-life').textContent = formatUSD(m.cost_per_life_saved);

            renderChart('lives-chart', data.lives_chart);
            renderChart('cost-chart', data.cost_chart);

            var details = document.getElementById('cost-details');
            var total = 0;
            if (appConfig) {
                var o = appConfig.outcomes;
                total = o.total_potential_lives ||
                    ((o.children_potential_lives || 0) + (o.adult_potential_lives || 0));
            }
            details.innerHTML =
                '<li>Base cost difference: ' + formatUSD(m.cost_difference) + '</li>' +
                '<li>Cost per life saved at 100% adoption: ' + formatUSD(m.baseline_cost_per_life) + '</li>' +
                '<li>Total potential lives saved: ' + formatCount(total) + '</li>';

            document.getElementById('pdf-link').href = '/api/download-pdf?rate=' + m.adoption_rate;
        }

        function update(rate) {
            document.getElementById('rate-value').textContent = rate;
            if (pendingFetch) clearTimeout(pendingFetch);
            pendingFetch = setTimeout(function() {
                fetch('/api/metrics?rate=' + rate)
                    .then(function(resp) { return resp.json(); })
                    .then(function(data) {
                        if (!data.success) { showError(data.error); return; }
                        showError(null);
                        renderMetrics(data);
                    })
                    .catch(function(err) { showError('Request failed: ' + err); });
            }, 60);
        }

        function applyConfig(config) {
            appConfig = config;
            var title = config.candidate.name + ' Impact Calculator for ' + config.country;
            document.getElementById('page-title').textContent = title;
            document.title = title;
            document.getElementById('page-subtitle').textContent =
                config.incumbent.name + ' vs ' + config.candidate.name + ' cost/benefit tradeoff';
            document.getElementById('slider-label').textContent = config.candidate.name + ' Adoption Rate (%)';

            var slider = document.getElementById('rate-slider');
            slider.step = config.dashboard.slider_step;
            slider.value = config.dashboard.default_adoption_rate;

            var o = config.outcomes;
            document.getElementById('mortality-children').textContent =
                'Children mortality reduction: ' + ((o.children_mortality_before - o.children_mortality_after) * 100).toFixed(1) +
                '% (' + (o.children_mortality_before * 100).toFixed(1) + '% → ' + (o.children_mortality_after * 100).toFixed(1) + '%)';
            document.getElementById('mortality-adults').textContent =
                'Adult mortality reduction: ' + ((o.adult_mortality_before - o.adult_mortality_after) * 100).toFixed(1) +
                '% (' + (o.adult_mortality_before * 100).toFixed(0) + '% → ' + (o.adult_mortality_after * 100).toFixed(0) + '%)';

            update(slider.value);
        }

        document.querySelectorAll('.tab-btn').forEach(function(btn) {
            btn.addEventListener('click', function() {
                document.querySelectorAll('.tab-btn').forEach(function(b) { b.classList.remove('active'); });
                document.querySelectorAll('.tab-panel').forEach(function(p) { p.classList.remove('active'); });
                btn.classList.add('active');
                document.getElementById('tab-' + btn.dataset.tab).classList.add('active');
            });
        });

        document.getElementById('rate-slider').addEventListener('input', function(e) {
            update(e.target.value);
        });

        fetch('/api/config')
            .then(function(resp) { return resp.json(); })
            .then(applyConfig)
            .catch(function(err) { showError('Failed to load config: ' + err); update(50); });
    </script>
</body>
</html>
`
