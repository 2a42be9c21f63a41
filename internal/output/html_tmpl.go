// Copyright 2026 The Kpiboard Authors
// SPDX-License-Identifier: MIT

package output

const dashboardCSS = `:root {
  --bg: #fff; --fg: #1a1a2e; --card-bg: #f8f9fa; --border: #dee2e6;
  --muted: #6c757d; --track: #e9ecef;
  --good: #28a745; --bad: #dc3545; --warn: #fd7e14;
  --accent: #0d6efd;
}
@media (prefers-color-scheme: dark) {
  :root {
    --bg: #1a1a2e; --fg: #e9ecef; --card-bg: #16213e; --border: #495057;
    --muted: #adb5bd; --track: #0f3460;
    --good: #4caf50; --bad: #f55; --warn: #fd7e14;
    --accent: #5b9aff;
  }
}
* { box-sizing: border-box; margin: 0; padding: 0; }
body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif; background: var(--bg); color: var(--fg); line-height: 1.5; padding: 1rem; max-width: 1400px; margin: 0 auto; }
header { margin-bottom: 1.5rem; }
header h1 { font-size: 1.5rem; margin-bottom: .25rem; }
header p { color: var(--muted); font-size: .875rem; }
.row { display: grid; gap: 1rem; margin-bottom: 1rem; }
@media (max-width: 768px) { .row { grid-template-columns: 1fr !important; } .card { grid-column: auto !important; } }
.card { background: var(--card-bg); border: 1px solid var(--border); border-radius: 8px; padding: 1rem; display: flex; flex-direction: column; gap: .5rem; min-width: 0; }
.card h2 { font-size: .8125rem; font-weight: 600; color: var(--muted); text-transform: uppercase; letter-spacing: .02em; }
.card .value { font-size: 1.5rem; font-weight: 700; }
.card .target { font-size: .8125rem; color: var(--muted); font-weight: 400; }
.delta { font-size: .8125rem; font-weight: 600; }
.delta.good { color: var(--good); }
.delta.bad { color: var(--bad); }
.delta.flat { color: var(--muted); }
.progress { background: var(--track); border-radius: 4px; height: .625rem; overflow: hidden; }
.progress > div { background: var(--accent); height: 100%; }
.detail { font-size: .75rem; color: var(--muted); }
svg text { fill: currentColor; font-size: 9px; }
.gauge { width: 9rem; align-self: center; }
.gauge text { font-size: 14px; font-weight: 700; }
.funnel-stage { display: flex; align-items: center; gap: .5rem; font-size: .75rem; }
.funnel-stage .name { width: 7rem; flex-shrink: 0; overflow: hidden; text-overflow: ellipsis; white-space: nowrap; }
.funnel-stage .bar { height: .875rem; border-radius: 3px; }
.warning { color: var(--warn); font-size: .75rem; }
.stars { font-size: 1.5rem; color: #ffc107; letter-spacing: .1em; }
.stars .empty { color: var(--border); }
.card.placeholder { border-color: var(--bad); }
.card.placeholder .error { color: var(--bad); font-size: .8125rem; word-break: break-word; }
.card.placeholder .class { font-size: .6875rem; text-transform: uppercase; color: var(--muted); }
.empty-page { text-align: center; margin-top: 30vh; color: var(--muted); }
`

const htmlTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
{{if .StylesheetHref}}<link rel="stylesheet" href="{{.StylesheetHref}}">{{else}}<style>
{{.InlineCSS}}
</style>{{end}}
</head>
<body>
<header>
  <h1>{{.Title}}</h1>
  <p>{{if .Period}}{{.Period}} &middot; {{end}}Generated {{.GeneratedAt}} &middot; {{.TileCount}} widgets{{if .ErrorCount}} &middot; {{.ErrorCount}} failed{{end}}</p>
</header>
{{if not .Rows}}<p class="empty-page">No widgets to show.</p>{{end}}
{{range .Rows}}
<section class="row" style="grid-template-columns: repeat({{$.Columns}}, minmax(0, 1fr))">
{{range .}}
<article class="card {{.Kind}}" style="grid-column: span {{.Span}}">
  <h2>{{if .Icon}}{{.Icon}} {{end}}{{.Title}}</h2>
  {{if .Error}}
  <div class="class">{{.Error.Class}}</div>
  <div class="error">{{.Error.Message}}</div>
  {{else}}
  <div class="value">{{.Display}}{{if .Target}} <span class="target">of {{.Target}}</span>{{end}}</div>
  {{if .Delta}}<div class="delta {{.DeltaClass}}">{{.Delta}}</div>{{end}}
  {{end}}
  {{with .Progress}}{{if .HasTarget}}
  <div class="progress" role="progressbar" aria-valuenow="{{.Fill}}" aria-valuemin="0" aria-valuemax="100"><div style="width: {{.Fill}}%"></div></div>
  {{end}}{{end}}
  {{with .Gauge}}
  <svg class="gauge" viewBox="0 0 100 100" role="img">
    <g transform="rotate(-90 50 50)">
      <circle cx="50" cy="50" r="40" fill="none" stroke="var(--track)" stroke-width="10"/>
      <circle cx="50" cy="50" r="40" fill="none" stroke="{{.Color}}" stroke-width="10" stroke-dasharray="{{.Dash}}"/>
      {{range .BandTicks}}<circle cx="50" cy="50" r="47" fill="none" stroke="{{.Color}}" stroke-width="2" stroke-dasharray="{{.Dash}}" stroke-dashoffset="{{.Shift}}"/>{{end}}
    </g>
    <text x="50" y="55" text-anchor="middle">{{.Label}}</text>
  </svg>
  <div class="detail">range {{.Range}}</div>
  {{end}}
  {{with .Series}}{{$color := .Color}}
  <svg viewBox="0 0 240 116" role="img">
    {{if .Line}}
    <polyline points="{{.Points}}" fill="none" stroke="{{.Color}}" stroke-width="2"/>
    {{range .Dots}}<circle cx="{{.X}}" cy="{{.Y}}" r="2.5" fill="{{$color}}"><title>{{.Title}}</title></circle>{{end}}
    {{else}}
    {{range .Bars}}<rect x="{{.X}}" y="{{.Y}}" width="{{.W}}" height="{{.H}}" fill="{{.Color}}" rx="2"><title>{{.Title}}</title></rect>{{end}}
    {{end}}
    {{range .Axis}}<text x="{{.X}}" y="112" text-anchor="middle">{{.Text}}</text>{{end}}
  </svg>
  {{end}}
  {{with .Funnel}}
  {{range .Stages}}
  <div class="funnel-stage"><span class="name" title="{{.Name}}">{{.Name}}</span><span class="bar" style="width: {{.Width}}%; background: {{.Color}}"></span><span>{{.Count}} ({{.Share}})</span></div>
  {{end}}
  {{range .Warnings}}<div class="warning">{{.}}</div>{{end}}
  {{end}}
  {{with .Stars}}
  <div class="stars" aria-label="{{.Rating}}">{{.Filled}}<span class="empty">{{.Empty}}</span></div>
  {{end}}
  {{if not .Error}}<div class="detail">{{.Detail}}</div>{{end}}
</article>
{{end}}
</section>
{{end}}
<script type="application/json" id="kpiboard-page">{{json .Envelope}}</script>
</body>
</html>`
