package site

// pageTemplate is the Go html/template for the profile page.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  {{if .IconURL}}<link rel="icon" href="{{.IconURL}}">{{end}}
  <link rel="preconnect" href="https://fonts.googleapis.com">
  <link rel="stylesheet" href="https://fonts.googleapis.com/css2?family=Playfair+Display:wght@600;700&family=Inter:wght@400;500;600&display=swap">
  <link rel="stylesheet" href="{{.BasePath}}static/style.css">
</head>
<body class="layout-{{.Layout}}" data-live="{{.Live}}" data-base="{{.BasePath}}">
<main class="app">

  <section class="hero-container" id="hero">
    <div class="hero-left">
      {{if .PhotoURL}}<img src="{{.PhotoURL}}" alt="{{.Profile.Name}}">
      {{else}}<div class="photo-placeholder">{{.Profile.PhotoPlaceholder}}</div>{{end}}
      <div class="hero-meta">
        {{with .Profile.Name}}<b>Name:</b> {{.}}<br>{{end}}
        {{with .Profile.Field}}<b>Field:</b> {{.}}<br>{{end}}
        {{with .Profile.Institution}}<b>Institution:</b> {{.}}<br>{{end}}
        {{with .Profile.Degrees}}<b>Degrees:</b> {{.}}{{end}}
      </div>
    </div>
    <div class="hero-right">
      <div class="hero-text">
        {{with .Profile.Greeting}}<div class="greeting">{{.}}</div>{{end}}
        {{range .Copy.Bio}}<div>{{.}}</div>{{end}}
      </div>
    </div>
  </section>
  <hr>

  {{template "cards" .Profile.Curiosities}}
  <hr>

  <section id="journey">
    <h3>{{.Profile.Journey.Title}}</h3>
    {{range .Copy.Journey}}<div class="journey-step">{{.}}</div>{{end}}
  </section>
  <hr>

  <section id="research">
    <h3>{{.Profile.Research.Title}}</h3>
    {{with .Copy.Research}}{{template "chart" .}}{{end}}
    {{.Copy.Caption}}
  </section>
  <hr>

  <section id="publications">
    <h3>{{.Results.Labels.Title}}</h3>
    {{if .Results.View.Available}}
    <form class="search" id="publication-search" method="get" action="">
      <label for="keyword">{{.Results.Labels.SearchLabel}}</label>
      <input type="text" id="keyword" name="q" value="{{.Results.View.Keyword}}" autocomplete="off">
    </form>
    {{end}}
    <div id="publications-results">{{template "results" .Results}}</div>
  </section>
  <hr>

  {{template "cards" .Profile.Hobbies}}
  <hr>

  <section id="contact">
    <h3>{{.Profile.Contact.Title}}</h3>
    {{with .Profile.Contact.Note}}<p class="contact-note">{{.}}</p>{{end}}
    {{with .Profile.Contact.Email}}<p class="contact-email">📧 <a href="mailto:{{.}}">{{.}}</a></p>{{end}}
  </section>

</main>
<script src="{{.BasePath}}static/script.js"></script>
</body>
</html>`

// cardsTemplate renders a CardSection as a row of gradient cards.
const cardsTemplate = `<section class="cards-section">
  <h3>{{.Title}}</h3>
  <div class="cards">{{range .Items}}<div class="card">{{.}}</div>{{end}}</div>
</section>`

// chartTemplate renders a laid-out barChart as inline SVG.
const chartTemplate = `<figure class="chart">
<svg viewBox="0 0 {{printf "%.0f" .Width}} {{printf "%.0f" .Height}}" width="100%" role="img" aria-label="{{.Title}}">
  {{range .Ticks}}<line class="grid" x1="{{printf "%.2f" $.Left}}" x2="{{printf "%.2f" $.Right}}" y1="{{printf "%.2f" .Y}}" y2="{{printf "%.2f" .Y}}"/>
  <text class="tick" x="{{printf "%.2f" $.Left}}" dx="-6" y="{{printf "%.2f" .Y}}" dy="4" text-anchor="end">{{.Label}}</text>
  {{end}}{{range .Bars}}<g class="bar">{{if .Path}}<path d="{{.Path}}" fill="{{.Color}}"><title>{{.Tooltip}}</title></path>{{end}}
    <text class="bar-label" x="{{printf "%.2f" .LabelX}}" y="{{printf "%.2f" .LabelY}}" text-anchor="middle">{{.Label}}</text>
  </g>{{end}}
  <line class="axis" x1="{{printf "%.2f" .Left}}" x2="{{printf "%.2f" .Right}}" y1="{{printf "%.2f" .Base}}" y2="{{printf "%.2f" .Base}}"/>
</svg>
</figure>`

// resultsTemplate is the part of the publications section that changes with
// the keyword.
const resultsTemplate = `{{if .View.Available}}
<details class="expander">
  <summary>{{.Labels.ExpanderLabel}}</summary>
  <p class="pub-count" data-total="{{.View.Total}}">{{.View.Matched}} of {{.View.Total}}</p>
  <div class="table-wrap">
  <table class="dataframe">
    <thead><tr>{{range .View.Columns}}<th>{{.}}</th>{{end}}</tr></thead>
    <tbody>
    {{range .View.Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
    {{else}}<tr class="no-match"><td colspan="{{len .View.Columns}}">No matches</td></tr>
    {{end}}
    </tbody>
  </table>
  </div>
</details>
{{with .Histogram}}
<div class="histogram" data-keyword="{{$.View.Keyword}}">
<p class="histogram-caption">{{.Title}}</p>
{{template "chart" .}}
<p class="histogram-dated">{{$.View.Dated}} of {{$.View.Matched}} with a year</p>
</div>
{{end}}
{{else}}
<div class="info">{{.Labels.EmptyMessage}}</div>
{{end}}`

// cssContent is the stylesheet for the profile page.
const cssContent = `:root {
  --ink: #3f3d56;
  --text: #31333f;
  --muted: #808495;
  --border: #e6e9ef;
  --card: linear-gradient(135deg,#A3C1DA,#C9E4CA);
  --hero: linear-gradient(120deg,#FDE2FF 0%,#C9E4CA 100%);
  --info-bg: #e8f0fb;
  --info-text: #004280;
}

* { box-sizing: border-box; }

body {
  margin: 0;
  font-family: 'Inter', sans-serif;
  color: var(--text);
  background: #ffffff;
}

.app {
  padding: 2rem;
  margin: 0 auto;
}

.layout-wide .app { max-width: none; }
.layout-centered .app { max-width: 46rem; }

h1, h2, h3 {
  font-family: 'Playfair Display', serif;
  color: var(--ink);
}

hr {
  border: none;
  border-top: 1px solid var(--border);
  margin: 2rem 0;
}

/* ============ Hero ============ */
.hero-container {
  display: flex;
  gap: 2rem;
  align-items: flex-start;
  max-width: 1000px;
  margin: 0 auto;
}

.hero-left {
  flex: 0 0 350px;
  text-align: center;
}

.hero-left img {
  width: 100%;
  aspect-ratio: 3 / 4;
  object-fit: cover;
  border-radius: 14px;
  box-shadow: 0 6px 16px rgba(0,0,0,0.12);
}

.photo-placeholder {
  padding: 1rem;
  background: #C9E4CA;
  border-radius: 12px;
}

.hero-meta {
  font-weight: 600;
  font-size: 16px;
  margin-top: 0.75rem;
}

.hero-right { flex: 1; }

.hero-text {
  background: var(--hero);
  padding: 1rem;
  border-radius: 14px;
}

.hero-text div {
  font-size: 20px;
  line-height: 1.6;
  font-weight: 700;
  margin-bottom: 1.25rem;
}

.hero-text div:last-child { margin-bottom: 0; }
.hero-text p { margin: 0; }

@media (max-width: 760px) {
  .hero-container { flex-direction: column; }
  .hero-left { flex: none; width: 100%; }
}

/* ============ Cards ============ */
.cards {
  display: grid;
  grid-template-columns: repeat(auto-fit, minmax(140px, 1fr));
  gap: 1rem;
}

.card {
  background: var(--card);
  padding: 1rem;
  border-radius: 14px;
  text-align: center;
  font-weight: 500;
  box-shadow: 2px 4px 12px rgba(0,0,0,0.08);
}

.journey-step p { margin: 0.4rem 0; }

/* ============ Charts ============ */
.chart { margin: 0; }
.chart .grid { stroke: var(--border); }
.chart .axis { stroke: var(--muted); }
.chart .tick, .chart .bar-label { font-size: 11px; fill: var(--muted); }
.chart .bar path:hover { opacity: 0.85; }
.histogram-caption { margin: 1.5rem 0 0.5rem; }
.histogram-dated { color: var(--muted); font-size: 13px; margin: 0.25rem 0 0; }

/* ============ Publications ============ */
.search label {
  display: block;
  font-size: 14px;
  margin-bottom: 0.4rem;
}

.search input {
  width: 100%;
  padding: 0.6rem 0.75rem;
  font: inherit;
  border: 1px solid var(--border);
  border-radius: 8px;
  background: #f0f2f6;
}

.expander {
  margin-top: 1rem;
  border: 1px solid var(--border);
  border-radius: 8px;
  padding: 0.5rem 1rem;
}

.expander summary { cursor: pointer; font-weight: 500; }
.pub-count { color: var(--muted); font-size: 13px; }
.table-wrap { overflow-x: auto; }

.dataframe {
  width: 100%;
  border-collapse: collapse;
  font-size: 14px;
}

.dataframe th, .dataframe td {
  padding: 0.4rem 0.6rem;
  border-bottom: 1px solid var(--border);
  text-align: left;
  vertical-align: top;
}

.dataframe th { color: var(--muted); font-weight: 600; }
.dataframe tr.no-match td { color: var(--muted); font-style: italic; }

.info {
  background: var(--info-bg);
  color: var(--info-text);
  padding: 1rem;
  border-radius: 8px;
}

/* ============ Contact ============ */
.contact-note { text-align: center; font-style: italic; }
.contact-email { text-align: center; font-weight: 600; }
`

// jsContent searches publications as the keyword changes: over the
// websocket when served live, by hiding table rows in an exported page.
const jsContent = `(function () {
  var form = document.getElementById('publication-search');
  var input = document.getElementById('keyword');
  var results = document.getElementById('publications-results');
  if (!form || !input || !results) return;

  var live = document.body.dataset.live === 'true';
  var base = document.body.dataset.base || '';
  var timer = null;

  function cellMatches(td, needle) {
    return td.textContent.toLowerCase().indexOf(needle) !== -1;
  }

  // The exported table only holds rows matching the export keyword, and its
  // histogram was counted for that keyword alone.
  function filterRows(keyword) {
    var needle = keyword.toLowerCase();
    var rows = results.querySelectorAll('tbody tr:not(.no-match)');
    var shown = 0;
    rows.forEach(function (tr) {
      var hit = needle === '' || Array.prototype.some.call(tr.cells, function (td) {
        return cellMatches(td, needle);
      });
      tr.hidden = !hit;
      if (hit) shown++;
    });
    var count = results.querySelector('.pub-count');
    if (count) count.textContent = shown + ' of ' + (count.dataset.total || rows.length);
    var hist = results.querySelector('.histogram');
    if (hist) hist.hidden = (hist.dataset.keyword || '').toLowerCase() !== needle;
  }

  function connect() {
    var proto = location.protocol === 'https:' ? 'wss://' : 'ws://';
    var path = new URL(base + 'ws/publications', location.href).pathname;
    var ws = new WebSocket(proto + location.host + path);
    ws.onmessage = function (ev) {
      var msg = JSON.parse(ev.data);
      if (msg.type !== 'publications') return;
      var open = results.querySelector('details') && results.querySelector('details').open;
      results.innerHTML = msg.html;
      var details = results.querySelector('details');
      if (details && open) details.open = true;
    };
    ws.onclose = function () { live = false; };
    return ws;
  }

  var ws = live ? connect() : null;

  function search() {
    var keyword = input.value;
    if (live && ws && ws.readyState === WebSocket.OPEN) {
      ws.send(JSON.stringify({ type: 'search', keyword: keyword }));
      var url = new URL(location.href);
      if (keyword) url.searchParams.set('q', keyword); else url.searchParams.delete('q');
      history.replaceState(null, '', url);
    } else if (!live) {
      filterRows(keyword);
    }
  }

  input.addEventListener('input', function () {
    clearTimeout(timer);
    timer = setTimeout(search, 250);
  });

  form.addEventListener('submit', function (ev) {
    if (!live || (ws && ws.readyState === WebSocket.OPEN)) {
      ev.preventDefault();
      search();
    }
  });

  if (!live && input.value) filterRows(input.value);
})();
`
