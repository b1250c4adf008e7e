package httpapi

import (
	"html/template"
	"strings"

	"github.com/i474232898/weather-now/internal/search"
	"github.com/i474232898/weather-now/internal/weather"
)

// widgetView is the data rendered by the widget page.
type widgetView struct {
	Query       string
	Loading     bool
	Error       string
	Display     *weather.Display
	ButtonLabel string
	Disabled    bool
}

func newWidgetView(st search.State) widgetView {
	v := widgetView{
		Query:       st.Query,
		Loading:     st.Loading,
		Error:       st.Error,
		ButtonLabel: "Search",
		Disabled:    st.Loading || strings.TrimSpace(st.Query) == "",
	}
	if st.Loading {
		v.ButtonLabel = "Loading…"
	}
	if st.Error == "" && st.Result != nil {
		d := weather.Present(*st.Result)
		v.Display = &d
	}
	return v
}

var widgetTemplate = template.Must(template.New("widget").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
	<meta charset="utf-8">
	<meta name="viewport" content="width=device-width, initial-scale=1">
	{{if .Loading}}<meta http-equiv="refresh" content="1">{{end}}
	<title>Weather Now</title>
	<link rel="stylesheet" href="https://fonts.googleapis.com/css2?family=Material+Symbols+Outlined">
</head>
<body>
	<main>
		<h1>Weather Now</h1>
		<form method="post" action="/search">
			<input type="text" name="query" value="{{.Query}}" placeholder="Search city (e.g., London)">
			<button type="submit"{{if .Disabled}} disabled{{end}}>{{.ButtonLabel}}</button>
		</form>
		{{if .Error}}
		<div class="error">{{.Error}}</div>
		{{else if .Display}}{{with .Display}}
		<section class="card">
			<header>
				<span class="material-symbols-outlined">{{.Icon}}</span>
				<h2>{{.Place}}</h2>
				<span class="badge">{{.Temperature}}</span>
			</header>
			<p>{{.Description}}</p>
			<dl>
				<dt>Wind</dt><dd>{{.Wind}}</dd>
				<dt>Humidity</dt><dd>{{.Humidity}}</dd>
				<dt>Pressure</dt><dd>{{.Pressure}}</dd>
				<dt>Clouds</dt><dd>{{.Clouds}}</dd>
			</dl>
			{{with .Today}}
			<div class="today">
				<p>Today</p>
				<div class="bar"><div class="fill" style="width: {{printf "%.1f" .BarPosition}}%"></div></div>
				<span>{{.Min}}</span> <span>{{.Max}}</span>
			</div>
			{{end}}
		</section>
		{{end}}{{else if not .Loading}}
		<p class="hint">Search for a city to see the weather.</p>
		{{end}}
	</main>
</body>
</html>
`))
