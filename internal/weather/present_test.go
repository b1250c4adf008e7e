package weather

import (
	"math"
	"testing"
)

func f(v float64) *float64 { return &v }

func TestDescribe(t *testing.T) {
	cases := map[int]string{
		0:   "Clear sky",
		3:   "Overcast",
		48:  "Depositing rime fog",
		57:  "Dense freezing drizzle",
		77:  "Snow grains",
		82:  "Violent rain showers",
		99:  "Thunderstorm with heavy hail",
		4:   FallbackDescription,
		200: FallbackDescription,
		-1:  FallbackDescription,
	}
	for code, want := range cases {
		if got := Describe(code); got != want {
			t.Errorf("Describe(%d) = %q, want %q", code, got, want)
		}
	}
	if len(descriptions) != 28 {
		t.Fatalf("expected 28 described codes, got %d", len(descriptions))
	}
}

func TestConditionAndIconFor(t *testing.T) {
	cases := []struct {
		code      int
		condition Condition
		icon      Icon
	}{
		{0, ConditionClear, IconSunny},
		{1, ConditionPartlyCloudy, IconPartlyCloudy},
		{2, ConditionPartlyCloudy, IconPartlyCloudy},
		{3, ConditionOvercast, IconCloud},
		{45, ConditionFog, IconCloud},
		{48, ConditionFog, IconCloud},
		{51, ConditionRain, IconCloud},
		{57, ConditionRain, IconCloud},
		{61, ConditionRain, IconRainy},
		{65, ConditionRain, IconRainy},
		{66, ConditionRain, IconCloud},
		{67, ConditionRain, IconCloud},
		{80, ConditionRain, IconRainy},
		{82, ConditionRain, IconRainy},
		{71, ConditionSnow, IconSnowy},
		{86, ConditionSnow, IconSnowy},
		{77, ConditionUnknown, IconCloud},
		{95, ConditionThunder, IconThunderstorm},
		{99, ConditionThunder, IconThunderstorm},
		{200, ConditionUnknown, IconCloud},
	}
	for _, tc := range cases {
		if got := ConditionFor(tc.code); got != tc.condition {
			t.Errorf("ConditionFor(%d) = %q, want %q", tc.code, got, tc.condition)
		}
		if got := IconFor(tc.code); got != tc.icon {
			t.Errorf("IconFor(%d) = %q, want %q", tc.code, got, tc.icon)
		}
	}
}

func TestBarPosition(t *testing.T) {
	cases := []struct {
		temp, tMin, tMax float64
		want             float64
	}{
		{10, 5, 15, 50},
		{10, 10, 10, 2},
		{5, 5, 15, 2},
		{15, 5, 15, 100},
		{20, 5, 15, 100},
		{0, 5, 15, 2},
		{10.5, 10, 10.5, 50},
	}
	for _, tc := range cases {
		got := BarPosition(tc.temp, tc.tMin, tc.tMax)
		if math.IsNaN(got) || math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("BarPosition(%v, %v, %v) = %v, want %v", tc.temp, tc.tMin, tc.tMax, got, tc.want)
		}
	}
}

func TestRoundHalfUp(t *testing.T) {
	cases := map[float64]int{
		14.5:  15,
		14.49: 14,
		-2.5:  -2,
		-2.51: -3,
		0:     0,
	}
	for in, want := range cases {
		if got := roundHalfUp(in); got != want {
			t.Errorf("roundHalfUp(%v) = %d, want %d", in, got, want)
		}
	}
}

func TestPresentFullResult(t *testing.T) {
	r := Result{
		Place: Place{ID: 1, Name: "London", Latitude: 51.5, Longitude: -0.12, Region: "England", Country: "United Kingdom"},
		Weather: Snapshot{
			Current: &CurrentWeather{Temperature: 15, WindSpeed: 12.6, WeatherCode: 3},
			Hourly: &HourlySeries{
				RelativeHumidity: Series{f(81.4), f(90)},
				SurfacePressure:  Series{f(1012.5)},
				CloudCover:       Series{f(99.6)},
			},
			Daily: &DailySeries{
				TemperatureMax: Series{f(20)},
				TemperatureMin: Series{f(10)},
			},
		},
	}

	d := Present(r)

	if d.Place != "London, England, United Kingdom" {
		t.Errorf("unexpected place label %q", d.Place)
	}
	if d.Description != "Overcast" || d.Condition != ConditionOvercast || d.Icon != IconCloud {
		t.Errorf("unexpected condition mapping: %+v", d)
	}
	if d.Temperature != "15°C" || d.Wind != "13 km/h" {
		t.Errorf("unexpected temperature/wind: %q %q", d.Temperature, d.Wind)
	}
	if d.Humidity != "81%" || d.Pressure != "1013 hPa" || d.Clouds != "100%" {
		t.Errorf("unexpected hourly readings: %q %q %q", d.Humidity, d.Pressure, d.Clouds)
	}
	if d.Today == nil {
		t.Fatal("expected today range")
	}
	if d.Today.Min != "Min 10°" || d.Today.Max != "Max 20°" || d.Today.BarPosition != 50 {
		t.Errorf("unexpected today range: %+v", *d.Today)
	}
}

func TestPresentMissingFields(t *testing.T) {
	r := Result{
		Place: Place{Name: "Nowhere"},
		Weather: Snapshot{
			Current: &CurrentWeather{Temperature: -2.5, WeatherCode: 200},
			Hourly:  &HourlySeries{RelativeHumidity: Series{nil}},
			Daily:   &DailySeries{TemperatureMax: Series{f(3)}},
		},
	}

	d := Present(r)

	if d.Place != "Nowhere" {
		t.Errorf("unexpected place label %q", d.Place)
	}
	if d.Description != FallbackDescription || d.Icon != IconCloud || d.Condition != ConditionUnknown {
		t.Errorf("expected fallback mapping, got %+v", d)
	}
	if d.Temperature != "-2°C" {
		t.Errorf("expected -2°C, got %q", d.Temperature)
	}
	if d.Humidity != Missing || d.Pressure != Missing || d.Clouds != Missing {
		t.Errorf("expected missing markers, got %q %q %q", d.Humidity, d.Pressure, d.Clouds)
	}
	if d.Today != nil {
		t.Errorf("expected no today range without a daily min, got %+v", *d.Today)
	}
}

func TestPresentWithoutCurrentWeather(t *testing.T) {
	d := Present(Result{Place: Place{Name: "Paris", Country: "France"}})
	if d.Place != "Paris, France" {
		t.Errorf("unexpected place label %q", d.Place)
	}
	if d.Temperature != Missing || d.Wind != Missing || d.Description != FallbackDescription {
		t.Errorf("expected missing current readings, got %+v", d)
	}
}
