package weather

import (
	"math"
	"strconv"
)

// Condition is the high-level sky/precipitation category of a weather code.
type Condition string

const (
	ConditionUnknown      Condition = "unknown"
	ConditionClear        Condition = "clear"
	ConditionPartlyCloudy Condition = "partly_cloudy"
	ConditionOvercast     Condition = "overcast"
	ConditionFog          Condition = "fog"
	ConditionRain         Condition = "rain"
	ConditionSnow         Condition = "snow"
	ConditionThunder      Condition = "thunder"
)

// Icon is a Material Symbols glyph name.
type Icon string

const (
	IconSunny        Icon = "sunny"
	IconPartlyCloudy Icon = "partly_cloudy_day"
	IconCloud        Icon = "cloud"
	IconRainy        Icon = "rainy"
	IconSnowy        Icon = "weather_snowy"
	IconThunderstorm Icon = "thunderstorm"
)

// FallbackDescription is shown for codes missing from the description table.
const FallbackDescription = "Current weather"

// Missing marks a value the provider did not return.
const Missing = "—"

var descriptions = map[int]string{
	0:  "Clear sky",
	1:  "Mainly clear",
	2:  "Partly cloudy",
	3:  "Overcast",
	45: "Fog",
	48: "Depositing rime fog",
	51: "Light drizzle",
	53: "Moderate drizzle",
	55: "Dense drizzle",
	56: "Light freezing drizzle",
	57: "Dense freezing drizzle",
	61: "Slight rain",
	63: "Moderate rain",
	65: "Heavy rain",
	66: "Light freezing rain",
	67: "Heavy freezing rain",
	71: "Slight snow",
	73: "Moderate snow",
	75: "Heavy snow",
	77: "Snow grains",
	80: "Slight rain showers",
	81: "Moderate rain showers",
	82: "Violent rain showers",
	85: "Slight snow showers",
	86: "Heavy snow showers",
	95: "Thunderstorm",
	96: "Thunderstorm with slight hail",
	99: "Thunderstorm with heavy hail",
}

// Describe returns the human description for a weather code.
func Describe(code int) string {
	if d, ok := descriptions[code]; ok {
		return d
	}
	return FallbackDescription
}

// ConditionFor maps a weather code to its category.
func ConditionFor(code int) Condition {
	switch code {
	case 0:
		return ConditionClear
	case 1, 2:
		return ConditionPartlyCloudy
	case 3:
		return ConditionOvercast
	case 45, 48:
		return ConditionFog
	case 51, 53, 55, 56, 57, 61, 63, 65, 66, 67, 80, 81, 82:
		return ConditionRain
	case 71, 73, 75, 85, 86:
		return ConditionSnow
	case 95, 96, 99:
		return ConditionThunder
	default:
		return ConditionUnknown
	}
}

// IconFor maps a weather code to its glyph. Only rain and shower codes get the
// rain glyph; drizzle, freezing, fog and unknown codes use the cloud.
func IconFor(code int) Icon {
	switch ConditionFor(code) {
	case ConditionClear:
		return IconSunny
	case ConditionPartlyCloudy:
		return IconPartlyCloudy
	case ConditionRain:
		switch code {
		case 61, 63, 65, 80, 81, 82:
			return IconRainy
		}
		return IconCloud
	case ConditionSnow:
		return IconSnowy
	case ConditionThunder:
		return IconThunderstorm
	default:
		return IconCloud
	}
}

// BarPosition is the percentage position of temp between tMin and tMax,
// clamped to [2, 100]. The span is floored at 1 degree.
func BarPosition(temp, tMin, tMax float64) float64 {
	pos := (temp - tMin) / math.Max(1, tMax-tMin) * 100
	return math.Max(2, math.Min(100, pos))
}

// roundHalfUp rounds .5 towards positive infinity, so -2.5 displays as -2.
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

func formatValue(v float64, ok bool, unit string) string {
	if !ok {
		return Missing
	}
	return strconv.Itoa(roundHalfUp(v)) + unit
}

// TodayRange is today's min/max readout with the current temperature's bar position.
type TodayRange struct {
	Min         string  `json:"min"`
	Max         string  `json:"max"`
	BarPosition float64 `json:"barPositionPercent"`
}

// Display holds the human-readable fields rendered for a Result.
type Display struct {
	Place       string      `json:"place"`
	Description string      `json:"description"`
	Condition   Condition   `json:"condition"`
	Icon        Icon        `json:"icon"`
	Temperature string      `json:"temperature"`
	Wind        string      `json:"wind"`
	Humidity    string      `json:"humidity"`
	Pressure    string      `json:"pressure"`
	Clouds      string      `json:"clouds"`
	Today       *TodayRange `json:"today,omitempty"`
}

// Present maps a Result to display fields. Values are rounded here only; the
// bar position uses the unrounded readings.
func Present(r Result) Display {
	d := Display{
		Place:       r.Place.Label(),
		Description: FallbackDescription,
		Condition:   ConditionUnknown,
		Icon:        IconCloud,
		Temperature: Missing,
		Wind:        Missing,
	}

	cw := r.Weather.Current
	if cw != nil {
		d.Description = Describe(cw.WeatherCode)
		d.Condition = ConditionFor(cw.WeatherCode)
		d.Icon = IconFor(cw.WeatherCode)
		d.Temperature = formatValue(cw.Temperature, true, "°C")
		d.Wind = formatValue(cw.WindSpeed, true, " km/h")
	}

	humidity, ok := r.Weather.Humidity()
	d.Humidity = formatValue(humidity, ok, "%")
	pressure, ok := r.Weather.Pressure()
	d.Pressure = formatValue(pressure, ok, " hPa")
	clouds, ok := r.Weather.Clouds()
	d.Clouds = formatValue(clouds, ok, "%")

	if tMin, tMax, ok := r.Weather.TodayRange(); ok && cw != nil {
		d.Today = &TodayRange{
			Min:         "Min " + formatValue(tMin, true, "°"),
			Max:         "Max " + formatValue(tMax, true, "°"),
			BarPosition: BarPosition(cw.Temperature, tMin, tMax),
		}
	}

	return d
}
