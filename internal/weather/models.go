package weather

// Place is a geocoded location. It is produced by a Resolver and never modified afterwards.
type Place struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Country   string  `json:"country,omitempty"`
	Region    string  `json:"admin1,omitempty"`
}

// Label returns "name[, region][, country]".
func (p Place) Label() string {
	label := p.Name
	if p.Region != "" {
		label += ", " + p.Region
	}
	if p.Country != "" {
		label += ", " + p.Country
	}
	return label
}

// CurrentWeather mirrors Open-Meteo's current_weather block.
type CurrentWeather struct {
	Temperature   float64 `json:"temperature"`
	WindSpeed     float64 `json:"windspeed"`
	WindDirection float64 `json:"winddirection"`
	WeatherCode   int     `json:"weathercode"`
	Time          string  `json:"time"`
}

// Series is a provider value array. Elements may be null.
type Series []*float64

// First returns the first element of the series, if present and non-null.
func (s Series) First() (float64, bool) {
	if len(s) == 0 || s[0] == nil {
		return 0, false
	}
	return *s[0], true
}

// HourlySeries holds parallel hourly arrays aligned by index to Time.
type HourlySeries struct {
	Temperature      Series   `json:"temperature_2m,omitempty"`
	RelativeHumidity Series   `json:"relativehumidity_2m,omitempty"`
	CloudCover       Series   `json:"cloudcover,omitempty"`
	SurfacePressure  Series   `json:"surface_pressure,omitempty"`
	Time             []string `json:"time,omitempty"`
}

// DailySeries holds parallel daily arrays aligned by index to Time.
type DailySeries struct {
	TemperatureMax Series   `json:"temperature_2m_max,omitempty"`
	TemperatureMin Series   `json:"temperature_2m_min,omitempty"`
	Time           []string `json:"time,omitempty"`
}

// Snapshot is the forecast response for one Place: current conditions plus
// the short-horizon hourly and daily series.
type Snapshot struct {
	Current *CurrentWeather `json:"current_weather,omitempty"`
	Hourly  *HourlySeries   `json:"hourly,omitempty"`
	Daily   *DailySeries    `json:"daily,omitempty"`
}

// Humidity returns the first hourly relative humidity reading.
func (s Snapshot) Humidity() (float64, bool) {
	if s.Hourly == nil {
		return 0, false
	}
	return s.Hourly.RelativeHumidity.First()
}

// Pressure returns the first hourly surface pressure reading.
func (s Snapshot) Pressure() (float64, bool) {
	if s.Hourly == nil {
		return 0, false
	}
	return s.Hourly.SurfacePressure.First()
}

// Clouds returns the first hourly cloud cover reading.
func (s Snapshot) Clouds() (float64, bool) {
	if s.Hourly == nil {
		return 0, false
	}
	return s.Hourly.CloudCover.First()
}

// TodayRange returns today's daily min and max. ok is false unless both are present.
func (s Snapshot) TodayRange() (tMin, tMax float64, ok bool) {
	if s.Daily == nil {
		return 0, 0, false
	}
	tMin, okMin := s.Daily.TemperatureMin.First()
	tMax, okMax := s.Daily.TemperatureMax.First()
	if !okMin || !okMax {
		return 0, 0, false
	}
	return tMin, tMax, true
}

// Result pairs a resolved Place with its Snapshot. A successful search always
// produces both.
type Result struct {
	Place   Place    `json:"place"`
	Weather Snapshot `json:"weather"`
}
