package weather

// LocationMatch is a single geocoding result. At most one match is ever
// consumed; callers take the first result and ignore the rest.
type LocationMatch struct {
	Name        string  `json:"name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Country     string  `json:"country"`
	CountryCode string  `json:"country_code"`
	Admin1      string  `json:"admin1,omitempty"`
}

// CurrentObservation is the raw current-conditions reading returned by the
// weather provider, together with the unit strings reported alongside it.
type CurrentObservation struct {
	Time                string
	Temperature         float64
	Humidity            float64
	ApparentTemperature float64
	Precipitation       float64
	WeatherCode         int
	WindSpeed           float64

	TemperatureUnit string
	WindSpeedUnit   string
}

// WeatherInfo is the canonical result of a successful query: geocoding display
// fields combined with the observation and a resolved description. Created
// once per query, never mutated.
type WeatherInfo struct {
	Location      string  `json:"location"`
	Temperature   float64 `json:"temperature"`
	Unit          string  `json:"unit"`
	Description   string  `json:"description"`
	Humidity      float64 `json:"humidity"`
	FeelsLike     float64 `json:"feelsLike"`
	Precipitation float64 `json:"precipitation"`
	WindSpeed     float64 `json:"windSpeed"`
	WindSpeedUnit string  `json:"windSpeedUnit"`
	Time          string  `json:"time"`
	WeatherCode   int     `json:"weatherCode"`
	Country       string  `json:"country"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
}

// Machine-readable failure codes carried by Outcome.
const (
	CodeLocationNotFound = "LOCATION_NOT_FOUND"
	CodeAPIError         = "API_ERROR"
)

// OutcomeError pairs a failure code with diagnostic details. The details are
// for logs and API clients; the user only ever sees Outcome.Message.
type OutcomeError struct {
	Code    string `json:"code"`
	Details string `json:"details"`
}

// Outcome is the uniform result of a weather lookup. Exactly one of
// WeatherInfo (on success) or Message (on failure) is meaningful.
type Outcome struct {
	Success     bool          `json:"success"`
	Message     string        `json:"message,omitempty"`
	WeatherInfo *WeatherInfo  `json:"weatherInfo,omitempty"`
	Error       *OutcomeError `json:"error,omitempty"`
}

// DailyForecast holds a multi-day series in parallel arrays, one entry per day.
type DailyForecast struct {
	Time        []string  `json:"time"`
	TempMax     []float64 `json:"temperature_2m_max"`
	TempMin     []float64 `json:"temperature_2m_min"`
	PrecipSum   []float64 `json:"precipitation_sum"`
	WeatherCode []int     `json:"weather_code"`
}

// ForecastOutcome is the result of a multi-day forecast request.
type ForecastOutcome struct {
	Success  bool           `json:"success"`
	Message  string         `json:"message,omitempty"`
	Forecast *DailyForecast `json:"forecast,omitempty"`
}

// Reply is the assistant-facing result of processing a raw query. Location is
// the display name of the place answered about, empty when the query failed.
type Reply struct {
	Content  string
	Location string
}
