package weather

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/askmeteo/weather-chat/internal/common"
)

// Service composes geocoding and current-conditions lookups into the
// query-to-answer pipeline. All failures are converted into user-facing
// outcomes here; nothing below the HTTP layer ever sees a raw provider error.
type Service struct {
	geocoder Geocoder
	current  CurrentProvider
}

// NewService creates a new Service.
func NewService(geocoder Geocoder, current CurrentProvider) *Service {
	return &Service{
		geocoder: geocoder,
		current:  current,
	}
}

var titleCaser = cases.Title(language.English)

// GetWeatherByLocation resolves a location name and fetches its current
// conditions. Location text shorter than 2 characters fails validation before
// any network call is made.
func (s *Service) GetWeatherByLocation(ctx context.Context, location string) Outcome {
	if utf8.RuneCountInString(strings.TrimSpace(location)) < 2 {
		return Outcome{
			Success: false,
			Message: "Please provide a valid location name (at least 2 characters).",
		}
	}

	results := s.geocoder.Lookup(ctx, location)
	if len(results) == 0 {
		return Outcome{
			Success: false,
			Message: "Location not found. Please try with a different city or location name.",
			Error: &OutcomeError{
				Code:    CodeLocationNotFound,
				Details: "no coordinates found for location: " + location,
			},
		}
	}

	match := results[0]

	obs, err := s.current.FetchCurrent(ctx, match.Latitude, match.Longitude)
	if err != nil {
		log.Printf("weather: current conditions fetch failed for %s: %v", match.Name, err)
		return Outcome{
			Success: false,
			Message: "Error fetching weather data. Please try again later.",
			Error: &OutcomeError{
				Code:    CodeAPIError,
				Details: err.Error(),
			},
		}
	}

	display := match.Name + ", " + match.Country
	if match.Admin1 != "" {
		display = match.Name + ", " + match.Admin1 + ", " + match.Country
	}

	info := WeatherInfo{
		Location:      display,
		Temperature:   obs.Temperature,
		Unit:          obs.TemperatureUnit,
		Description:   Description(obs.WeatherCode),
		Humidity:      obs.Humidity,
		FeelsLike:     obs.ApparentTemperature,
		Precipitation: obs.Precipitation,
		WindSpeed:     obs.WindSpeed,
		WindSpeedUnit: obs.WindSpeedUnit,
		Time:          obs.Time,
		WeatherCode:   obs.WeatherCode,
		Country:       match.Country,
		Latitude:      match.Latitude,
		Longitude:     match.Longitude,
	}

	return Outcome{Success: true, WeatherInfo: &info}
}

// GetMultiDayForecast returns a multi-day forecast for the given coordinates.
//
// This is a placeholder: it returns a fixed five-day series regardless of the
// inputs. TODO: call the forecast endpoint with a
// daily=temperature_2m_max,temperature_2m_min,precipitation_sum,weather_code
// field list and drop the canned series.
func (s *Service) GetMultiDayForecast(_ context.Context, _, _ float64, _ int) ForecastOutcome {
	return ForecastOutcome{
		Success: true,
		Forecast: &DailyForecast{
			Time:        []string{"2025-03-07", "2025-03-08", "2025-03-09", "2025-03-10", "2025-03-11"},
			TempMax:     []float64{12.4, 13.2, 14.5, 11.8, 12.9},
			TempMin:     []float64{8.1, 7.4, 9.3, 7.8, 6.5},
			PrecipSum:   []float64{0.5, 1.2, 0, 0, 2.8},
			WeatherCode: []int{2, 61, 1, 0, 63},
		},
	}
}

// ProcessQuery turns a raw user utterance into assistant reply text. It never
// returns an error: every failure path produces a plain-language message.
func (s *Service) ProcessQuery(ctx context.Context, raw string) Reply {
	if common.HasAny(strings.ToLower(raw), "forecast", "next days") {
		return s.forecastReply(ctx, raw)
	}
	return s.currentReply(ctx, raw)
}

func (s *Service) forecastReply(ctx context.Context, raw string) Reply {
	location, ok := ExtractLocation(raw)
	if !ok {
		return Reply{Content: "I couldn't determine which location you want a forecast for. Please specify a city or place."}
	}

	display := titleCaser.String(location)

	results := s.geocoder.Lookup(ctx, location)
	if len(results) == 0 {
		return Reply{Content: fmt.Sprintf("I couldn't find the location %q. Please try a different place.", location)}
	}

	match := results[0]
	fc := s.GetMultiDayForecast(ctx, match.Latitude, match.Longitude, 5)
	if !fc.Success || fc.Forecast == nil {
		return Reply{Content: fmt.Sprintf("Sorry, I couldn't get the forecast for %s.", display)}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Here's the 5-day forecast for %s:\n\n", display)
	for i := range fc.Forecast.Time {
		fmt.Fprintf(&b, "%s: %s, %s°C to %s°C\n",
			formatDay(fc.Forecast.Time[i]),
			Description(fc.Forecast.WeatherCode[i]),
			fnum(fc.Forecast.TempMin[i]),
			fnum(fc.Forecast.TempMax[i]))
	}

	return Reply{Content: b.String(), Location: display}
}

func (s *Service) currentReply(ctx context.Context, raw string) Reply {
	location, ok := ExtractLocation(raw)
	if !ok {
		return Reply{Content: "I couldn't determine which location you're asking about. Please specify a city or place."}
	}

	outcome := s.GetWeatherByLocation(ctx, location)
	if outcome.Success && outcome.WeatherInfo != nil {
		return Reply{
			Content:  Summarize(*outcome.WeatherInfo),
			Location: outcome.WeatherInfo.Location,
		}
	}

	if outcome.Message != "" {
		return Reply{Content: outcome.Message}
	}
	return Reply{Content: "Sorry, I couldn't get the weather information."}
}

// formatDay renders an ISO date as "Fri, Mar 7". Unparseable input is passed
// through unchanged.
func formatDay(isoDate string) string {
	d, err := time.Parse("2006-01-02", isoDate)
	if err != nil {
		return isoDate
	}
	return d.Format("Mon, Jan 2")
}
