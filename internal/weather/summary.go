package weather

import (
	"strconv"
	"strings"
)

// Summarize renders a WeatherInfo as natural-language prose. The rule set is
// fixed and applied in order, so output is fully determined by the input:
//
//  1. base sentence with location, description and temperature
//  2. feels-like sentence when it differs from the temperature by more than 2
//  3. precipitation sentence when any fell
//  4. wind sentence above 15 (in the provider's unit)
//  5. high-humidity sentence above 80%, dry-air sentence below 30%
func Summarize(info WeatherInfo) string {
	var b strings.Builder

	b.WriteString("The current weather in " + info.Location + " is " +
		strings.ToLower(info.Description) + " with a temperature of " +
		fnum(info.Temperature) + info.Unit + ".")

	if diff := info.Temperature - info.FeelsLike; diff > 2 || diff < -2 {
		cause := "humidity"
		if info.FeelsLike < info.Temperature {
			cause = "wind chill"
		}
		b.WriteString(" It feels like " + fnum(info.FeelsLike) + info.Unit + " due to " + cause + ".")
	}

	if info.Precipitation > 0 {
		b.WriteString(" There has been " + fnum(info.Precipitation) + " mm of precipitation.")
	}

	if info.WindSpeed > 15 {
		b.WriteString(" It's quite windy with wind speeds of " +
			fnum(info.WindSpeed) + " " + info.WindSpeedUnit + ".")
	}

	switch {
	case info.Humidity > 80:
		b.WriteString(" The humidity is high at " + fnum(info.Humidity) + "%.")
	case info.Humidity < 30:
		b.WriteString(" The air is quite dry with only " + fnum(info.Humidity) + "% humidity.")
	}

	return b.String()
}

// fnum formats a number the way it appears in provider payloads: no trailing
// zeros, no decimal point for whole values.
func fnum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
