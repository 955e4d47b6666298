package weather

// WMO weather interpretation codes as reported by Open-Meteo.
var weatherCodes = map[int]string{
	0:  "Clear sky",
	1:  "Mainly clear",
	2:  "Partly cloudy",
	3:  "Overcast",
	45: "Fog",
	51: "Light drizzle",
	61: "Slight rain",
	63: "Moderate rain",
	65: "Heavy rain",
	71: "Slight snow fall",
	80: "Slight rain showers",
	95: "Thunderstorm",
}

// Description maps a weather code to human-readable text.
// Codes outside the table map to "Unknown".
func Description(code int) string {
	if desc, ok := weatherCodes[code]; ok {
		return desc
	}
	return "Unknown"
}
