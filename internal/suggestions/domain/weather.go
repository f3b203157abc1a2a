package domain

import "strings"

// Temperature bands, degrees Celsius. Readings between the comfortable and
// extreme bands get no temperature adjustment at all; the dead band is
// deliberate.
const (
	ComfortableTempMin = 15.0
	ComfortableTempMax = 25.0
	ExtremeTempBelow   = 10.0
	ExtremeTempAbove   = 30.0
)

// WeatherReading is the slice of a weather report the suggestion engine
// consumes. The outdoor-friendly judgment is folded into the value where the
// reading is constructed; the engine never branches on raw conditions.
type WeatherReading struct {
	TemperatureCelsius float64
	OutdoorFriendly    bool
}

// IsComfortableTemp reports whether the temperature is in the comfortable band.
func (w WeatherReading) IsComfortableTemp() bool {
	return w.TemperatureCelsius >= ComfortableTempMin && w.TemperatureCelsius <= ComfortableTempMax
}

// IsExtremeTemp reports whether the temperature is in the extreme band.
func (w WeatherReading) IsExtremeTemp() bool {
	return w.TemperatureCelsius < ExtremeTempBelow || w.TemperatureCelsius > ExtremeTempAbove
}

// ReadingForCondition folds a named weather condition into a reading.
// Clear and cloudy skies count as outdoor friendly; everything else,
// including unknown conditions, does not.
func ReadingForCondition(condition string, temperatureCelsius float64) WeatherReading {
	friendly := false
	switch strings.ToLower(condition) {
	case "clear", "clouds":
		friendly = true
	}
	return WeatherReading{
		TemperatureCelsius: temperatureCelsius,
		OutdoorFriendly:    friendly,
	}
}
