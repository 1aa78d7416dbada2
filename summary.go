package main

import (
	"fmt"
	"strings"
)

// Summarize renders the plain-language narrative for a decoded report:
// ordered sentence fragments joined with ". " and closed with a period.
func Summarize(r Report) string {
	var fragments []string

	// Sky: only the first cloud layer is narrated.
	if len(r.Clouds) == 0 {
		fragments = append(fragments, "Clear skies")
	} else {
		layer := r.Clouds[0]
		sky := layer.Coverage
		if phrase, ok := cloudCoverage[layer.Coverage]; ok {
			sky = phrase
		}
		if layer.Altitude > 0 {
			sky += fmt.Sprintf(" at %s feet", formatNumberWithCommas(layer.Altitude))
		}
		fragments = append(fragments, sky)
	}

	if len(r.Weather) > 0 {
		fragments = append(fragments, strings.ToLower(strings.Join(r.Weather, ", ")))
	}

	if r.Temperature != nil {
		fragments = append(fragments, fmt.Sprintf("Temperature %d°F (%d°C)",
			CelsiusToFahrenheit(*r.Temperature), *r.Temperature))
	}

	if r.WindSpeed != nil {
		fragments = append(fragments, windFragment(r))
	}

	if r.Visibility != "" {
		fragments = append(fragments, "Visibility "+r.Visibility)
	}

	if r.Altimeter != nil {
		fragments = append(fragments, fmt.Sprintf("Altimeter %.2f\" Hg", *r.Altimeter))
	}

	return strings.Join(fragments, ". ") + "."
}

// windFragment renders the wind sentence. Calm, variable and directional
// winds each read differently; gusts only appear with a heading.
func windFragment(r Report) string {
	speed := *r.WindSpeed

	if speed == 0 {
		return "Calm winds"
	}
	if r.WindDirection == "VRB" {
		return fmt.Sprintf("Variable winds at %d mph", KnotsToMPH(speed))
	}

	s := fmt.Sprintf("Wind from the %s at %d mph", cardinalDirection(r.WindDirection), KnotsToMPH(speed))
	if r.WindGust != nil {
		s += fmt.Sprintf(", gusting to %d mph", KnotsToMPH(*r.WindGust))
	}
	return s
}
