package main

import (
	"strings"

	"k8s.io/utils/ptr"
)

// errNoData is the only error a decode can carry; everything else is
// absorbed by the permissive field-by-field matching.
const errNoData = "No METAR data received"

// DecodeMETAR decodes a raw METAR string into a Report.
//
// Field recognizers run in fixed order against the front of the token list;
// each either consumes tokens or leaves the cursor alone, with no
// backtracking. Unmatched fields stay unset and leftover tokens (remarks,
// RVR, trend groups) are discarded, never reported as errors.
func DecodeMETAR(raw string) Report {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Report{Error: errNoData}
	}

	r := Report{Raw: trimmed}
	tokens := strings.Fields(trimmed)

	// Report-type prefix carries no data.
	if tokens[0] == "METAR" || tokens[0] == "SPECI" {
		tokens = tokens[1:]
	}

	i := 0

	// Station code, consumed unconditionally. Format validation is the
	// caller's concern, before the fetch.
	if i < len(tokens) {
		r.Station = tokens[i]
		i++
	}

	// Observation time
	if i < len(tokens) {
		if parsedTime, err := parseTime(tokens[i]); err == nil {
			r.Time = parsedTime
			i++
		}
	}

	// Wind
	if i < len(tokens) {
		if w, ok := parseWind(tokens[i]); ok {
			r.WindDirection = w.Direction
			r.WindSpeed = ptr.To(w.Speed)
			if w.HasGust {
				r.WindGust = ptr.To(w.Gust)
			}
			i++
		}
	}

	// Visibility, possibly split across two tokens ("1 1/2SM")
	if i < len(tokens) {
		if vis, consumed := matchVisibility(tokens, i); consumed > 0 {
			r.Visibility = vis
			i += consumed
		}
	}

	// Weather phenomena: a token with any unrecognized two-letter group is
	// rejected whole and ends the run.
	for i < len(tokens) {
		phrase, ok := decodeWeather(tokens[i])
		if !ok {
			break
		}
		r.Weather = append(r.Weather, phrase)
		i++
	}

	// Cloud layers
	for i < len(tokens) {
		layer, ok := parseCloudLayer(tokens[i])
		if !ok {
			break
		}
		r.Clouds = append(r.Clouds, layer)
		i++
	}

	// Temperature and dew point
	if i < len(tokens) {
		if temp, dewPoint, ok := parseTemperature(tokens[i]); ok {
			r.Temperature = ptr.To(temp)
			r.DewPoint = ptr.To(dewPoint)
			i++
		}
	}

	// Altimeter
	if i < len(tokens) {
		if alt, ok := parseAltimeter(tokens[i]); ok {
			r.Altimeter = ptr.To(alt)
			i++
		}
	}

	r.Summary = Summarize(r)

	return r
}
