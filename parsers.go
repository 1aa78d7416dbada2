package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// parseTime parses an observation time token in the format "DDHHMM"Z.
func parseTime(timeStr string) (time.Time, error) {
	matches := timeRegex.FindStringSubmatch(timeStr)
	if matches == nil {
		return time.Time{}, fmt.Errorf("invalid time format: %s", timeStr)
	}

	day, _ := strconv.Atoi(matches[1])
	hour, _ := strconv.Atoi(matches[2])
	minute, _ := strconv.Atoi(matches[3])

	// Use current year and month
	now := clock.Now().UTC()
	result := time.Date(now.Year(), now.Month(), day, hour, minute, 0, 0, time.UTC)

	// A report filed on the last days of the previous month decodes with a
	// day-of-month ahead of today; anything more than a day in the future
	// rolls back one month.
	if result.After(now.Add(24 * time.Hour)) {
		result = result.AddDate(0, -1, 0)
	}

	return result, nil
}

// parseWind parses a wind token in the format "dddffKT", "dddffGggKT" or
// "VRBffKT". The direction is kept as the literal string to preserve leading
// zeros and the VRB sentinel.
func parseWind(windStr string) (windGroup, bool) {
	matches := windRegex.FindStringSubmatch(windStr)
	if matches == nil {
		return windGroup{}, false
	}

	w := windGroup{Direction: matches[1]}
	w.Speed, _ = strconv.Atoi(matches[2])
	if matches[4] != "" {
		w.Gust, _ = strconv.Atoi(matches[4])
		w.HasGust = true
	}

	return w, true
}

// matchVisibility inspects the tokens at the cursor and returns the formatted
// visibility string and how many tokens it consumed (0 when nothing matched).
// A whole number followed by a fraction ("1 1/2SM") consumes two tokens.
func matchVisibility(tokens []string, i int) (string, int) {
	tok := tokens[i]

	if m := visRegexSM.FindStringSubmatch(tok); m != nil {
		return m[1] + " statute miles", 1
	}

	if tok == "CAVOK" {
		return "Greater than 10 km (CAVOK)", 1
	}

	if visRegexWhole.MatchString(tok) && i+1 < len(tokens) {
		if m := visRegexFrac.FindStringSubmatch(tokens[i+1]); m != nil {
			return tok + " " + m[1] + " statute miles", 2
		}
	}

	if m := visRegexFrac.FindStringSubmatch(tok); m != nil {
		return m[1] + " statute miles", 1
	}

	return "", 0
}

// decodeWeather decodes a weather-phenomena token into a phrase. It returns
// false when the token shape is wrong or when any two-letter group is not in
// the weather table; the token is then rejected whole, never partially.
func decodeWeather(token string) (string, bool) {
	rest := token
	prefix := ""

	switch {
	case strings.HasPrefix(rest, "-"):
		prefix = "Light "
		rest = rest[1:]
	case strings.HasPrefix(rest, "+"):
		prefix = "Heavy "
		rest = rest[1:]
	}
	if strings.HasPrefix(rest, "VC") {
		prefix += "In vicinity: "
		rest = rest[2:]
	}

	if rest == "" || len(rest)%2 != 0 {
		return "", false
	}

	var phrases []string
	for i := 0; i < len(rest); i += 2 {
		phrase, ok := weatherCodes[rest[i:i+2]]
		if !ok {
			return "", false
		}
		phrases = append(phrases, phrase)
	}

	joined := strings.Join(phrases, " ")
	// A descriptor standing alone drops its connective: "TS" reads
	// "thunderstorm", not "thunderstorm with".
	joined = strings.TrimSuffix(joined, " with")
	joined = strings.TrimSuffix(joined, " of")

	return strings.TrimSpace(prefix + joined), true
}

// parseCloudLayer parses a sky-condition token in the format "CCC" or "CCChhh".
func parseCloudLayer(cloudStr string) (CloudLayer, bool) {
	matches := cloudRegex.FindStringSubmatch(cloudStr)
	if matches == nil {
		return CloudLayer{}, false
	}

	layer := CloudLayer{Coverage: matches[1]}

	// Only try to parse height if it exists
	if matches[2] != "" {
		height, _ := strconv.Atoi(matches[2])
		layer.Altitude = height * 100
	}

	return layer, true
}

// parseTemperature parses a temperature/dew point token in the format
// "TT/DD"; an M prefix negates its number.
func parseTemperature(tempStr string) (temp, dewPoint int, ok bool) {
	matches := tempRegex.FindStringSubmatch(tempStr)
	if matches == nil {
		return 0, 0, false
	}

	temp, _ = strconv.Atoi(matches[2])
	if matches[1] == "M" {
		temp = -temp
	}

	dewPoint, _ = strconv.Atoi(matches[4])
	if matches[3] == "M" {
		dewPoint = -dewPoint
	}

	return temp, dewPoint, true
}

// parseAltimeter parses an altimeter token in the format "Adddd" into inches
// of mercury.
func parseAltimeter(altStr string) (float64, bool) {
	matches := altimeterRegex.FindStringSubmatch(altStr)
	if matches == nil {
		return 0, false
	}

	altInt, _ := strconv.Atoi(matches[1])
	return float64(altInt) / 100.0, true
}
