package main

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// CelsiusToFahrenheit converts temperature from Celsius to Fahrenheit,
// rounded to the nearest degree.
func CelsiusToFahrenheit(celsius int) int {
	return int(math.Round(float64(celsius)*9/5 + 32))
}

// KnotsToMPH converts wind speed from knots to miles per hour, rounded to
// the nearest whole mph.
func KnotsToMPH(knots int) int {
	return int(math.Round(float64(knots) * 1.15078))
}

// InHgToMillibars converts pressure from inches of mercury to millibars (hPa)
func InHgToMillibars(inHg float64) float64 {
	return inHg * 33.8639
}

// cardinalDirection maps a heading string to one of 8 compass points.
// Non-numeric headings are returned unchanged.
func cardinalDirection(heading string) string {
	deg, err := strconv.Atoi(heading)
	if err != nil {
		return heading
	}

	d := float64(((deg % 360) + 360) % 360)
	switch {
	case d >= 337.5 || d < 22.5:
		return "north"
	case d < 67.5:
		return "northeast"
	case d < 112.5:
		return "east"
	case d < 157.5:
		return "southeast"
	case d < 202.5:
		return "south"
	case d < 247.5:
		return "southwest"
	case d < 292.5:
		return "west"
	default:
		return "northwest"
	}
}

// Calculate the relative time string
func relativeTimeString(t time.Time) string {
	now := clock.Now().UTC()
	diff := now.Sub(t)

	// Convert to minutes for easier comparisons
	minutes := int(diff.Minutes())

	if minutes < 0 {
		// For future times (rare, but possible with timezone issues)
		return "(in the future)"
	} else if minutes < 1 {
		return "(just now)"
	} else if minutes < 60 {
		return fmt.Sprintf("(%d minutes ago)", minutes)
	} else if minutes < 1440 { // less than 24 hours
		hours := minutes / 60
		mins := minutes % 60
		if mins == 0 {
			return fmt.Sprintf("(%d hours ago)", hours)
		}
		return fmt.Sprintf("(%d hours, %d minutes ago)", hours, mins)
	} else {
		days := minutes / 1440
		hours := (minutes % 1440) / 60
		if hours == 0 {
			return fmt.Sprintf("(%d days ago)", days)
		}
		return fmt.Sprintf("(%d days, %d hours ago)", days, hours)
	}
}

// formatNumberWithCommas adds thousands separators to a number
func formatNumberWithCommas(n int) string {
	numStr := strconv.Itoa(n)

	result := ""
	for i, c := range numStr {
		if i > 0 && (len(numStr)-i)%3 == 0 {
			result += ","
		}
		result += string(c)
	}

	return result
}
