package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Color definitions using fatih/color
var (
	labelColor   = color.New(color.FgCyan)
	dateColor    = color.New(color.FgGreen)
	summaryColor = color.New(color.FgMagenta)

	// Age-based colors
	freshColor   = color.New(color.FgGreen)
	warningColor = color.New(color.FgYellow)
	expiredColor = color.New(color.FgRed)
)

// getReportAgeColor returns the appropriate color based on report age
func getReportAgeColor(minutes int) *color.Color {
	if minutes > 60 {
		return expiredColor
	} else if minutes > 30 {
		return warningColor
	}
	return freshColor
}

// formatWind converts the wind fields to a human-readable string
func formatWind(r Report) string {
	if r.WindSpeed == nil {
		return ""
	}

	windStr := ""
	if r.WindDirection == "VRB" {
		windStr += "Variable"
	} else if r.WindDirection != "" {
		windStr += fmt.Sprintf("From %s°", r.WindDirection)
	}

	if *r.WindSpeed > 0 {
		windStr += fmt.Sprintf(" at %d knots", *r.WindSpeed)
		if r.WindGust != nil {
			windStr += fmt.Sprintf(", gusting to %d knots", *r.WindGust)
		}
	} else {
		windStr += ", calm"
	}

	return strings.TrimSpace(windStr)
}

// formatClouds converts a slice of CloudLayer to a human-readable string
func formatClouds(clouds []CloudLayer) string {
	if len(clouds) == 0 {
		return ""
	}

	var cloudStrs []string
	for _, layer := range clouds {
		coverStr := layer.Coverage
		if c, ok := cloudCoverage[layer.Coverage]; ok {
			coverStr = strings.ToLower(c)
		}

		cloudDesc := coverStr
		if layer.Altitude > 0 {
			cloudDesc = fmt.Sprintf("%s at %s feet", coverStr, formatNumberWithCommas(layer.Altitude))
		}

		cloudStrs = append(cloudStrs, cloudDesc)
	}

	return strings.Join(cloudStrs, ", ")
}

// FormatReport formats a decoded Report for terminal display with colors.
func FormatReport(r Report) string {
	var sb strings.Builder

	if r.Error != "" {
		expiredColor.Fprintln(&sb, r.Error)
		return sb.String()
	}

	labelColor.Fprint(&sb, "Station: ")
	sb.WriteString(r.Station + "\n")

	if !r.Time.IsZero() {
		relTime := relativeTimeString(r.Time)
		ageColor := getReportAgeColor(int(clock.Now().UTC().Sub(r.Time).Minutes()))

		labelColor.Fprint(&sb, "Time: ")
		dateColor.Fprint(&sb, r.Time.Format("2006-01-02 15:04 UTC"))
		sb.WriteString(" ")
		ageColor.Fprint(&sb, relTime)
		sb.WriteString("\n")
	}

	windStr := formatWind(r)
	if windStr != "" {
		labelColor.Fprint(&sb, "Wind: ")
		sb.WriteString(windStr + "\n")
	}

	if r.Visibility != "" {
		labelColor.Fprint(&sb, "Visibility: ")
		sb.WriteString(r.Visibility + "\n")
	}

	if len(r.Weather) > 0 {
		labelColor.Fprint(&sb, "Weather: ")
		sb.WriteString(capitalizeFirst(strings.ToLower(strings.Join(r.Weather, ", "))) + "\n")
	}

	cloudStr := formatClouds(r.Clouds)
	if cloudStr != "" {
		labelColor.Fprint(&sb, "Clouds: ")
		sb.WriteString(capitalizeFirst(cloudStr) + "\n")
	}

	if r.Temperature != nil {
		labelColor.Fprint(&sb, "Temperature: ")
		sb.WriteString(fmt.Sprintf("%d°C | %d°F\n", *r.Temperature, CelsiusToFahrenheit(*r.Temperature)))
	}

	if r.DewPoint != nil {
		labelColor.Fprint(&sb, "Dew Point: ")
		sb.WriteString(fmt.Sprintf("%d°C | %d°F\n", *r.DewPoint, CelsiusToFahrenheit(*r.DewPoint)))
	}

	if r.Altimeter != nil {
		labelColor.Fprint(&sb, "Altimeter: ")
		sb.WriteString(fmt.Sprintf("%.2f inHg | %.1f hPa\n", *r.Altimeter, InHgToMillibars(*r.Altimeter)))
	}

	if r.Summary != "" {
		labelColor.Fprint(&sb, "Summary: ")
		summaryColor.Fprint(&sb, r.Summary)
		sb.WriteString("\n")
	}

	return sb.String()
}

// capitalizeFirst capitalizes the first letter of a string
func capitalizeFirst(s string) string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
