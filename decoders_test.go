package main

import (
	"iter"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thiagomoreirasantos/METAR-Reader/testdata"
)

func TestMain(m *testing.M) {
	// Pin the clock so day-of-month resolution is stable against the
	// corpus, whose reports are all filed on the 15th.
	SetClock(clockwork.NewFakeClockAt(time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)))
	os.Exit(m.Run())
}

func decodeMETARList(t *testing.T) iter.Seq2[string, Report] {
	return func(yield func(string, Report) bool) {
		scanner := testdata.METAR(t)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			if !yield(line, DecodeMETAR(line)) {
				return
			}
		}
	}
}

// reportFields strips the report-type prefix so fields line up with the
// decoded report.
func reportFields(line string) []string {
	fields := strings.Fields(line)
	if fields[0] == "METAR" || fields[0] == "SPECI" {
		fields = fields[1:]
	}
	return fields
}

func TestDecodeMETAR_emptyInput(t *testing.T) {
	t.Parallel()
	for _, raw := range []string{"", "   ", "\n\t"} {
		r := DecodeMETAR(raw)
		assert.Equal(t, "No METAR data received", r.Error)
		assert.Empty(t, r.Station)
		assert.Empty(t, r.Summary)
	}
}

func TestDecodeMETAR_stationCode(t *testing.T) {
	t.Parallel()
	for line, report := range decodeMETARList(t) {
		fields := reportFields(line)
		assert.Equal(t, fields[0], report.Station, line, "station code did not match")
	}
}

func TestDecodeMETAR_time(t *testing.T) {
	t.Parallel()
	for line, report := range decodeMETARList(t) {
		fields := reportFields(line)
		got := report.Time.Format("021504") + "Z"
		assert.Equal(t, fields[1], got, line, "time did not match")
	}
}

func TestDecodeMETAR_wind(t *testing.T) {
	t.Parallel()
	for line, report := range decodeMETARList(t) {
		for _, field := range reportFields(line) {
			if !windRegex.MatchString(field) {
				continue
			}
			expected, ok := parseWind(field)
			require.True(t, ok, line)
			assert.Equal(t, expected.Direction, report.WindDirection, line)
			require.NotNil(t, report.WindSpeed, line)
			assert.Equal(t, expected.Speed, *report.WindSpeed, line)
			if expected.HasGust {
				require.NotNil(t, report.WindGust, line)
				assert.Equal(t, expected.Gust, *report.WindGust, line)
			} else {
				assert.Nil(t, report.WindGust, line)
			}
			break
		}
	}
}

func TestDecodeMETAR_summaryShape(t *testing.T) {
	t.Parallel()
	for line, report := range decodeMETARList(t) {
		assert.NotEmpty(t, report.Summary, line)
		assert.True(t, strings.HasSuffix(report.Summary, "."), line)
		assert.False(t, strings.HasSuffix(report.Summary, ".."), line)
	}
}

func TestDecodeMETAR_idempotent(t *testing.T) {
	t.Parallel()
	for line, report := range decodeMETARList(t) {
		again := DecodeMETAR(report.Raw)
		assert.Equal(t, report, again, line, "decoding its own Raw must reproduce the report")
	}
}

func TestDecodeMETAR_reportTypePrefix(t *testing.T) {
	t.Parallel()

	plain := DecodeMETAR("KSAN 151751Z 27008KT 10SM OVC011 20/16 A2994")
	withPrefix := DecodeMETAR("METAR KSAN 151751Z 27008KT 10SM OVC011 20/16 A2994")
	assert.Equal(t, "KSAN", plain.Station)
	assert.Equal(t, "KSAN", withPrefix.Station)
	assert.Equal(t, plain.Clouds, withPrefix.Clouds)

	speci := DecodeMETAR("SPECI KHIO 151815Z 31008KT 10SM SKC 24/11 A3005")
	assert.Equal(t, "KHIO", speci.Station)
}

func TestDecodeMETAR_fullReport(t *testing.T) {
	t.Parallel()

	r := DecodeMETAR("KHIO 151753Z 31015G25KT 10SM FEW045 24/11 A3005 RMK AO2 SLP175")

	assert.Empty(t, r.Error)
	assert.Equal(t, "KHIO", r.Station)
	assert.Equal(t, time.Date(2026, 8, 15, 17, 53, 0, 0, time.UTC), r.Time)
	assert.Equal(t, "310", r.WindDirection)
	require.NotNil(t, r.WindSpeed)
	assert.Equal(t, 15, *r.WindSpeed)
	require.NotNil(t, r.WindGust)
	assert.Equal(t, 25, *r.WindGust)
	assert.Equal(t, "10 statute miles", r.Visibility)
	require.Len(t, r.Clouds, 1)
	assert.Equal(t, CloudLayer{Coverage: "FEW", Altitude: 4500}, r.Clouds[0])
	require.NotNil(t, r.Temperature)
	assert.Equal(t, 24, *r.Temperature)
	require.NotNil(t, r.DewPoint)
	assert.Equal(t, 11, *r.DewPoint)
	require.NotNil(t, r.Altimeter)
	assert.Equal(t, 30.05, *r.Altimeter)

	assert.Equal(t,
		"Few clouds at 4,500 feet. Temperature 75°F (24°C). "+
			"Wind from the northwest at 17 mph, gusting to 29 mph. "+
			"Visibility 10 statute miles. Altimeter 30.05\" Hg.",
		r.Summary)
}

func TestDecodeMETAR_weatherPhenomena(t *testing.T) {
	t.Parallel()

	tests := []struct {
		token string
		want  string
	}{
		{"RA", "rain"},
		{"-RA", "Light rain"},
		{"+SN", "Heavy snow"},
		{"TSRA", "thunderstorm with rain"},
		{"TS", "thunderstorm"},
		{"SHSN", "showers of snow"},
		{"SH", "showers"},
		{"VCSH", "In vicinity: showers"},
		{"-FZDZ", "Light freezing drizzle"},
		{"+TSRAGR", "Heavy thunderstorm with rain hail"},
		{"BCFG", "patches of fog"},
		{"BLSN", "blowing snow"},
	}
	for _, tt := range tests {
		r := DecodeMETAR("KTST 151753Z 10010KT 10SM " + tt.token + " SCT050 20/10 A3000")
		assert.Equal(t, []string{tt.want}, r.Weather, tt.token)
	}
}

func TestDecodeMETAR_unknownWeatherTokenRejectedWhole(t *testing.T) {
	t.Parallel()

	// XX is not a phenomenon code, so RAXX must not decode as "rain ...".
	r := DecodeMETAR("KTST 151753Z 10010KT 10SM RAXX SCT050 20/10 A3000")
	assert.Empty(t, r.Weather)
	// The unmatched token ends the weather run without consuming it, so
	// the cloud layer behind it is lost too.
	assert.Empty(t, r.Clouds)
}

func TestDecodeMETAR_missingFieldsStayUnset(t *testing.T) {
	t.Parallel()

	r := DecodeMETAR("EGLL 151750Z 23012KT 9999 SCT028 BKN042 18/12 Q1013")
	assert.Equal(t, "EGLL", r.Station)
	assert.Equal(t, "230", r.WindDirection)
	// Metric visibility is not a recognized form; everything behind the
	// unmatched token stays unset.
	assert.Empty(t, r.Visibility)
	assert.Empty(t, r.Clouds)
	assert.Nil(t, r.Temperature)
	assert.Nil(t, r.Altimeter)
	assert.Empty(t, r.Error)
}

func TestDecodeMETAR_cavok(t *testing.T) {
	t.Parallel()

	r := DecodeMETAR("LFPG 151800Z 27008KT CAVOK 21/11 Q1017")
	assert.Equal(t, "Greater than 10 km (CAVOK)", r.Visibility)
	require.NotNil(t, r.Temperature)
	assert.Equal(t, 21, *r.Temperature)
}

func TestDecodeMETAR_fractionalVisibility(t *testing.T) {
	t.Parallel()

	r := DecodeMETAR("KBOS 151754Z 04012KT 2 1/2SM -SN OVC007 M02/M04 A2971")
	assert.Equal(t, "2 1/2 statute miles", r.Visibility)
	assert.Equal(t, []string{"Light snow"}, r.Weather)
	require.NotNil(t, r.Temperature)
	assert.Equal(t, -2, *r.Temperature)
	require.NotNil(t, r.DewPoint)
	assert.Equal(t, -4, *r.DewPoint)

	r = DecodeMETAR("KMCI 151753Z 20013KT 1/2SM FG VV002 22/21 A2999")
	assert.Equal(t, "1/2 statute miles", r.Visibility)
	assert.Equal(t, []string{"fog"}, r.Weather)
	require.Len(t, r.Clouds, 1)
	assert.Equal(t, CloudLayer{Coverage: "VV", Altitude: 200}, r.Clouds[0])
}

func TestDecodeMETAR_calmAndVariableWind(t *testing.T) {
	t.Parallel()

	calm := DecodeMETAR("KATL 151752Z 00000KT 10SM FEW250 27/19 A3002")
	require.NotNil(t, calm.WindSpeed)
	assert.Zero(t, *calm.WindSpeed)
	assert.Contains(t, calm.Summary, "Calm winds")

	vrb := DecodeMETAR("KDEN 151753Z VRB04KT 10SM FEW100 28/04 A3028")
	assert.Equal(t, "VRB", vrb.WindDirection)
	assert.Contains(t, vrb.Summary, "Variable winds at 5 mph")
}

func TestDecodeMETAR_multipleCloudLayers(t *testing.T) {
	t.Parallel()

	r := DecodeMETAR("SPECI KHIO 041114Z 15009KT 10SM -RA BKN014 BKN019 OVC043 09/09 A2940")

	assert.Equal(t, "KHIO", r.Station)
	assert.Equal(t, "150", r.WindDirection)
	require.NotNil(t, r.WindSpeed)
	assert.Equal(t, 9, *r.WindSpeed)
	assert.Equal(t, "10 statute miles", r.Visibility)
	assert.Equal(t, []string{"Light rain"}, r.Weather)
	assert.Equal(t, []CloudLayer{
		{Coverage: "BKN", Altitude: 1400},
		{Coverage: "BKN", Altitude: 1900},
		{Coverage: "OVC", Altitude: 4300},
	}, r.Clouds)
	require.NotNil(t, r.Temperature)
	assert.Equal(t, 9, *r.Temperature)
	require.NotNil(t, r.DewPoint)
	assert.Equal(t, 9, *r.DewPoint)
	require.NotNil(t, r.Altimeter)
	assert.InDelta(t, 29.40, *r.Altimeter, 0.01)
}

func TestDecodeMETAR_cardinalDirectionsInSummary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		heading string
		want    string
	}{
		{"360", "north"},
		{"010", "north"},
		{"045", "northeast"},
		{"090", "east"},
		{"135", "southeast"},
		{"180", "south"},
		{"225", "southwest"},
		{"270", "west"},
		{"315", "northwest"},
	}
	for _, tt := range tests {
		r := DecodeMETAR("KLAX 151753Z " + tt.heading + "10KT 10SM CLR 18/08 A2992")
		assert.Contains(t, r.Summary, "Wind from the "+tt.want+" at", tt.heading)
	}
}

func TestDecodeMETAR_monthRollback(t *testing.T) {
	t.Parallel()

	// With the clock pinned to Aug 15, a day-31 report cannot be this
	// month's future; it must resolve to July 31.
	r := DecodeMETAR("KLAX 312315Z 26012KT 10SM FEW015 22/16 A2992")
	assert.Equal(t, time.Date(2026, 7, 31, 23, 15, 0, 0, time.UTC), r.Time)

	// A report a few hours ahead of now stays in the current month.
	r = DecodeMETAR("KLAX 151753Z 26012KT 10SM FEW015 22/16 A2992")
	assert.Equal(t, time.Date(2026, 8, 15, 17, 53, 0, 0, time.UTC), r.Time)
}
