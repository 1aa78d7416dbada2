package main

import (
	"regexp"
	"time"
)

// Weather phenomena codes shared by descriptors, precipitation, obscuration
// and "other" groups. Descriptors that normally precede a precipitation group
// carry their connective ("thunderstorm with rain"); a trailing connective is
// trimmed when the descriptor stands alone.
var weatherCodes = map[string]string{
	"MI": "shallow",
	"PR": "partial",
	"BC": "patches of",
	"DR": "low drifting",
	"BL": "blowing",
	"SH": "showers of",
	"TS": "thunderstorm with",
	"FZ": "freezing",
	"DZ": "drizzle",
	"RA": "rain",
	"SN": "snow",
	"SG": "snow grains",
	"IC": "ice crystals",
	"PL": "ice pellets",
	"GR": "hail",
	"GS": "small hail",
	"UP": "unknown precipitation",
	"BR": "mist",
	"FG": "fog",
	"FU": "smoke",
	"VA": "volcanic ash",
	"DU": "widespread dust",
	"SA": "sand",
	"HZ": "haze",
	"PY": "spray",
	"PO": "dust whirls",
	"SQ": "squalls",
	"FC": "funnel cloud",
	"SS": "sandstorm",
	"DS": "duststorm",
}

// Cloud coverage codes to narrative phrases.
var cloudCoverage = map[string]string{
	"SKC": "Clear skies",
	"CLR": "Clear skies",
	"NCD": "No clouds detected",
	"NSC": "No significant clouds",
	"FEW": "Few clouds",
	"SCT": "Scattered clouds",
	"BKN": "Broken clouds",
	"OVC": "Overcast",
	"VV":  "Sky obscured",
}

// Commonly used regular expressions
var (
	timeRegex      = regexp.MustCompile(`^(\d{2})(\d{2})(\d{2})Z$`)
	windRegex      = regexp.MustCompile(`^(VRB|\d{3})(\d{2,3})(G(\d{2,3}))?KT$`)
	visRegexSM     = regexp.MustCompile(`^(\d+)SM$`)
	visRegexFrac   = regexp.MustCompile(`^(\d/\d+)SM$`)
	visRegexWhole  = regexp.MustCompile(`^\d+$`)
	cloudRegex     = regexp.MustCompile(`^(SKC|CLR|NCD|NSC|FEW|SCT|BKN|OVC|VV)(\d{3})?$`)
	tempRegex      = regexp.MustCompile(`^(M?)(\d{2})/(M?)(\d{2})$`)
	altimeterRegex = regexp.MustCompile(`^A(\d{4})$`)
	stationRegex   = regexp.MustCompile(`^[A-Za-z]{3,4}$`)
)

// CloudLayer is one sky-condition group from a report.
type CloudLayer struct {
	Coverage string `json:"coverage"`
	// Altitude is in feet. Zero means the three-digit height group was
	// omitted (e.g. a bare VV with no numeric height).
	Altitude int `json:"altitude"`
}

// windGroup holds the parsed pieces of a wind token.
type windGroup struct {
	Direction string // "VRB" or the literal 3-digit heading
	Speed     int    // knots
	Gust      int    // knots, meaningful only when HasGust
	HasGust   bool
}

// Report is a decoded METAR weather report. Pointer fields distinguish
// "absent from the report" from a legitimate zero value. A non-empty Error
// means the report is invalid and no other field is populated.
type Report struct {
	Raw           string       `json:"raw"`
	Station       string       `json:"station,omitempty"`
	Time          time.Time    `json:"time,omitzero"`
	WindDirection string       `json:"windDirection,omitempty"` // "VRB" or 3-digit heading
	WindSpeed     *int         `json:"windSpeed,omitempty"`     // knots
	WindGust      *int         `json:"windGust,omitempty"`      // knots
	Visibility    string       `json:"visibility,omitempty"`
	Weather       []string     `json:"weather,omitempty"` // decoded phrases, input order
	Clouds        []CloudLayer `json:"clouds,omitempty"`  // input order
	Temperature   *int         `json:"temperature,omitempty"` // °C
	DewPoint      *int         `json:"dewPoint,omitempty"`    // °C
	Altimeter     *float64     `json:"altimeter,omitempty"`   // inches of mercury
	Summary       string       `json:"summary,omitempty"`
	Error         string       `json:"error,omitempty"`
}
