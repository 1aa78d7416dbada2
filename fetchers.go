package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const metarURLTemplate = "https://aviationweather.gov/api/data/metar?ids=%s"

var fetchClient = &http.Client{Timeout: 10 * time.Second}

// fetchData fetches data from a URL for a given station code
func fetchData(ctx context.Context, urlTemplate string, stationCode string, dataType string) (string, error) {
	url := fmt.Sprintf(urlTemplate, stationCode)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("error building %s request: %w", dataType, err)
	}

	resp, err := fetchClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("error fetching %s: %w", dataType, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("error reading response: %w", err)
	}

	data := strings.TrimSpace(string(body))
	if data == "" {
		return "", fmt.Errorf("no %s data found for station %s", dataType, stationCode)
	}

	return data, nil
}

// FetchMETAR fetches the raw METAR for a given station code
func FetchMETAR(stationCode string) (string, error) {
	return FetchMETARContext(context.Background(), stationCode)
}

// FetchMETARContext is FetchMETAR with caller-controlled cancellation; the
// HTTP server passes the request context through here.
func FetchMETARContext(ctx context.Context, stationCode string) (string, error) {
	return fetchData(ctx, metarURLTemplate, stationCode, "METAR")
}
