// Package bcb fetches reference rates from the Banco Central do Brasil
// open data API (SGS series).
package bcb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// series 1178 is the annualized SELIC target rate, published daily.
const selicAnnualizedSeries = 1178

type Client struct {
	HttpClient *http.Client
	BaseUrl    string
}

func NewClient() *Client {
	return &Client{
		HttpClient: &http.Client{Timeout: 10 * time.Second},
		BaseUrl:    "https://api.bcb.gov.br",
	}
}

type sgsObservation struct {
	Date  string `json:"data"`
	Value string `json:"valor"`
}

// GetSelicRate returns the latest annualized SELIC rate as a decimal
// fraction (0.105 for 10.5%).
func (c *Client) GetSelicRate(ctx context.Context) (float64, error) {
	url := fmt.Sprintf("%s/dados/serie/bcdata.sgs.%d/dados/ultimos/1?formato=json", c.BaseUrl, selicAnnualizedSeries)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to construct bcb request: %w", err)
	}

	resp, err := c.HttpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch selic rate: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("bcb returned status %d", resp.StatusCode)
	}

	observations := []sgsObservation{}
	if err := json.NewDecoder(resp.Body).Decode(&observations); err != nil {
		return 0, fmt.Errorf("failed to decode bcb response: %w", err)
	}
	if len(observations) == 0 {
		return 0, fmt.Errorf("bcb returned no observations for series %d", selicAnnualizedSeries)
	}

	// values come localized with a comma decimal separator
	raw := strings.ReplaceAll(observations[len(observations)-1].Value, ",", ".")
	pct, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse selic value %q: %w", observations[len(observations)-1].Value, err)
	}

	return pct / 100, nil
}
