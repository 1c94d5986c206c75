// Package brapi wraps the brapi.dev API for B3 corporate action data.
package brapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

type Client struct {
	HttpClient *http.Client
	BaseUrl    string
	Token      string
}

func NewClient(token string) *Client {
	return &Client{
		HttpClient: &http.Client{Timeout: 15 * time.Second},
		BaseUrl:    "https://brapi.dev",
		Token:      token,
	}
}

type CashDividend struct {
	AssetIssued   string  `json:"assetIssued"`
	PaymentDate   string  `json:"paymentDate"`
	Rate          float64 `json:"rate"`
	RelatedTo     string  `json:"relatedTo"`
	ApprovedOn    string  `json:"approvedOn"`
	IsinCode      string  `json:"isinCode"`
	Label         string  `json:"label"`
	LastDatePrior string  `json:"lastDatePrior"`
}

type dividendsData struct {
	CashDividends []CashDividend `json:"cashDividends"`
}

type quoteResult struct {
	Symbol        string         `json:"symbol"`
	DividendsData *dividendsData `json:"dividendsData"`
}

type quoteResponse struct {
	Results []quoteResult `json:"results"`
	Error   *string       `json:"error"`
}

// DividendEvent is the normalized shape callers consume. ExDate is the
// first day the stock trades without the right to the payment.
type DividendEvent struct {
	Ticker         string
	ExDate         time.Time
	AmountPerShare float64
	Label          string
}

// GetDividendHistory fetches the cash dividend history for one ticker.
// JCP and regular dividends both come back; the caller decides whether
// to distinguish them.
func (c *Client) GetDividendHistory(ctx context.Context, ticker string) ([]DividendEvent, error) {
	endpoint := fmt.Sprintf("%s/api/quote/%s?dividends=true&token=%s",
		c.BaseUrl, url.PathEscape(ticker), url.QueryEscape(c.Token))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to construct brapi request: %w", err)
	}

	resp, err := c.HttpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch dividends for %s: %w", ticker, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("brapi returned status %d for %s", resp.StatusCode, ticker)
	}

	body := quoteResponse{}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode brapi response for %s: %w", ticker, err)
	}
	if body.Error != nil {
		return nil, fmt.Errorf("brapi error for %s: %s", ticker, *body.Error)
	}
	if len(body.Results) == 0 || body.Results[0].DividendsData == nil {
		return []DividendEvent{}, nil
	}

	out := []DividendEvent{}
	for _, d := range body.Results[0].DividendsData.CashDividends {
		// lastDatePrior is the last cum-rights day; ex-date is the
		// following calendar day
		cum, err := parseBrapiDate(d.LastDatePrior)
		if err != nil {
			continue
		}
		out = append(out, DividendEvent{
			Ticker:         ticker,
			ExDate:         cum.AddDate(0, 0, 1),
			AmountPerShare: d.Rate,
			Label:          d.Label,
		})
	}

	return out, nil
}

func parseBrapiDate(raw string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC().Truncate(24 * time.Hour), nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable brapi date %q", raw)
}
