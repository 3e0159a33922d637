package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/ajaniguide/ajani/backend/pkg/config"
	apperrors "github.com/ajaniguide/ajani/backend/pkg/errors"
)

// Client reads a tabular range from the Google Sheets values API. A fetch is
// a single attempt: a failed chat turn is terminal and the user re-sends, so
// there is no per-request retry here.
type Client struct {
	valuesURL  string
	apiKey     string
	httpClient *http.Client
}

// ValueRange is the Sheets values API response shape.
type ValueRange struct {
	Range          string  `json:"range"`
	MajorDimension string  `json:"majorDimension"`
	Values         [][]any `json:"values"`
}

// NewClient creates a new Sheets values client.
func NewClient(cfg *config.SheetsConfig) *Client {
	return &Client{
		valuesURL: cfg.ValuesURL(),
		apiKey:    cfg.APIKey,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// Values fetches the configured range as raw rows, header row included.
func (c *Client) Values(ctx context.Context) ([][]any, error) {
	reqURL := c.valuesURL
	if c.apiKey != "" {
		reqURL = fmt.Sprintf("%s?key=%s", c.valuesURL, url.QueryEscape(c.apiKey))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build sheets request", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.NewExternalError("sheets request failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.NewExternalError("failed to read sheets response", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.NewExternalError(
			fmt.Sprintf("sheets API returned status %d", resp.StatusCode),
			fmt.Errorf("%s", truncate(string(body), 200)),
		)
	}

	var vr ValueRange
	if err := json.Unmarshal(body, &vr); err != nil {
		return nil, apperrors.NewExternalError("failed to decode sheets response", err)
	}

	return vr.Values, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
