// Package feedback appends user feedback rows to an external spreadsheet.
// The sink is a narrow capability; nothing in the answer flow depends on it.
package feedback

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/healthsift/healthsift/internal/model"
)

// Sink appends one row of columns to a tabular store.
type Sink interface {
	AppendRow(ctx context.Context, columns []string) error
}

// SheetSink implements Sink against a Google-Sheets-style values:append
// endpoint.
type SheetSink struct {
	httpClient    *http.Client
	baseURL       string
	spreadsheetID string
	sheetRange    string
	apiKey        string
}

// NewSheetSink creates a sheet sink from configuration.
func NewSheetSink(cfg model.FeedbackConfig) *SheetSink {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &SheetSink{
		httpClient:    &http.Client{Timeout: timeout},
		baseURL:       strings.TrimSuffix(cfg.BaseURL, "/"),
		spreadsheetID: cfg.SpreadsheetID,
		sheetRange:    cfg.SheetRange,
		apiKey:        cfg.APIKey,
	}
}

type appendRequest struct {
	Values [][]string `json:"values"`
}

// AppendRow appends one row to the configured sheet range. Unlike search and
// completion failures, an append failure is returned to the caller: feedback
// submission is an explicit user action and deserves a real error.
func (s *SheetSink) AppendRow(ctx context.Context, columns []string) error {
	body, err := json.Marshal(appendRequest{Values: [][]string{columns}})
	if err != nil {
		return fmt.Errorf("marshal row: %w", err)
	}

	endpoint := fmt.Sprintf("%s/%s/values/%s:append?valueInputOption=RAW&key=%s",
		s.baseURL, s.spreadsheetID, url.PathEscape(s.sheetRange), url.QueryEscape(s.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("append row: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("sheet API returned HTTP %d: %s", resp.StatusCode, string(respBody))
	}

	return nil
}
