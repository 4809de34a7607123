package smartsheet

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"sheet_columns/internal/providers"

	"github.com/rs/zerolog/log"
)

// DefaultBaseURL is the production Smartsheet API endpoint.
const DefaultBaseURL = "https://api.smartsheet.com/2.0"

type Client struct {
	baseURL string
	token   string
	client  *http.Client
}

type columnResponse struct {
	ID      int64  `json:"id"`
	Index   int    `json:"index"`
	Title   string `json:"title"`
	Type    string `json:"type"`
	Primary bool   `json:"primary"`
}

type sheetResponse struct {
	ID      int64            `json:"id"`
	Name    string           `json:"name"`
	Columns []columnResponse `json:"columns"`
}

type errorResponse struct {
	ErrorCode int    `json:"errorCode"`
	Message   string `json:"message"`
}

func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *Client) Name() string {
	return "smartsheet"
}

// GetSheet fetches full sheet metadata, which includes the column list in
// service order.
func (c *Client) GetSheet(ctx context.Context, sheetID string) (*providers.Sheet, error) {
	url := fmt.Sprintf("%s/sheets/%s", c.baseURL, sheetID)
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	log.Debug().Str("sheet_id", sheetID).Msg("Fetching sheet metadata")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &providers.Error{
			Kind:       providers.FailureTransport,
			Underlying: fmt.Errorf("failed to make request: %w", err),
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.errorFromResponse(resp)
	}

	var sheet sheetResponse
	if err := json.NewDecoder(resp.Body).Decode(&sheet); err != nil {
		return nil, &providers.Error{
			Kind:       providers.FailureTransport,
			Underlying: fmt.Errorf("failed to decode response: %w", err),
		}
	}

	result := &providers.Sheet{
		ID:      strconv.FormatInt(sheet.ID, 10),
		Name:    sheet.Name,
		Columns: make([]providers.Column, 0, len(sheet.Columns)),
	}
	for _, col := range sheet.Columns {
		result.Columns = append(result.Columns, providers.Column{
			ID:    col.ID,
			Title: col.Title,
			Type:  col.Type,
		})
	}

	log.Debug().
		Str("sheet", sheet.Name).
		Int("columns", len(result.Columns)).
		Msg("Retrieved sheet metadata")

	return result, nil
}

// errorFromResponse maps a non-200 response to a typed failure. Smartsheet
// error bodies carry an errorCode and message; fall back to the raw body
// when the payload isn't in that shape.
func (c *Client) errorFromResponse(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)

	message := fmt.Sprintf("API request failed with status %d: %s", resp.StatusCode, string(body))
	var apiErr errorResponse
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Message != "" {
		message = fmt.Sprintf("API request failed with status %d: %s (error code %d)",
			resp.StatusCode, apiErr.Message, apiErr.ErrorCode)
	}

	kind := providers.FailureTransport
	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		kind = providers.FailureAuthorization
	case http.StatusNotFound:
		kind = providers.FailureNotFound
	}

	return &providers.Error{
		Kind:       kind,
		StatusCode: resp.StatusCode,
		Message:    message,
	}
}
