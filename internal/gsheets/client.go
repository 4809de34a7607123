package gsheets

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"sheet_columns/internal/providers"

	"github.com/rs/zerolog/log"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

type Client struct {
	service *sheets.Service
}

func NewClient(ctx context.Context, credentialsFile string) (*Client, error) {
	service, err := sheets.NewService(ctx, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &Client{
		service: service,
	}, nil
}

func (c *Client) Name() string {
	return "google"
}

// GetSheet fetches spreadsheet metadata and derives the column list from the
// header row of the first sheet. Google Sheets declares no column types, so
// each column's type tag comes from the first data cell beneath its header,
// and its ID is the 1-based column number.
func (c *Client) GetSheet(ctx context.Context, spreadsheetID string) (*providers.Sheet, error) {
	log.Debug().Str("spreadsheet_id", spreadsheetID).Msg("Fetching spreadsheet metadata")

	spreadsheet, err := c.service.Spreadsheets.Get(spreadsheetID).
		Ranges("1:2").
		IncludeGridData(true).
		Context(ctx).
		Do()
	if err != nil {
		return nil, wrapAPIError(err)
	}

	result := &providers.Sheet{
		ID:   spreadsheetID,
		Name: spreadsheet.Properties.Title,
	}

	header, first := headerRows(spreadsheet)
	for i, cell := range header {
		if cell == nil || cell.FormattedValue == "" {
			// Columns are the contiguous run of named header cells.
			break
		}
		var sample *sheets.CellData
		if i < len(first) {
			sample = first[i]
		}
		result.Columns = append(result.Columns, providers.Column{
			ID:    int64(i + 1),
			Title: cell.FormattedValue,
			Type:  columnType(cell, sample),
		})
	}

	log.Debug().
		Str("sheet", result.Name).
		Int("columns", len(result.Columns)).
		Msg("Retrieved spreadsheet metadata")

	return result, nil
}

// headerRows returns the first two rows of the first sheet's grid, either of
// which may be absent on an empty sheet.
func headerRows(spreadsheet *sheets.Spreadsheet) (header, first []*sheets.CellData) {
	if len(spreadsheet.Sheets) == 0 || len(spreadsheet.Sheets[0].Data) == 0 {
		return nil, nil
	}
	grid := spreadsheet.Sheets[0].Data[0]
	if len(grid.RowData) > 0 {
		header = grid.RowData[0].Values
	}
	if len(grid.RowData) > 1 {
		first = grid.RowData[1].Values
	}
	return header, first
}

func columnType(header, sample *sheets.CellData) string {
	cell := sample
	if cell == nil || cell.EffectiveValue == nil {
		cell = header
	}
	if cell == nil || cell.EffectiveValue == nil {
		return "TEXT_NUMBER"
	}
	if cell.EffectiveValue.BoolValue != nil {
		return "CHECKBOX"
	}
	if cell.EffectiveFormat != nil && cell.EffectiveFormat.NumberFormat != nil {
		switch cell.EffectiveFormat.NumberFormat.Type {
		case "DATE":
			return "DATE"
		case "DATE_TIME":
			return "DATETIME"
		}
	}
	return "TEXT_NUMBER"
}

func wrapAPIError(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		kind := providers.FailureTransport
		switch apiErr.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			kind = providers.FailureAuthorization
		case http.StatusNotFound:
			kind = providers.FailureNotFound
		}
		return &providers.Error{
			Kind:       kind,
			StatusCode: apiErr.Code,
			Message:    fmt.Sprintf("API request failed with status %d: %s", apiErr.Code, apiErr.Message),
			Underlying: err,
		}
	}

	return &providers.Error{
		Kind:       providers.FailureTransport,
		Underlying: fmt.Errorf("failed to fetch spreadsheet: %w", err),
	}
}
