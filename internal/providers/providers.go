package providers

import "context"

// Column is a single column definition within a sheet.
type Column struct {
	ID    int64
	Title string
	Type  string
}

// Sheet is the metadata for one remote sheet: its display name and its
// columns in the order the service returned them.
type Sheet struct {
	ID      string
	Name    string
	Columns []Column
}

// Provider fetches sheet metadata from one spreadsheet service.
type Provider interface {
	// Name identifies the backend in log output.
	Name() string

	// GetSheet fetches the sheet's name and ordered column list. Failures
	// are reported as *Error so callers can discriminate the cause.
	GetSheet(ctx context.Context, sheetID string) (*Sheet, error)
}
