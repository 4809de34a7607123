package listing

import (
	"context"
	"fmt"
	"io"

	"sheet_columns/internal/providers"

	"github.com/rs/zerolog/log"
)

// Run fetches the sheet's metadata and writes the column listing to w.
// Nothing is written unless the fetch succeeds.
func Run(ctx context.Context, provider providers.Provider, sheetID string, w io.Writer) error {
	log.Debug().
		Str("backend", provider.Name()).
		Str("sheet_id", sheetID).
		Msg("Fetching sheet")

	sheet, err := provider.GetSheet(ctx, sheetID)
	if err != nil {
		return err
	}

	log.Debug().
		Str("sheet", sheet.Name).
		Int("columns", len(sheet.Columns)).
		Msg("Rendering column listing")

	return Render(w, sheet)
}

// Render writes the header line followed by one line per column, preserving
// the order the service returned. Titles, IDs, and types are emitted
// verbatim.
func Render(w io.Writer, sheet *providers.Sheet) error {
	if _, err := fmt.Fprintf(w, "Columns for sheet '%s':\n", sheet.Name); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, col := range sheet.Columns {
		if _, err := fmt.Fprintf(w, "- %s (ID: %d, Type: %s)\n", col.Title, col.ID, col.Type); err != nil {
			return fmt.Errorf("failed to write column line: %w", err)
		}
	}
	return nil
}
