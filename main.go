package main

import (
	"context"
	"flag"
	"os"
	"strconv"

	"sheet_columns/internal/gsheets"
	"sheet_columns/internal/listing"
	"sheet_columns/internal/providers"
	"sheet_columns/internal/smartsheet"

	"github.com/rs/zerolog/log"
)

func main() {
	setupEnvironment()

	// Flag defaults come from the environment so either works; flags win.
	backend := flag.String("backend", getEnvWithDefault("SHEET_BACKEND", "smartsheet"), "spreadsheet service to query (smartsheet or google)")
	token := flag.String("token", os.Getenv("SMARTSHEET_TOKEN"), "Smartsheet API access token")
	sheetID := flag.String("sheet-id", os.Getenv("SHEET_ID"), "ID of the sheet to list")
	credentials := flag.String("credentials", getEnvWithDefault("GOOGLE_CREDENTIALS_FILE", "credentials.json"), "Google service account credentials file")
	flag.Parse()

	if *sheetID == "" {
		log.Fatal().Msg("A sheet ID is required: set SHEET_ID or pass -sheet-id")
	}

	ctx := context.Background()
	provider := initializeProvider(ctx, *backend, *token, *credentials, *sheetID)

	if err := listing.Run(ctx, provider, *sheetID, os.Stdout); err != nil {
		event := log.Fatal().Err(err).Str("sheet_id", *sheetID)
		switch {
		case providers.IsAuthorization(err):
			event.Msg("Credential rejected by the spreadsheet service")
		case providers.IsNotFound(err):
			event.Msg("Sheet not found or not visible to this credential")
		default:
			event.Msg("Failed to fetch sheet metadata")
		}
	}
}

// initializeProvider validates backend-specific configuration and returns
// the selected sheet metadata provider.
func initializeProvider(ctx context.Context, backend, token, credentialsFile, sheetID string) providers.Provider {
	log.Debug().Str("backend", backend).Msg("Initializing provider")

	switch backend {
	case "smartsheet":
		if token == "" {
			log.Fatal().Msg("An access token is required: set SMARTSHEET_TOKEN or pass -token")
		}
		if _, err := strconv.ParseInt(sheetID, 10, 64); err != nil {
			log.Fatal().Str("sheet_id", sheetID).Msg("Smartsheet sheet IDs are numeric")
		}
		return smartsheet.NewClient(smartsheet.DefaultBaseURL, token)
	case "google":
		client, err := gsheets.NewClient(ctx, credentialsFile)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create Google Sheets client")
		}
		return client
	default:
		log.Fatal().Str("backend", backend).Msg("Unknown backend: expected 'smartsheet' or 'google'")
		return nil
	}
}
