package sheets

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"marketpanel/internal"
	"marketpanel/internal/config"
)

// Connector reads the feed straight from a private Google Sheet via
// the Sheets API, for operators who never publish the sheet.
type Connector struct {
	service       *sheets.Service
	spreadsheetID string
	readRange     string
}

func NewConnector(cfg config.Config) (*Connector, error) {
	if err := cfg.Require("SHEETS_CLIENT_ID", cfg.SheetsClientID); err != nil {
		return nil, err
	}
	if err := cfg.Require("SHEETS_CLIENT_SECRET", cfg.SheetsClientSecret); err != nil {
		return nil, err
	}
	if err := cfg.Require("SHEETS_REFRESH_TOKEN", cfg.SheetsRefreshToken); err != nil {
		return nil, err
	}
	if err := cfg.Require("SHEETS_SPREADSHEET_ID", cfg.SheetsSpreadsheet); err != nil {
		return nil, err
	}

	oauthCfg := &oauth2.Config{
		ClientID:     cfg.SheetsClientID,
		ClientSecret: cfg.SheetsClientSecret,
		Endpoint:     google.Endpoint,
		RedirectURL:  cfg.SheetsRedirectURI,
		Scopes:       []string{sheets.SpreadsheetsReadonlyScope},
	}

	tokenSource := oauthCfg.TokenSource(context.Background(), &oauth2.Token{RefreshToken: cfg.SheetsRefreshToken})
	svc, err := sheets.NewService(context.Background(), option.WithTokenSource(tokenSource))
	if err != nil {
		return nil, err
	}

	return &Connector{service: svc, spreadsheetID: cfg.SheetsSpreadsheet, readRange: cfg.SheetsRange}, nil
}

func (c *Connector) Fetch(ctx context.Context) (internal.RawFeed, error) {
	resp, err := c.service.Spreadsheets.Values.Get(c.spreadsheetID, c.readRange).Context(ctx).Do()
	if err != nil {
		return internal.RawFeed{}, err
	}
	if len(resp.Values) == 0 {
		return internal.RawFeed{}, nil
	}

	feed := internal.RawFeed{Columns: toStrings(resp.Values[0])}
	for _, row := range resp.Values[1:] {
		cells := toStrings(row)
		if len(cells) == 0 {
			continue
		}
		feed.Rows = append(feed.Rows, cells)
	}
	return feed, nil
}

func toStrings(row []interface{}) []string {
	out := make([]string, 0, len(row))
	for _, cell := range row {
		out = append(out, fmt.Sprint(cell))
	}
	return out
}
