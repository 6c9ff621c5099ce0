package sheet

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// ErrWorksheetNotFound is returned when a spreadsheet has no worksheet
// with the requested title. Callers treat this as fatal: proceeding with
// a wrong worksheet would sync the wrong data.
var ErrWorksheetNotFound = errors.New("worksheet not found")

type Client struct {
	service *sheets.Service
}

// NewClient builds a read-only Sheets client authenticated as a service
// account. The private key may contain literal "\n" escapes as stored in
// env files; the caller is expected to have normalized those.
func NewClient(ctx context.Context, clientEmail, privateKey string) (*Client, error) {
	conf := &jwt.Config{
		Email:      clientEmail,
		PrivateKey: []byte(privateKey),
		Scopes:     []string{sheets.SpreadsheetsScope},
		TokenURL:   google.JWTTokenURL,
	}

	service, err := sheets.NewService(ctx, option.WithTokenSource(conf.TokenSource(ctx)))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &Client{service: service}, nil
}

// WorksheetTitles lists the worksheet titles of a spreadsheet.
func (c *Client) WorksheetTitles(ctx context.Context, spreadsheetID string) ([]string, error) {
	meta, err := c.service.Spreadsheets.Get(spreadsheetID).
		Fields("properties.title", "sheets.properties.title").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to load spreadsheet metadata: %w", err)
	}

	titles := make([]string, 0, len(meta.Sheets))
	for _, s := range meta.Sheets {
		if s.Properties != nil {
			titles = append(titles, s.Properties.Title)
		}
	}
	return titles, nil
}

// ReadTable resolves a worksheet by exact title and reads its full
// contents, header row included. Row order is the worksheet's physical
// order.
func (c *Client) ReadTable(ctx context.Context, spreadsheetID, worksheetTitle string) (*Table, error) {
	titles, err := c.WorksheetTitles(ctx, spreadsheetID)
	if err != nil {
		return nil, err
	}

	found := false
	for _, title := range titles {
		if title == worksheetTitle {
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("worksheet %q: %w", worksheetTitle, ErrWorksheetNotFound)
	}

	resp, err := c.service.Spreadsheets.Values.Get(spreadsheetID, worksheetRange(worksheetTitle)).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read worksheet %q: %w", worksheetTitle, err)
	}

	return NewTable(resp.Values), nil
}

// worksheetRange addresses a whole worksheet in A1 notation: the bare
// quoted title, no cell bounds. A bounded range would cap the number of
// rows returned, and the mirror flow deletes store records missing from
// the snapshot, so a cap is not an option. Embedded quotes double per
// A1 quoting rules.
func worksheetRange(title string) string {
	return "'" + strings.ReplaceAll(title, "'", "''") + "'"
}
