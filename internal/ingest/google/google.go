// Package google pulls the four-sheet workbook from a Google Spreadsheet.
package google

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"
	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"

	"mizaniya/internal/core"
	"mizaniya/internal/ingest"
)

// Client reads the school workbook through the Sheets API.
type Client struct {
	svc           *gsheet.Service
	spreadsheetID string
}

var _ ingest.Source = (*Client)(nil)

// New creates a Sheets-backed source for the given spreadsheet. Credentials
// come from the environment: GOOGLE_SERVICE_ACCOUNT_JSON,
// GOOGLE_SERVICE_ACCOUNT_FILE, or GOOGLE_APPLICATION_CREDENTIALS.
func New(ctx context.Context, spreadsheetID string) (*Client, error) {
	if strings.TrimSpace(spreadsheetID) == "" {
		return nil, errors.New("missing spreadsheet id")
	}
	svc, err := newSheetsService(ctx)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}
	return &Client{svc: svc, spreadsheetID: spreadsheetID}, nil
}

func newSheetsService(ctx context.Context) (*gsheet.Service, error) {
	serviceAccountJSON := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON"))
	serviceAccountFile := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_FILE"))
	if serviceAccountJSON == "" && serviceAccountFile == "" {
		serviceAccountFile = strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))
	}

	var credentialsJSON []byte
	switch {
	case serviceAccountJSON != "":
		credentialsJSON = []byte(serviceAccountJSON)
	case serviceAccountFile != "":
		var err error
		credentialsJSON, err = os.ReadFile(serviceAccountFile)
		if err != nil {
			return nil, fmt.Errorf("read service account file: %w", err)
		}
	default:
		return nil, errors.New("missing service account credentials (set GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE, or GOOGLE_APPLICATION_CREDENTIALS)")
	}

	svc, err := gsheet.NewService(ctx,
		goption.WithCredentialsJSON(credentialsJSON),
		goption.WithScopes(gsheet.SpreadsheetsReadonlyScope))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return svc, nil
}

// Fetch reads the four sheets concurrently and maps them to a Dataset.
func (c *Client) Fetch(ctx context.Context) (core.Dataset, error) {
	var wb ingest.Workbook

	g, gctx := errgroup.WithContext(ctx)
	read := func(sheet string, dst *[]ingest.Row) func() error {
		return func() error {
			rows, err := c.readSheet(gctx, sheet)
			if err != nil {
				return fmt.Errorf("read sheet %s: %w", sheet, err)
			}
			*dst = rows
			return nil
		}
	}
	g.Go(read(ingest.SheetStudents, &wb.Students))
	g.Go(read(ingest.SheetSalaries, &wb.Salaries))
	g.Go(read(ingest.SheetDonors, &wb.Donors))
	g.Go(read(ingest.SheetExpenses, &wb.Expenses))
	if err := g.Wait(); err != nil {
		return core.Dataset{}, err
	}

	return ingest.MapDataset(wb), nil
}

func (c *Client) readSheet(ctx context.Context, name string) ([]ingest.Row, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, name).
		ValueRenderOption("UNFORMATTED_VALUE").
		Context(ctx).
		Do()
	if err != nil {
		return nil, err
	}
	return rowsFromValues(resp.Values), nil
}
