package sheets

import (
	"context"
	"fmt"
	"sync"

	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"
)

var _ RowStore = (*SheetsClient)(nil)

// SheetsClient implementa RowStore sobre a Google Sheets API v4.
type SheetsClient struct {
	srv           *gsheets.Service
	spreadsheetID string

	mu       sync.RWMutex
	sheetIDs map[string]int64 // ids de aba não mudam; evita um GET por exclusão
}

// NewSheetsClient cria o cliente autenticado com a conta de serviço em credentialsFile.
func NewSheetsClient(ctx context.Context, spreadsheetID, credentialsFile string) (*SheetsClient, error) {
	srv, err := gsheets.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(gsheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("sheets: criar serviço: %w", err)
	}
	return NewSheetsClientWithService(srv, spreadsheetID), nil
}

// NewSheetsClientWithService usa um serviço já construído (endpoint de teste, outro auth).
func NewSheetsClientWithService(srv *gsheets.Service, spreadsheetID string) *SheetsClient {
	return &SheetsClient{srv: srv, spreadsheetID: spreadsheetID, sheetIDs: make(map[string]int64)}
}

// ReadRange lê valores sem formatação para que números (ids) não voltem em notação científica.
func (c *SheetsClient) ReadRange(ctx context.Context, a1 string) ([][]string, error) {
	resp, err := c.srv.Spreadsheets.Values.Get(c.spreadsheetID, a1).
		ValueRenderOption("UNFORMATTED_VALUE").
		DateTimeRenderOption("FORMATTED_STRING").
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("sheets: ler %s: %w", a1, err)
	}
	out := make([][]string, len(resp.Values))
	for i, row := range resp.Values {
		out[i] = make([]string, len(row))
		for j, v := range row {
			out[i][j] = cellString(v)
		}
	}
	return out, nil
}

func (c *SheetsClient) AppendRow(ctx context.Context, a1 string, row []any) error {
	vr := &gsheets.ValueRange{Values: [][]interface{}{row}}
	_, err := c.srv.Spreadsheets.Values.Append(c.spreadsheetID, a1, vr).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("sheets: acrescentar em %s: %w", a1, err)
	}
	return nil
}

func (c *SheetsClient) WriteRange(ctx context.Context, a1 string, rows [][]any) error {
	_, err := c.srv.Spreadsheets.Values.Update(c.spreadsheetID, a1, &gsheets.ValueRange{Values: rows}).
		ValueInputOption("RAW").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("sheets: escrever %s: %w", a1, err)
	}
	return nil
}

func (c *SheetsClient) DeleteRow(ctx context.Context, sheetID int64, rowIndex int) error {
	req := &gsheets.BatchUpdateSpreadsheetRequest{
		Requests: []*gsheets.Request{{
			DeleteDimension: &gsheets.DeleteDimensionRequest{
				Range: &gsheets.DimensionRange{
					SheetId:         sheetID,
					Dimension:       "ROWS",
					StartIndex:      int64(rowIndex),
					EndIndex:        int64(rowIndex + 1),
					ForceSendFields: []string{"SheetId", "StartIndex"},
				},
			},
		}},
	}
	if _, err := c.srv.Spreadsheets.BatchUpdate(c.spreadsheetID, req).Context(ctx).Do(); err != nil {
		return fmt.Errorf("sheets: excluir linha %d da aba %d: %w", rowIndex, sheetID, err)
	}
	return nil
}

func (c *SheetsClient) SheetID(ctx context.Context, name string) (int64, bool, error) {
	c.mu.RLock()
	id, ok := c.sheetIDs[name]
	c.mu.RUnlock()
	if ok {
		return id, true, nil
	}

	ss, err := c.srv.Spreadsheets.Get(c.spreadsheetID).Fields("sheets.properties").Context(ctx).Do()
	if err != nil {
		return 0, false, fmt.Errorf("sheets: obter abas: %w", err)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, sh := range ss.Sheets {
		if sh.Properties == nil {
			continue
		}
		c.sheetIDs[sh.Properties.Title] = sh.Properties.SheetId
	}
	id, ok = c.sheetIDs[name]
	return id, ok, nil
}
