package store

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const valueInputOption = "RAW"

// SheetsStore - реализация Store поверх Google Sheets API
type SheetsStore struct {
	service       *sheets.Service
	spreadsheetID string
}

// NewSheetsStore создает клиент по файлу сервисного аккаунта
func NewSheetsStore(ctx context.Context, spreadsheetID, credentialsFile string) (*SheetsStore, error) {
	opts := []option.ClientOption{option.WithScopes(sheets.SpreadsheetsScope)}
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	service, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &SheetsStore{service: service, spreadsheetID: spreadsheetID}, nil
}

func (s *SheetsStore) ReadRange(ctx context.Context, rng Range) ([][]string, error) {
	resp, err := s.service.Spreadsheets.Values.Get(s.spreadsheetID, rng.String()).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", rng, err)
	}
	return toStrings(resp.Values), nil
}

func (s *SheetsStore) BatchRead(ctx context.Context, ranges []Range) ([][][]string, error) {
	exprs := make([]string, 0, len(ranges))
	for _, rng := range ranges {
		exprs = append(exprs, rng.String())
	}

	resp, err := s.service.Spreadsheets.Values.BatchGet(s.spreadsheetID).Ranges(exprs...).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to batch read %d ranges: %w", len(ranges), err)
	}

	result := make([][][]string, 0, len(resp.ValueRanges))
	for _, vr := range resp.ValueRanges {
		result = append(result, toStrings(vr.Values))
	}
	return result, nil
}

func (s *SheetsStore) WriteRange(ctx context.Context, rng Range, values [][]string) error {
	_, err := s.service.Spreadsheets.Values.Update(s.spreadsheetID, rng.String(), &sheets.ValueRange{
		Values: toInterfaces(values),
	}).ValueInputOption(valueInputOption).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", rng, err)
	}
	return nil
}

func (s *SheetsStore) BatchWrite(ctx context.Context, updates []Update) error {
	data := make([]*sheets.ValueRange, 0, len(updates))
	for _, u := range updates {
		data = append(data, &sheets.ValueRange{
			Range:  u.Range.String(),
			Values: toInterfaces(u.Values),
		})
	}

	_, err := s.service.Spreadsheets.Values.BatchUpdate(s.spreadsheetID, &sheets.BatchUpdateValuesRequest{
		ValueInputOption: valueInputOption,
		Data:             data,
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to batch write %d ranges: %w", len(updates), err)
	}
	return nil
}

func (s *SheetsStore) CreateSheet(ctx context.Context, name string) error {
	_, err := s.service.Spreadsheets.BatchUpdate(s.spreadsheetID, &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{
			{AddSheet: &sheets.AddSheetRequest{Properties: &sheets.SheetProperties{Title: name}}},
		},
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", name, err)
	}
	return nil
}

func (s *SheetsStore) SheetExists(ctx context.Context, name string) (bool, error) {
	resp, err := s.service.Spreadsheets.Get(s.spreadsheetID).Fields("sheets.properties.title").Context(ctx).Do()
	if err != nil {
		return false, fmt.Errorf("failed to list sheets: %w", err)
	}
	for _, sheet := range resp.Sheets {
		if sheet.Properties != nil && sheet.Properties.Title == name {
			return true, nil
		}
	}
	return false, nil
}

func toStrings(values [][]interface{}) [][]string {
	result := make([][]string, 0, len(values))
	for _, row := range values {
		cells := make([]string, 0, len(row))
		for _, v := range row {
			cells = append(cells, fmt.Sprint(v))
		}
		result = append(result, cells)
	}
	return result
}

func toInterfaces(values [][]string) [][]interface{} {
	result := make([][]interface{}, 0, len(values))
	for _, row := range values {
		cells := make([]interface{}, 0, len(row))
		for _, v := range row {
			cells = append(cells, v)
		}
		result = append(result, cells)
	}
	return result
}
