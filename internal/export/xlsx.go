package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/HelioOssola/cep-distance/internal/domain"
)

const sheetName = "Records"

// RecordsWorkbook renders stored records as an .xlsx workbook, one row per
// record in the order given (newest first when fed from ListAll).
func RecordsWorkbook(records []*domain.DistanceQuery) (*excelize.File, error) {
	f := excelize.NewFile()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("records workbook: new sheet: %w", err)
	}

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		return nil, fmt.Errorf("records workbook: stream writer: %w", err)
	}

	headers := []any{
		"ID", "Origin CEP", "Destination CEP",
		"Origin Lat", "Origin Lon",
		"Destination Lat", "Destination Lon",
		"Distance (km)", "Created At", "Notes",
	}
	if err := sw.SetRow("A1", headers); err != nil {
		return nil, fmt.Errorf("records workbook: header row: %w", err)
	}

	for i, rec := range records {
		notes := ""
		if rec.Notes != nil {
			notes = *rec.Notes
		}

		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []any{
			rec.ID, rec.OriginCEP, rec.DestinationCEP,
			rec.Origin.Lat, rec.Origin.Lon,
			rec.Destination.Lat, rec.Destination.Lon,
			rec.DistanceKm, rec.CreatedAt, notes,
		}
		if err := sw.SetRow(cell, row); err != nil {
			return nil, fmt.Errorf("records workbook: row %d: %w", i+2, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return nil, fmt.Errorf("records workbook: flush: %w", err)
	}

	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("records workbook: drop default sheet: %w", err)
	}

	return f, nil
}
