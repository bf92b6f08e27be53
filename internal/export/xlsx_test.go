package export

import (
	"testing"

	"github.com/HelioOssola/cep-distance/internal/domain"
)

func TestRecordsWorkbook(t *testing.T) {
	notes := "demo"
	records := []*domain.DistanceQuery{
		{
			ID:             2,
			OriginCEP:      "01001-000",
			DestinationCEP: "20040-020",
			Origin:         domain.Coordinates{Lat: -23.5505, Lon: -46.6333},
			Destination:    domain.Coordinates{Lat: -22.9068, Lon: -43.1729},
			DistanceKm:     357.8,
			CreatedAt:      "2026-08-31T12:00:00Z",
			Notes:          &notes,
		},
		{
			ID:             1,
			OriginCEP:      "30130-010",
			DestinationCEP: "01001-000",
			DistanceKm:     489.255,
			CreatedAt:      "2026-08-30T12:00:00Z",
		},
	}

	f, err := RecordsWorkbook(records)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		t.Fatalf("read sheet: %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("rows = %d, want header + 2 records", len(rows))
	}
	if rows[0][0] != "ID" || rows[0][7] != "Distance (km)" {
		t.Errorf("header row = %v", rows[0])
	}
	if rows[1][0] != "2" || rows[1][1] != "01001-000" {
		t.Errorf("first record row = %v", rows[1])
	}
	if rows[1][9] != "demo" {
		t.Errorf("notes cell = %q, want demo", rows[1][9])
	}
}

func TestRecordsWorkbookEmpty(t *testing.T) {
	f, err := RecordsWorkbook(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		t.Fatalf("read sheet: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("rows = %d, want header only", len(rows))
	}
}
