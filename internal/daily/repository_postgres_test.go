package daily

import (
	"testing"

	"github.com/jackc/pgx/v5/pgtype"
)

// The offers query selects o.date::text. This pins why: a raw DATE
// column arriving in the binary result format cannot be scanned into
// the Offer's string date field, while the text cast always can.
func TestOfferDateScanFormats(t *testing.T) {
	m := pgtype.NewMap()

	var s string
	if err := m.Scan(pgtype.TextOID, pgtype.TextFormatCode, []byte("2026-09-01"), &s); err != nil {
		t.Fatalf("text-cast date failed to scan: %v", err)
	}
	if s != "2026-09-01" {
		t.Errorf("scanned %q", s)
	}

	var d string
	rawDate := []byte{0, 0, 0, 0} // binary DATE payload (days since epoch)
	if err := m.Scan(pgtype.DateOID, pgtype.BinaryFormatCode, rawDate, &d); err == nil {
		t.Error("binary DATE scanned into a string; the ::text cast would be redundant")
	}
}
