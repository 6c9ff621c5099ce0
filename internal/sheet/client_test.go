package sheet

import (
	"fmt"
	"strings"
	"testing"
)

func TestWorksheetRangeCoversWholeSheet(t *testing.T) {
	got := worksheetRange("1.1. 일자별 상담일지")
	if got != "'1.1. 일자별 상담일지'" {
		t.Errorf("worksheetRange = %q, want the bare quoted title", got)
	}
	// No cell bounds: a bounded range would truncate large worksheets.
	if strings.Contains(got, "!") {
		t.Errorf("range %q must not carry cell bounds", got)
	}
}

func TestWorksheetRangeEscapesQuotes(t *testing.T) {
	got := worksheetRange("rider's log")
	if got != "'rider''s log'" {
		t.Errorf("worksheetRange = %q, want embedded quotes doubled", got)
	}
}

func TestRowsHandlesLargeWorksheets(t *testing.T) {
	values := [][]interface{}{{"No", "아이디", "상담내용"}}
	for i := 1; i <= 12000; i++ {
		values = append(values, []interface{}{fmt.Sprint(i), "BC123456", "문의"})
	}

	rows, err := NewTable(values).Rows(testColumns())
	if err != nil {
		t.Fatalf("Rows: %v", err)
	}
	if len(rows) != 12000 {
		t.Fatalf("expected all 12000 rows, got %d", len(rows))
	}
	if got := rows[11999].Get("row_id"); got != "12000" {
		t.Errorf("last row id = %q, want 12000", got)
	}
}
