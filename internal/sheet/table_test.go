package sheet

import (
	"strings"
	"testing"
)

func testColumns() ColumnMap {
	return ColumnMap{
		"row_id":   "No",
		"rider_id": "아이디",
		"content":  "상담내용",
	}
}

func testTable() *Table {
	return NewTable([][]interface{}{
		{"No", "아이디", "상담내용"},
		{"1", "BC123456", "휴게실 문의"},
		{"2", "AB654321", "정수기 요청"},
	})
}

func TestNewTableEmpty(t *testing.T) {
	table := NewTable(nil)
	if len(table.Header) != 0 || len(table.Data) != 0 {
		t.Errorf("empty input should produce empty table, got %+v", table)
	}

	rows, err := table.Rows(ColumnMap{})
	if err != nil {
		t.Fatalf("Rows on empty table with empty map: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("expected no rows, got %d", len(rows))
	}
}

func TestRowsMapsByHeader(t *testing.T) {
	rows, err := testTable().Rows(testColumns())
	if err != nil {
		t.Fatalf("Rows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	if rows[0].Number != 2 {
		t.Errorf("first data row should be worksheet row 2, got %d", rows[0].Number)
	}
	if got := rows[0].Get("rider_id"); got != "BC123456" {
		t.Errorf("rider_id = %q, want BC123456", got)
	}
	if got := rows[1].Get("content"); got != "정수기 요청" {
		t.Errorf("content = %q, want 정수기 요청", got)
	}
}

func TestRowsPreservesPhysicalOrder(t *testing.T) {
	rows, err := testTable().Rows(testColumns())
	if err != nil {
		t.Fatalf("Rows: %v", err)
	}
	if rows[0].Get("row_id") != "1" || rows[1].Get("row_id") != "2" {
		t.Errorf("rows out of order: %q, %q", rows[0].Get("row_id"), rows[1].Get("row_id"))
	}
}

func TestRowsMissingCellReadsEmpty(t *testing.T) {
	table := NewTable([][]interface{}{
		{"No", "아이디", "상담내용"},
		{"1"}, // short row
	})

	rows, err := table.Rows(testColumns())
	if err != nil {
		t.Fatalf("Rows: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if got := rows[0].Get("rider_id"); got != "" {
		t.Errorf("missing cell should read empty, got %q", got)
	}
}

func TestRowsDropsBlankRows(t *testing.T) {
	table := NewTable([][]interface{}{
		{"No", "아이디", "상담내용"},
		{"", "", ""},
		{nil, nil, nil},
		{"3", "XY111222", "문의"},
	})

	rows, err := table.Rows(testColumns())
	if err != nil {
		t.Fatalf("Rows: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row after dropping blanks, got %d", len(rows))
	}
	if rows[0].Number != 5 {
		t.Errorf("kept row should be worksheet row 5, got %d", rows[0].Number)
	}
}

func TestRowsFailsFastOnMissingHeaders(t *testing.T) {
	table := NewTable([][]interface{}{
		{"No"},
		{"1"},
	})

	_, err := table.Rows(testColumns())
	if err == nil {
		t.Fatal("expected error for missing headers")
	}
	// Every missing header is reported, not just the first
	if !strings.Contains(err.Error(), "아이디") || !strings.Contains(err.Error(), "상담내용") {
		t.Errorf("error should list all missing headers, got %q", err.Error())
	}
}

func TestRowsTrimsWhitespaceAndStringifiesNumbers(t *testing.T) {
	table := NewTable([][]interface{}{
		{" No ", "아이디", "상담내용"},
		{42, "  BC123456  ", "문의"},
	})

	rows, err := table.Rows(testColumns())
	if err != nil {
		t.Fatalf("Rows: %v", err)
	}
	if got := rows[0].Get("row_id"); got != "42" {
		t.Errorf("numeric cell should stringify, got %q", got)
	}
	if got := rows[0].Get("rider_id"); got != "BC123456" {
		t.Errorf("cell should be trimmed, got %q", got)
	}
}
