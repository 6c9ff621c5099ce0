package sheet

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
)

// ColumnMap maps logical field names to the exact header text of the
// worksheet column that carries them.
type ColumnMap map[string]string

// Table holds one worksheet's raw contents: the header row plus every
// data row in physical order.
type Table struct {
	Header []string
	Data   [][]interface{}
}

// NewTable splits raw cell values into header and data rows. A nil or
// empty value set produces an empty table.
func NewTable(values [][]interface{}) *Table {
	table := &Table{}
	if len(values) == 0 {
		return table
	}

	table.Header = make([]string, len(values[0]))
	for i, cell := range values[0] {
		table.Header[i] = strings.TrimSpace(cellString(cell))
	}
	table.Data = values[1:]
	return table
}

// Row is one worksheet data row with its fields resolved by header name.
// Number is the 1-based physical row number in the worksheet.
type Row struct {
	Number int
	fields map[string]string
}

// Get returns the value of a logical field; a missing cell reads as "".
func (r Row) Get(field string) string {
	return r.fields[field]
}

// Rows maps every data row through the column map. It fails fast when
// any expected header is absent, listing all missing headers at once.
// Rows whose mapped fields are all empty are dropped.
func (t *Table) Rows(columns ColumnMap) ([]Row, error) {
	index, missing := t.headerIndex(columns)
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing expected headers: %s", strings.Join(missing, ", "))
	}

	var rows []Row
	for i, raw := range t.Data {
		row := Row{
			Number: i + 2, // data starts on worksheet row 2
			fields: make(map[string]string, len(columns)),
		}

		empty := true
		for field, col := range index {
			value := ""
			if col < len(raw) {
				value = strings.TrimSpace(cellString(raw[col]))
			}
			row.fields[field] = value
			if value != "" {
				empty = false
			}
		}

		if empty {
			log.Debug().Int("row", row.Number).Msg("Skipping blank row")
			continue
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// headerIndex resolves each logical field to its column position, and
// collects the headers the worksheet does not carry.
func (t *Table) headerIndex(columns ColumnMap) (map[string]int, []string) {
	position := make(map[string]int, len(t.Header))
	for i, header := range t.Header {
		if _, seen := position[header]; !seen {
			position[header] = i
		}
	}

	index := make(map[string]int, len(columns))
	var missing []string
	for field, header := range columns {
		col, ok := position[header]
		if !ok {
			missing = append(missing, header)
			continue
		}
		index[field] = col
	}
	sort.Strings(missing)
	return index, missing
}

func cellString(cell interface{}) string {
	if cell == nil {
		return ""
	}
	return fmt.Sprintf("%v", cell)
}
