package voc

import (
	"github.com/rs/zerolog/log"

	"rider_voc_sync/internal/normalize"
)

// RejectMalformedRiderIDs is the strict admission filter for the case
// flow: rows carrying a rider ID that fails validation are dropped with
// a warning. Rows without any rider ID are left alone; the
// record-validity rule already handled those. The rejected count feeds
// the sync summary.
func RejectMalformedRiderIDs(cases []Case) ([]Case, int) {
	kept := cases[:0]
	rejected := 0
	for _, c := range cases {
		if c.RiderID != "" && !normalize.ValidateRiderID(c.RiderID) {
			log.Warn().
				Str("sheet_row_id", c.SheetRowID).
				Str("rider_id", c.RiderID).
				Msg("Rejected row with malformed rider ID")
			rejected++
			continue
		}
		kept = append(kept, c)
	}
	return kept, rejected
}

// AdmitSuggestions enforces rider ID validation on every mirror row: a
// row either carries a valid rider ID or stays out of the mirror
// entirely.
func AdmitSuggestions(suggestions []Suggestion) ([]Suggestion, int) {
	kept := suggestions[:0]
	rejected := 0
	for _, sg := range suggestions {
		if !normalize.ValidateRiderID(sg.RiderID) {
			log.Warn().
				Int("row", sg.RowNumber).
				Str("rider_id", sg.RiderID).
				Msg("Rejected row with invalid rider ID")
			rejected++
			continue
		}
		kept = append(kept, sg)
	}
	return kept, rejected
}
