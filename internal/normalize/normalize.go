package normalize

import (
	"regexp"
	"strings"
	"time"
)

// Status is the canonical action status a sheet status string maps into.
type Status string

const (
	StatusPending    Status = "pending"
	StatusReview     Status = "review"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
	StatusHold       Status = "hold"
)

var statusMap = map[string]Status{
	"접수완료": StatusPending,
	"검토중":  StatusReview,
	"진행중":  StatusInProgress,
	"완료":   StatusCompleted,
	"취소":   StatusCancelled,
	"보류":   StatusHold,
}

// MapStatus maps a raw sheet status string to its canonical status.
// Unknown or empty input falls back to pending; this function is total.
func MapStatus(raw string) Status {
	if status, ok := statusMap[strings.TrimSpace(raw)]; ok {
		return status
	}
	return StatusPending
}

var isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// dateLayouts are the spreadsheet date formats accepted besides strict ISO.
var dateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-1-2",
	"2006.01.02",
	"2006.1.2",
	"2006/01/02",
	"2006/1/2",
	"01/02/2006",
	"1/2/2006",
	"2006년 1월 2일",
	"Jan 2, 2006",
	time.RFC3339,
}

// ParseDate reduces a raw spreadsheet date cell to a YYYY-MM-DD string.
// A strict YYYY-MM-DD input passes through unchanged; anything else is
// tried against the accepted layouts. Empty or unparseable input yields
// nil, never an error.
func ParseDate(raw string) *string {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return nil
	}

	if isoDatePattern.MatchString(cleaned) {
		return &cleaned
	}

	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, cleaned); err == nil {
			formatted := parsed.Format("2006-01-02")
			return &formatted
		}
	}

	return nil
}

var riderIDPattern = regexp.MustCompile(`^[A-Z]{2}\d{6}$`)

// ValidateRiderID reports whether a rider identifier has the expected
// shape: two uppercase letters followed by six digits.
func ValidateRiderID(raw string) bool {
	return riderIDPattern.MatchString(raw)
}
