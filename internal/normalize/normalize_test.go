package normalize

import "testing"

func TestMapStatusKnownValues(t *testing.T) {
	cases := map[string]Status{
		"접수완료": StatusPending,
		"검토중":  StatusReview,
		"진행중":  StatusInProgress,
		"완료":   StatusCompleted,
		"취소":   StatusCancelled,
		"보류":   StatusHold,
	}

	for raw, want := range cases {
		if got := MapStatus(raw); got != want {
			t.Errorf("MapStatus(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestMapStatusIsTotal(t *testing.T) {
	for _, raw := range []string{"", "unknown", "완료됨", "  ", "pending"} {
		if got := MapStatus(raw); got != StatusPending {
			t.Errorf("MapStatus(%q) = %q, want fallback %q", raw, got, StatusPending)
		}
	}
}

func TestMapStatusTrimsWhitespace(t *testing.T) {
	if got := MapStatus(" 완료 "); got != StatusCompleted {
		t.Errorf("MapStatus(\" 완료 \") = %q, want %q", got, StatusCompleted)
	}
}

func TestParseDateISOPassthrough(t *testing.T) {
	got := ParseDate("2024-01-15")
	if got == nil || *got != "2024-01-15" {
		t.Errorf("ParseDate(\"2024-01-15\") = %v, want 2024-01-15", got)
	}
}

func TestParseDateOtherLayouts(t *testing.T) {
	cases := map[string]string{
		"2024.01.15":          "2024-01-15",
		"2024/1/5":            "2024-01-05",
		"2024-1-5":            "2024-01-05",
		"2024년 1월 15일":        "2024-01-15",
		"2024-01-15 09:30:00": "2024-01-15",
		"Jan 15, 2024":        "2024-01-15",
	}

	for raw, want := range cases {
		got := ParseDate(raw)
		if got == nil || *got != want {
			t.Errorf("ParseDate(%q) = %v, want %q", raw, got, want)
		}
	}
}

func TestParseDateInvalid(t *testing.T) {
	for _, raw := range []string{"", "   ", "not a date", "2024-13"} {
		if got := ParseDate(raw); got != nil {
			t.Errorf("ParseDate(%q) = %q, want nil", raw, *got)
		}
	}
}

func TestValidateRiderID(t *testing.T) {
	valid := []string{"BC123456", "AB000000", "XY999999"}
	for _, id := range valid {
		if !ValidateRiderID(id) {
			t.Errorf("ValidateRiderID(%q) = false, want true", id)
		}
	}

	invalid := []string{"", "bc123456", "BC12345", "BC1234567", "B123456", "BCD12345", "BC12345A"}
	for _, id := range invalid {
		if ValidateRiderID(id) {
			t.Errorf("ValidateRiderID(%q) = true, want false", id)
		}
	}
}
