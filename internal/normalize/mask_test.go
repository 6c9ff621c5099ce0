package normalize

import (
	"reflect"
	"testing"
)

func TestMaskRiderID(t *testing.T) {
	cases := map[string]string{
		"BC9612345":    "BC96*****",
		"AB7889012":    "AB78*****",
		"XY1234567890": "XY12********",
		"ABC":          "***",
		"AB":           "**",
		"A":            "*",
		"ABCD":         "ABC*",
		"":             "****",
	}

	for raw, want := range cases {
		if got := MaskRiderID(raw); got != want {
			t.Errorf("MaskRiderID(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestMaskRiderIDMultibyte(t *testing.T) {
	// Rune boundaries, not byte boundaries
	if got := MaskRiderID("가나다"); got != "***" {
		t.Errorf("MaskRiderID(한글 x3) = %q, want ***", got)
	}
	if got := MaskRiderID("가나다라마"); got != "가나다라*" {
		t.Errorf("MaskRiderID(한글 x5) = %q, want 가나다라*", got)
	}
}

func TestFormatRiderName(t *testing.T) {
	if got := FormatRiderName("BC9612345"); got != "BC96***** 라이더님" {
		t.Errorf("FormatRiderName = %q", got)
	}
	if got := FormatRiderName("ABC"); got != "*** 라이더님" {
		t.Errorf("FormatRiderName short = %q", got)
	}
}

func TestMaskRiderIDs(t *testing.T) {
	got := MaskRiderIDs([]string{"BC9612345", "AB7889012"})
	want := []string{"BC96*****", "AB78*****"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MaskRiderIDs = %v, want %v", got, want)
	}

	if got := MaskRiderIDs(nil); len(got) != 0 {
		t.Errorf("MaskRiderIDs(nil) = %v, want empty", got)
	}
}
