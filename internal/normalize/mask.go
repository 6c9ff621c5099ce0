package normalize

import "strings"

// MaskRiderID masks a rider identifier for public display, keeping at
// most the first four characters visible. Empty input masks to "****";
// identifiers of three characters or fewer are fully masked, and a
// four-character identifier still hides its last character.
func MaskRiderID(riderID string) string {
	runes := []rune(riderID)

	switch {
	case len(runes) == 0:
		return "****"
	case len(runes) <= 3:
		return strings.Repeat("*", len(runes))
	case len(runes) == 4:
		return string(runes[:3]) + "*"
	default:
		return string(runes[:4]) + strings.Repeat("*", len(runes)-4)
	}
}

// FormatRiderName renders the public display name for a rider.
func FormatRiderName(riderID string) string {
	return MaskRiderID(riderID) + " 라이더님"
}

// MaskRiderIDs masks every identifier in place order.
func MaskRiderIDs(riderIDs []string) []string {
	masked := make([]string, len(riderIDs))
	for i, id := range riderIDs {
		masked[i] = MaskRiderID(id)
	}
	return masked
}
