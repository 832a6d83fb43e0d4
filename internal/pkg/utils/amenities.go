package utils

import "strings"

// AmenitiesToString normalizes an amenities list to the comma-separated form
// stored on the turf record.
func AmenitiesToString(items []string) string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		it = strings.TrimSpace(it)
		if it != "" {
			out = append(out, it)
		}
	}
	return strings.Join(out, ",")
}

// StringToAmenities splits the stored comma-separated amenities back into a
// list, dropping empty entries.
func StringToAmenities(s string) []string {
	if strings.TrimSpace(s) == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
