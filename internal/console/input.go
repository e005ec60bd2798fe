package console

import "time"

// inputLayouts are the time formats accepted at the prompt.
var inputLayouts = []string{
	"2006-01-02T15:04:05Z",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// normalizeTimeInput validates a user-supplied time string and normalizes
// it to full ISO 8601 with a trailing Z: a bare date becomes midnight UTC,
// a timestamp without zone gets a Z appended.
func normalizeTimeInput(input string) (string, bool) {
	var matched string
	for _, layout := range inputLayouts {
		if _, err := time.Parse(layout, input); err == nil {
			matched = layout
			break
		}
	}

	switch matched {
	case "2006-01-02":
		return input + "T00:00:00Z", true
	case "2006-01-02T15:04:05":
		return input + "Z", true
	case "2006-01-02T15:04:05Z":
		return input, true
	default:
		return "", false
	}
}
