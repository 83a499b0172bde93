package place

import (
	"fmt"
	"time"
)

// FormatCoordinates renders a coordinate pair at fixed 4-decimal precision.
func FormatCoordinates(lat, lng float64) string {
	return fmt.Sprintf("%.4f, %.4f", lat, lng)
}

// FormatCreatedAt renders the service timestamp as a local date.
// Empty or unparseable input renders empty.
func FormatCreatedAt(ts string) string {
	if ts == "" {
		return ""
	}
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return ""
	}
	return t.Local().Format("02/01/2006")
}

// DataURI wraps a base64 jpeg payload as an embeddable data URI.
func DataURI(payload string) string {
	return "data:image/jpeg;base64," + payload
}
