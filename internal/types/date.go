package types

import "time"

// Timestamp layouts used on the wire and on printed documents.
const (
	DateLayout      = "2006-01-02"
	TimestampLayout = "2006-01-02 15:04:05"
)

// FormatTimestamp renders a generation moment in the `YYYY-MM-DD HH:MM:SS`
// form carried by SPK batches.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}
