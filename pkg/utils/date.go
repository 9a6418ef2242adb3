package utils

import (
	"time"
)

// FormatTimestamp renders a unix-millisecond timestamp for display on the
// rendered pages.
func FormatTimestamp(millis int64) string {
	t := time.UnixMilli(millis).UTC()
	return t.Format("02 January 2006, 15:04 UTC")
}
