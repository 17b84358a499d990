package utils

import "time"

// Timestamp is a Unix time in seconds as used by all Moera APIs.
type Timestamp = int64

// TimestampToString renders a Moera timestamp in the operator's local time.
func TimestampToString(ts Timestamp) string {
	return time.Unix(ts, 0).Local().Format("2006-01-02 15:04:05")
}
