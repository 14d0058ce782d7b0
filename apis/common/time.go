package common

import "time"

// TimestampLayout is the wire format for response timestamps:
// UTC ISO-8601 with microsecond precision and no offset suffix.
const TimestampLayout = "2006-01-02T15:04:05.999999"

// Timestamp returns the current UTC time formatted for API responses.
func Timestamp() string {
	return time.Now().UTC().Format(TimestampLayout)
}
