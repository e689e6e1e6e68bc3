package models

import (
	"time"
)

// Now returns the current time in UTC
func Now() time.Time {
	return time.Now().UTC()
}

// NowMillis returns the current time in milliseconds since the Unix epoch
func NowMillis() int64 {
	return Now().UnixMilli()
}
