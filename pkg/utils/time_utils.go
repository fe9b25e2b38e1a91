package utils

import "time"

// Timestamps are stored as unix seconds across the schema.
func NowUnixSeconds() int64 { return time.Now().Unix() }

// AddDays returns the unix-seconds timestamp `days` after `from`.
func AddDays(from int64, days int) int64 {
	return time.Unix(from, 0).AddDate(0, 0, days).Unix()
}

func FromUnixSeconds(t int64) time.Time {
	if t <= 0 {
		return time.Time{}
	}
	return time.Unix(t, 0)
}

func FormatRFC3339(t int64) string {
	if t <= 0 {
		return ""
	}
	return time.Unix(t, 0).UTC().Format(time.RFC3339)
}
