// Package timeago renders coarse "how long ago" labels for board timestamps.
//
// Labels are hours ("3h"), minutes ("12min") or the fixed SecondsAgo label.
// There is no day, week or month granularity: a week-old todo reads "168h".
package timeago

import (
	"fmt"
	"strconv"
	"time"
	"todoboard/shared/timezone"

	"github.com/rs/zerolog/log"
)

const SecondsAgo = "seconds ago"

// Since formats the age of createdAt relative to now.
func Since(createdAt, now time.Time) string {
	minutes := int64(now.Sub(createdAt) / time.Minute)
	hours := minutes / 60

	switch {
	case hours > 0:
		return strconv.FormatInt(hours, 10) + "h"
	case minutes > 0:
		return strconv.FormatInt(minutes, 10) + "min"
	default:
		return SecondsAgo
	}
}

// Parse formats an ISO-8601 timestamp relative to now.
func Parse(timestamp string, now time.Time) (string, error) {
	createdAt, err := timezone.ParseISO(timestamp)
	if err != nil {
		return "", fmt.Errorf("timeago: %w", err)
	}

	return Since(createdAt, now), nil
}

// Format parses an ISO-8601 timestamp and formats its age against the wall clock.
// It returns an empty label when the timestamp cannot be parsed.
func Format(timestamp string) string {
	label, err := Parse(timestamp, time.Now())
	if err != nil {
		log.Warn().Err(err).Str("timestamp", timestamp).Msg("failed to parse timestamp")

		return ""
	}

	return label
}
