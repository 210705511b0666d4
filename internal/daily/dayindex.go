package daily

import (
	"fmt"
	"time"
)

// ReferenceTimezone fixes the day boundary for every player. A named civil
// zone, not a UTC offset: the boundary must track daylight-saving shifts.
const ReferenceTimezone = "America/New_York"

// gameEpoch is the civil date of puzzle zero, UTC-normalized.
var gameEpoch = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// DayIndex returns the number of whole calendar days between the reference-
// timezone civil date of now and the game epoch. Negative for dates before
// the epoch. The civil date is re-anchored to UTC midnight before subtracting
// so that DST transitions cannot skew the count.
func DayIndex(now time.Time) (int, error) {
	loc, err := time.LoadLocation(ReferenceTimezone)
	if err != nil {
		return 0, fmt.Errorf("load reference timezone: %w", err)
	}

	local := now.In(loc)
	civil := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
	return int(civil.Sub(gameEpoch).Hours() / 24), nil
}
