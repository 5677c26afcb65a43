package timezone

import (
	"fmt"
	"time"

	// zone database for hosts and containers without one
	_ "time/tzdata"
)

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

// Load resolves the restaurant time zone.
func Load(tz string) (*time.Location, error) {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", tz, err)
	}
	return loc, nil
}

func NowIn(loc *time.Location) time.Time {
	return time.Now().In(loc)
}
