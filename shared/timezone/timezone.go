package timezone

import (
	"catering/config"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
)

var (
	appLocation *time.Location

	ErrInvalidDate = errors.New("invalid date")

	dateLayouts = []string{"2006-01-02", time.RFC3339, time.RFC3339Nano}
)

func init() {
	cfg := config.Get()

	name := cfg.App.Timezone
	if name == "" {
		log.Warn().Msg("No timezone configured, using UTC as default")

		name = "UTC"
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().Err(err).Str("timezone", name).Msg("Failed to load timezone, falling back to UTC")

		appLocation = time.UTC

		return
	}

	appLocation = loc

	log.Info().Str("timezone", name).Msg("Application timezone initialized")
}

// Now returns the current time in the application timezone
func Now() time.Time {
	return time.Now().In(GetLocation())
}

// ToAppTime converts a time to the application timezone
func ToAppTime(t time.Time) time.Time {
	return t.In(GetLocation())
}

// GetLocation returns the current application timezone location
func GetLocation() *time.Location {
	if appLocation == nil {
		return time.UTC
	}

	return appLocation
}

// Parse parses a time string in the application timezone
func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, GetLocation())
}

// ParseDate accepts a calendar date ("2006-01-02") or an RFC3339 timestamp and
// returns the calendar day it falls on in the application timezone.
func ParseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		parsed, err := Parse(layout, value)
		if err != nil {
			continue
		}

		parsed = ToAppTime(parsed)

		return time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, GetLocation()), nil
	}

	return time.Time{}, ErrInvalidDate
}

// Format formats a time in the application timezone
func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}
