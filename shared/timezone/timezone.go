package timezone

import (
	"fmt"
	"hotelsphere/config"
	"hotelsphere/shared/constant"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
)

var appLocation atomic.Pointer[time.Location]

func init() {
	SetLocation(Load(config.Get().App.Timezone))
}

// Load resolves an IANA zone name, falling back to UTC.
func Load(name string) *time.Location {
	if name == "" {
		log.Warn().Msg("No timezone configured, using UTC as default")

		return time.UTC
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", name).
			Msg("Failed to load timezone, falling back to UTC")

		return time.UTC
	}

	return loc
}

// SetLocation replaces the hotel timezone. A nil location means UTC.
func SetLocation(loc *time.Location) {
	if loc == nil {
		loc = time.UTC
	}

	appLocation.Store(loc)
}

func GetLocation() *time.Location {
	if loc := appLocation.Load(); loc != nil {
		return loc
	}

	return time.UTC
}

// Now returns the current time in the hotel timezone.
func Now() time.Time {
	return time.Now().In(GetLocation())
}

// Today returns the hotel's current business day.
func Today() string {
	return Now().Format(constant.DayFormat)
}

// ParseDay reads a YYYY-MM-DD day as midnight in the hotel timezone.
func ParseDay(value string) (time.Time, error) {
	day, err := time.ParseInLocation(constant.DayFormat, value, GetLocation())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day %q: %w", value, err)
	}

	return day, nil
}

// AddDays shifts a YYYY-MM-DD day by n calendar days.
func AddDays(value string, n int) (string, error) {
	day, err := ParseDay(value)
	if err != nil {
		return "", err
	}

	return day.AddDate(0, 0, n).Format(constant.DayFormat), nil
}
