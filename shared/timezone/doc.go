// Package timezone pins the hotel's business day to the configured
// APP_TIMEZONE. Stay dates are plain YYYY-MM-DD strings, so "today" must be
// resolved in the hotel's zone rather than the host's:
//
//	today := timezone.Today()
//	checkout, err := timezone.AddDays(today, 2)
//
// An unknown or empty zone name falls back to UTC with a warning.
package timezone
