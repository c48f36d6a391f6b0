// Package timezone keeps every timestamp produced by the service in one
// configured IANA location (APP_TIMEZONE, UTC when unset).
//
//	now := timezone.Now()
//	day, err := timezone.ParseDate("2025-06-01")
//	label := timezone.Format(day, "2006-01-02")
package timezone
