package topic

import "time"

// NextDrop returns the next occurrence of hour:00 in now's location.
// If now is at or past today's drop, tomorrow's drop is returned.
func NextDrop(now time.Time, hour int) time.Time {
	y, m, d := now.Date()
	drop := time.Date(y, m, d, hour, 0, 0, 0, now.Location())
	if !now.Before(drop) {
		y, m, d = drop.AddDate(0, 0, 1).Date()
		drop = time.Date(y, m, d, hour, 0, 0, 0, now.Location())
	}
	return drop
}
