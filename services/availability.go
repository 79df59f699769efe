package services

import (
	"time"

	"reservation-demo/models"
)

// intervalsOverlap reports whether two half-open stay intervals collide.
// Touching endpoints do not overlap: a checkout day may be someone else's
// check-in day.
func intervalsOverlap(aStart time.Time, aNights int, bStart time.Time, bNights int) bool {
	aEnd := aStart.Add(time.Duration(aNights) * 24 * time.Hour)
	bEnd := bStart.Add(time.Duration(bNights) * 24 * time.Hour)
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// IsAvailable reports whether the proposed stay conflicts with any existing
// reservation for the same room. Rooms are matched by exact name. Pure: the
// caller supplies the records to check against.
func IsAvailable(existing []models.Reservation, roomName string, checkIn time.Time, nights int) bool {
	for _, r := range existing {
		if r.RoomName != roomName {
			continue
		}
		if intervalsOverlap(checkIn, nights, r.CheckIn, r.Nights) {
			return false
		}
	}
	return true
}
