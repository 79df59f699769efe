package models

import "time"

type Reservation struct {
	ID        int64     `json:"id"`
	GuestName string    `json:"guestName"`
	RoomName  string    `json:"roomName"`
	CheckIn   time.Time `json:"checkIn"`
	Nights    int       `json:"nights"`
	CreatedAt time.Time `json:"createdAt"`
	BookedBy  string    `json:"bookedBy"`
}

// CheckOut is the first day the room is free again. The occupied interval is
// half-open: [CheckIn, CheckOut).
func (r Reservation) CheckOut() time.Time {
	return r.CheckIn.Add(time.Duration(r.Nights) * 24 * time.Hour)
}
