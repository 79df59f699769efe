package services

import (
	"errors"
	"log"
	"sync"
	"time"

	"reservation-demo/models"
)

// MaxReservations is the store capacity. Appending past it evicts the oldest
// record; insertion itself never fails on capacity.
const MaxReservations = 2000

var ErrRoomUnavailable = errors.New("room is not available for the requested dates")

// ReservationStore is the process-wide, in-memory reservation collection.
// Records keep insertion order. The availability check, the id assignment and
// the append happen under one lock, so two concurrent requests for the same
// room and overlapping dates cannot both succeed.
type ReservationStore struct {
	mu      sync.Mutex
	records []models.Reservation
	lastID  int64
}

func NewReservationStore() *ReservationStore {
	return &ReservationStore{}
}

// Create validates availability and appends a new reservation. Ids come from
// a monotonic counter, never from the slice length, so they stay unique even
// after eviction has shrunk the range below 1..N.
func (s *ReservationStore) Create(guestName, roomName string, checkIn time.Time, nights int, bookedBy string) (models.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !IsAvailable(s.records, roomName, checkIn, nights) {
		return models.Reservation{}, ErrRoomUnavailable
	}

	s.lastID++
	r := models.Reservation{
		ID:        s.lastID,
		GuestName: guestName,
		RoomName:  roomName,
		CheckIn:   checkIn,
		Nights:    nights,
		CreatedAt: time.Now(),
		BookedBy:  bookedBy,
	}
	s.records = append(s.records, r)

	if len(s.records) > MaxReservations {
		evicted := s.records[0]
		s.records = s.records[1:]
		log.Printf("⚠️  Reservation store full: evicted oldest record id=%d (room %s)", evicted.ID, evicted.RoomName)
	}

	return r, nil
}

// All returns the reservations in insertion order.
func (s *ReservationStore) All() []models.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Reservation, len(s.records))
	copy(out, s.records)
	return out
}

// ByUser returns the reservations created by the given identity, in insertion
// order.
func (s *ReservationStore) ByUser(identity string) []models.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Reservation
	for _, r := range s.records {
		if r.BookedBy == identity {
			out = append(out, r)
		}
	}
	return out
}

func (s *ReservationStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}
