// Package ledger holds the in-process list of bookings.
//
// The order of the list is significant: it is the order in which the calendar resolves
// overlapping bookings, so inserts append and replacements keep their position.
package ledger

import (
	"context"
	"fmt"
	"ohanna/internal/domains/booking/model"
	"sync"
)

type Ledger struct {
	mu       sync.RWMutex
	bookings []model.Booking
	version  uint64
}

func New(bookings ...model.Booking) *Ledger {
	l := &Ledger{}
	l.Replace(bookings)

	return l
}

// Upsert replaces the booking with the same id in place, or appends it. It reports whether the
// booking was appended.
func (l *Ledger) Upsert(booking model.Booking) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.version++

	if i := l.indexOf(booking.ID); i >= 0 {
		l.bookings[i] = booking.Clone()

		return false
	}

	l.bookings = append(l.bookings, booking.Clone())

	return true
}

// Update replaces an existing booking and fails when the id is unknown.
func (l *Ledger) Update(booking model.Booking) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	i := l.indexOf(booking.ID)
	if i < 0 {
		return model.ErrBookingNotFound.WithDetail("id %s", booking.ID)
	}

	l.bookings[i] = booking.Clone()
	l.version++

	return nil
}

// RemoveByID drops the booking and fails when the id is unknown.
func (l *Ledger) RemoveByID(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	i := l.indexOf(id)
	if i < 0 {
		return model.ErrBookingNotFound.WithDetail("id %s", id)
	}

	l.bookings = append(l.bookings[:i], l.bookings[i+1:]...)
	l.version++

	return nil
}

func (l *Ledger) Get(id string) (model.Booking, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	i := l.indexOf(id)
	if i < 0 {
		return model.Booking{}, model.ErrBookingNotFound.WithDetail("id %s", id)
	}

	return l.bookings[i].Clone(), nil
}

func (l *Ledger) Exists(id string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.indexOf(id) >= 0
}

// All returns copies of every booking in ledger order.
func (l *Ledger) All() []model.Booking {
	bookings, _ := l.Snapshot()

	return bookings
}

// Snapshot returns copies of every booking together with the version they were read at.
func (l *Ledger) Snapshot() ([]model.Booking, uint64) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]model.Booking, len(l.bookings))
	for i, b := range l.bookings {
		out[i] = b.Clone()
	}

	return out, l.version
}

// Version changes on every mutation. Views derived from the ledger can be keyed by it.
func (l *Ledger) Version() uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.version
}

func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.bookings)
}

// Replace swaps the whole content, as done after loading from storage. Later duplicates of an
// id replace earlier ones.
func (l *Ledger) Replace(bookings []model.Booking) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.version++

	l.bookings = make([]model.Booking, 0, len(bookings))
	for _, b := range bookings {
		if i := l.indexOf(b.ID); i >= 0 {
			l.bookings[i] = b.Clone()

			continue
		}

		l.bookings = append(l.bookings, b.Clone())
	}
}

// Conflicts lists the bookings other than candidate holding the property on a shared date.
func (l *Ledger) Conflicts(candidate model.Booking) []model.Booking {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var out []model.Booking

	for _, b := range l.bookings {
		if b.ID == candidate.ID {
			continue
		}

		if b.Overlaps(&candidate) {
			out = append(out, b.Clone())
		}
	}

	return out
}

// indexOf must be called with the lock held.
func (l *Ledger) indexOf(id string) int {
	for i := range l.bookings {
		if l.bookings[i].ID == id {
			return i
		}
	}

	return -1
}

// Source is where a ledger is read from at startup.
type Source interface {
	Load(ctx context.Context) ([]model.Booking, error)
}

// Load builds a ledger from the stored bookings.
func Load(ctx context.Context, src Source) (*Ledger, error) {
	bookings, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}

	return New(bookings...), nil
}
