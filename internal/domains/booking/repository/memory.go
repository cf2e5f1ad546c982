package repository

import (
	"context"
	"ohanna/internal/domains/booking/model"
	"sync"
)

type memoryImpl struct {
	mu       sync.Mutex
	bookings []model.Booking
}

// NewMemory keeps the ledger for the lifetime of the process only.
func NewMemory(seed ...model.Booking) Booking {
	return &memoryImpl{bookings: cloneAll(seed)}
}

func (m *memoryImpl) Load(_ context.Context) ([]model.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return cloneAll(m.bookings), nil
}

func (m *memoryImpl) Save(_ context.Context, bookings []model.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.bookings = cloneAll(bookings)

	return nil
}

func cloneAll(bookings []model.Booking) []model.Booking {
	out := make([]model.Booking, len(bookings))
	for i, b := range bookings {
		out[i] = b.Clone()
	}

	return out
}
