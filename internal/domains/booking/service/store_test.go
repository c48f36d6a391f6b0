package service_test

import (
	"context"
	"fmt"
	"sync"

	"catering/internal/domains/booking/model"
	gDto "catering/shared/dto"
)

// memoryStore is a booking repository that understands the equality filters the service builds.
type memoryStore struct {
	mu       sync.Mutex
	bookings []model.Booking
}

func newMemoryStore(bookings ...model.Booking) *memoryStore {
	return &memoryStore{bookings: bookings}
}

func (m *memoryStore) matches(booking model.Booking, filter gDto.FilterGroup) bool {
	_, args := filter.GetWhereClause()

	for name, value := range args {
		want := fmt.Sprint(value)

		switch name {
		case model.FieldID:
			if booking.ID != want {
				return false
			}
		case model.FieldUserID:
			if booking.UserID != want {
				return false
			}
		case model.FieldAssignedEmployeeID, "expected_assignee":
			if !booking.AssignedTo(want) {
				return false
			}
		case model.FieldStatus, "expected_status":
			if booking.Status.String() != want {
				return false
			}
		}
	}

	return true
}

func (m *memoryStore) Insert(_ context.Context, booking model.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.bookings = append(m.bookings, booking)

	return nil
}

func (m *memoryStore) Get(_ context.Context, filter gDto.FilterGroup, _ ...string) (model.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, booking := range m.bookings {
		if m.matches(booking, filter) {
			return booking, nil
		}
	}

	return model.Booking{}, nil
}

func (m *memoryStore) GetAll(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	result := []model.Booking{}
	for _, booking := range m.bookings {
		if m.matches(booking, filter) {
			result = append(result, booking)
		}
	}

	return result, nil
}

func (m *memoryStore) Count(ctx context.Context, filter gDto.FilterGroup) (int, error) {
	bookings, err := m.GetAll(ctx, gDto.QueryParams{}, filter)

	return len(bookings), err
}

func (m *memoryStore) Update(ctx context.Context, mod map[string]any, filter gDto.FilterGroup) error {
	_, err := m.UpdateCount(ctx, mod, filter)

	return err
}

func (m *memoryStore) UpdateCount(_ context.Context, mod map[string]any, filter gDto.FilterGroup) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var updated int64

	for i, booking := range m.bookings {
		if !m.matches(booking, filter) {
			continue
		}

		if status, ok := mod[model.FieldStatus]; ok {
			booking.Status = model.Status(fmt.Sprint(status))
		}

		if assignee, ok := mod[model.FieldAssignedEmployeeID]; ok {
			id := fmt.Sprint(assignee)
			booking.AssignedEmployeeID = &id
		}

		m.bookings[i] = booking
		updated++
	}

	return updated, nil
}
