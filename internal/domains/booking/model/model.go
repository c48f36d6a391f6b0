package model

import (
	"catering/shared"
	"catering/shared/model"
	"errors"
	"strings"
	"time"

	"github.com/lib/pq"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID                 = "id"
	FieldUserID             = "user_id"
	FieldAssignedEmployeeID = "assigned_employee_id"
	FieldEventDate          = "event_date"
	FieldStatus             = "status"
	FieldCreatedAt          = "created_at"
)

var ErrUnknownStatus = errors.New("unknown booking status")

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// employeeAliases is the complete vocabulary accepted from assigned employees.
var employeeAliases = map[string]Status{
	"In Progress": StatusConfirmed,
	"in_progress": StatusConfirmed,
	"Completed":   StatusCompleted,
	"completed":   StatusCompleted,
	"pending":     StatusPending,
}

func Statuses() []Status {
	return []Status{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled}
}

// ParseStatus accepts a canonical status, ignoring case and surrounding spaces.
func ParseStatus(value string) (Status, error) {
	switch Status(strings.ToLower(strings.TrimSpace(value))) {
	case StatusPending:
		return StatusPending, nil
	case StatusConfirmed:
		return StatusConfirmed, nil
	case StatusCompleted:
		return StatusCompleted, nil
	case StatusCancelled:
		return StatusCancelled, nil
	default:
		return "", ErrUnknownStatus
	}
}

// ParseEmployeeStatus maps an employee-facing label to the stored status. Matching is exact.
func ParseEmployeeStatus(alias string) (Status, error) {
	status, ok := employeeAliases[alias]
	if !ok {
		return "", ErrUnknownStatus
	}

	return status, nil
}

func (s Status) Valid() bool {
	_, err := ParseStatus(string(s))

	return err == nil
}

func (s Status) String() string {
	return string(s)
}

type Booking struct {
	ID                 string         `db:"id"`
	UserID             string         `db:"user_id"`
	AssignedEmployeeID *string        `db:"assigned_employee_id"`
	ClientName         *string        `db:"client_name"`
	ClientAddress      *string        `db:"client_address"`
	Location           *string        `db:"location"`
	EventType          *string        `db:"event_type"`
	EventDate          time.Time      `db:"event_date"`
	Guests             int            `db:"guests"`
	Menu               pq.StringArray `db:"menu"`
	Status             Status         `db:"status"`
	Notes              *string        `db:"notes"`
	model.Metadata
}

// AssignedTo compares the assignee with id as plain strings.
func (b Booking) AssignedTo(id string) bool {
	return b.AssignedEmployeeID != nil && *b.AssignedEmployeeID == id
}

// MenuIDs returns the distinct menu item ids the bookings reference.
func MenuIDs(bookings ...Booking) []string {
	ids := []string{}
	for _, booking := range bookings {
		ids = append(ids, booking.Menu...)
	}

	return shared.Unique(ids)
}

// PartyIDs returns the distinct owner and assignee ids of bookings.
func PartyIDs(bookings ...Booking) []string {
	ids := []string{}
	for _, booking := range bookings {
		ids = append(ids, booking.UserID)

		if booking.AssignedEmployeeID != nil {
			ids = append(ids, *booking.AssignedEmployeeID)
		}
	}

	return shared.Unique(ids)
}
