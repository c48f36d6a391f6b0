package model

import (
	"catering/shared/model"
	"time"

	"github.com/jmoiron/sqlx/types"
)

const (
	TableName  = "booking_activities"
	EntityName = "booking_activity"

	FieldID         = "id"
	FieldBookingID  = "booking_id"
	FieldOccurredAt = "occurred_at"
)

// BookingActivity is one booking event as read back from the event stream.
type BookingActivity struct {
	ID                 string         `db:"id"`
	BookingID          string         `db:"booking_id"`
	Event              string         `db:"event"`
	Status             *string        `db:"status"`
	AssignedEmployeeID *string        `db:"assigned_employee_id"`
	Payload            types.JSONText `db:"payload"`
	OccurredAt         time.Time      `db:"occurred_at"`
	model.Metadata
}
