package dto

import (
	"catering/internal/domains/activity/model"
	"catering/internal/domains/notification"
	"catering/shared/constant"
	gModel "catering/shared/model"
	"catering/shared/timezone"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx/types"
)

const actorStream = "stream"

var ErrMissingBooking = errors.New("activity payload has no booking id")

// bookingRef covers both BOOKING_REQUESTED and BOOKING_UPDATED payloads.
// The assignee is an id string in updates and a user object in requests.
type bookingRef struct {
	ID               string          `json:"id"`
	Status           string          `json:"status"`
	AssignedEmployee json.RawMessage `json:"assignedEmployee"`
}

func (r bookingRef) assignee() *string {
	if len(r.AssignedEmployee) == 0 || string(r.AssignedEmployee) == "null" {
		return nil
	}

	var id string
	if err := json.Unmarshal(r.AssignedEmployee, &id); err == nil && id != "" {
		return &id
	}

	var user struct {
		ID string `json:"id"`
	}

	if err := json.Unmarshal(r.AssignedEmployee, &user); err == nil && user.ID != "" {
		return &user.ID
	}

	return nil
}

// Tracked reports whether event belongs in a booking's activity trail.
func Tracked(event string) bool {
	return event == notification.EventBookingRequested || event == notification.EventBookingUpdated
}

// FromEnvelope turns a stream record into an activity row with the given id.
func FromEnvelope(id string, envelope notification.Envelope) (model.BookingActivity, error) {
	var ref bookingRef
	if err := json.Unmarshal(envelope.Payload, &ref); err != nil {
		return model.BookingActivity{}, fmt.Errorf("failed to decode activity payload: %w", err)
	}

	if ref.ID == "" {
		return model.BookingActivity{}, ErrMissingBooking
	}

	activity := model.BookingActivity{
		ID:                 id,
		BookingID:          ref.ID,
		Event:              envelope.Event,
		AssignedEmployeeID: ref.assignee(),
		Payload:            types.JSONText(envelope.Payload),
		OccurredAt:         envelope.OccurredAt,
		Metadata:           gModel.NewMetadata(actorStream),
	}

	if ref.Status != "" {
		activity.Status = &ref.Status
	}

	if activity.OccurredAt.IsZero() {
		activity.OccurredAt = activity.CreatedAt
	}

	return activity, nil
}

type ActivityResponse struct {
	ID                 string          `json:"id"`
	BookingID          string          `json:"bookingId"`
	Event              string          `json:"event"`
	Status             *string         `json:"status,omitempty"`
	AssignedEmployeeID *string         `json:"assignedEmployee,omitempty"`
	Payload            json.RawMessage `json:"payload" swaggertype:"object"`
	OccurredAt         string          `json:"occurredAt"`
}

func (r *ActivityResponse) FromModel(activity model.BookingActivity) {
	r.ID = activity.ID
	r.BookingID = activity.BookingID
	r.Event = activity.Event
	r.Status = activity.Status
	r.AssignedEmployeeID = activity.AssignedEmployeeID
	r.Payload = json.RawMessage(activity.Payload)
	r.OccurredAt = timezone.Format(activity.OccurredAt, constant.DateFormat)
}

func FromModels(activities []model.BookingActivity) []ActivityResponse {
	res := make([]ActivityResponse, len(activities))
	for i, activity := range activities {
		res[i].FromModel(activity)
	}

	return res
}
