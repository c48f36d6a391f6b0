package dto_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catering/internal/domains/activity/model/dto"
	"catering/internal/domains/notification"
)

func TestFromEnvelope(t *testing.T) {
	occurred := time.Date(2025, 5, 2, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name         string
		event        string
		payload      string
		wantErr      bool
		wantBooking  string
		wantStatus   *string
		wantAssignee *string
	}{
		{
			name:        "requested booking with an unassigned user object",
			event:       notification.EventBookingRequested,
			payload:     `{"id":"b-1","status":"pending","assignedEmployee":null,"user":{"id":"u-1"}}`,
			wantBooking: "b-1",
			wantStatus:  ptr("pending"),
		},
		{
			name:         "assignment carries the employee id",
			event:        notification.EventBookingUpdated,
			payload:      `{"id":"b-1","status":"confirmed","assignedEmployee":"emp-7"}`,
			wantBooking:  "b-1",
			wantStatus:   ptr("confirmed"),
			wantAssignee: ptr("emp-7"),
		},
		{
			name:         "assignee as a user summary",
			event:        notification.EventBookingUpdated,
			payload:      `{"id":"b-2","status":"completed","assignedEmployee":{"id":"emp-8","name":"Ravi"}}`,
			wantBooking:  "b-2",
			wantStatus:   ptr("completed"),
			wantAssignee: ptr("emp-8"),
		},
		{
			name:    "payload without a booking",
			event:   notification.EventBookingUpdated,
			payload: `{"status":"completed"}`,
			wantErr: true,
		},
		{
			name:    "payload is not an object",
			event:   notification.EventBookingUpdated,
			payload: `["b-1"]`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			envelope := notification.Envelope{
				Event:      tt.event,
				Room:       "admins",
				Payload:    json.RawMessage(tt.payload),
				OccurredAt: occurred,
			}

			activity, err := dto.FromEnvelope("a-1", envelope)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "a-1", activity.ID)
			assert.Equal(t, tt.wantBooking, activity.BookingID)
			assert.Equal(t, tt.event, activity.Event)
			assert.Equal(t, tt.wantStatus, activity.Status)
			assert.Equal(t, tt.wantAssignee, activity.AssignedEmployeeID)
			assert.Equal(t, occurred, activity.OccurredAt)
			assert.JSONEq(t, tt.payload, string(activity.Payload))
		})
	}
}

func TestTracked(t *testing.T) {
	assert.True(t, dto.Tracked(notification.EventBookingRequested))
	assert.True(t, dto.Tracked(notification.EventBookingUpdated))
	assert.False(t, dto.Tracked(notification.EventOrderCreated))
	assert.False(t, dto.Tracked(""))
}

func ptr(value string) *string {
	return &value
}
