package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	otelMocks "catering/infras/otel/mocks"
	"catering/internal/domains/activity/mocks"
	"catering/internal/domains/activity/model"
	"catering/internal/domains/activity/service"
	"catering/internal/domains/notification"
	"catering/shared/constant"
	gDto "catering/shared/dto"
	"catering/shared/failure"
	"catering/shared/role"
)

func envelope(event, payload string) notification.Envelope {
	return notification.Envelope{
		Event:      event,
		Room:       "admins",
		Payload:    json.RawMessage(payload),
		OccurredAt: time.Date(2025, 5, 2, 9, 30, 0, 0, time.UTC),
	}
}

func TestActivityService_Record(t *testing.T) {
	updated := envelope(notification.EventBookingUpdated, `{"id":"b-1","status":"completed","assignedEmployee":"emp-1"}`)

	tests := []struct {
		name      string
		envelope  notification.Envelope
		setupMock func(repo *mocks.MockActivity)
		wantErr   bool
	}{
		{
			name:      "order events are ignored",
			envelope:  envelope(notification.EventOrderCreated, `{"id":"o-1"}`),
			setupMock: func(*mocks.MockActivity) {},
		},
		{
			name:     "records a new booking event",
			envelope: updated,
			setupMock: func(repo *mocks.MockActivity) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, activity model.BookingActivity) error {
						assert.Equal(t, "act-1", activity.ID)
						assert.Equal(t, "b-1", activity.BookingID)
						assert.Equal(t, "completed", *activity.Status)

						return nil
					})
			},
		},
		{
			name:     "redelivered record is skipped",
			envelope: updated,
			setupMock: func(repo *mocks.MockActivity) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
		},
		{
			name:     "concurrent duplicate insert is skipped",
			envelope: updated,
			setupMock: func(repo *mocks.MockActivity) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(&pq.Error{Code: constant.PqErrorCodeUniqueViolation})
			},
		},
		{
			name:      "malformed payload",
			envelope:  envelope(notification.EventBookingUpdated, `{"status":1}`),
			setupMock: func(*mocks.MockActivity) {},
			wantErr:   true,
		},
		{
			name:     "store failure",
			envelope: updated,
			setupMock: func(repo *mocks.MockActivity) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockActivity(gomock.NewController(t))
			tt.setupMock(repo)

			err := service.New(repo, otelMocks.NewOtel()).Record(context.Background(), "act-1", tt.envelope)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestActivityService_ListForBooking(t *testing.T) {
	t.Run("non admin", func(t *testing.T) {
		repo := mocks.NewMockActivity(gomock.NewController(t))

		_, err := service.New(repo, otelMocks.NewOtel()).ListForBooking(context.Background(), gDto.Principal{ID: "u-1", Role: role.User}, "b-1")

		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
	})

	t.Run("oldest first", func(t *testing.T) {
		repo := mocks.NewMockActivity(gomock.NewController(t))
		status := "pending"

		repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.BookingActivity, error) {
				assert.Equal(t, gDto.SortDirAsc, params.SortDir)

				_, args := filter.GetWhereClause()
				assert.Equal(t, "b-1", args[model.FieldBookingID])

				return []model.BookingActivity{{ID: "a-1", BookingID: "b-1", Event: notification.EventBookingRequested, Status: &status, Payload: []byte(`{"id":"b-1"}`)}}, nil
			})

		res, err := service.New(repo, otelMocks.NewOtel()).ListForBooking(context.Background(), gDto.Principal{ID: "admin-1", Role: role.Admin}, "b-1")

		require.NoError(t, err)
		require.Len(t, res, 1)
		assert.Equal(t, "a-1", res[0].ID)
		assert.JSONEq(t, `{"id":"b-1"}`, string(res[0].Payload))
	})
}
