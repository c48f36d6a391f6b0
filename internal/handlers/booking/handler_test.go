package booking_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	otelMocks "catering/infras/otel/mocks"
	activityDto "catering/internal/domains/activity/model/dto"
	activityMocks "catering/internal/domains/activity/service/mocks"
	"catering/internal/domains/booking/model"
	"catering/internal/domains/booking/model/dto"
	"catering/internal/domains/booking/service/mocks"
	"catering/internal/handlers/booking"
	"catering/shared"
	gDto "catering/shared/dto"
	"catering/shared/failure"
	"catering/shared/role"
)

var customer = gDto.Principal{ID: "user-1", Email: "asha@example.com", Role: role.User}

func serve(t *testing.T, svc *mocks.MockBooking, activity *activityMocks.MockActivity, principal gDto.Principal, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	handler := booking.New(svc, activity, otelMocks.NewOtel())

	router := chi.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(shared.WithPrincipal(r.Context(), principal)))
		})
	})
	handler.Router(router)

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestHandler_CreateBooking(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		setupMock   func(svc *mocks.MockBooking)
		wantCode    int
		wantMessage string
	}{
		{
			name: "created",
			body: `{"clientName":"Asha Rao","date":"2025-12-24","numGuests":40,"menu":["m-1"]}`,
			setupMock: func(svc *mocks.MockBooking) {
				svc.EXPECT().
					Create(gomock.Any(), customer, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ gDto.Principal, req dto.CreateBookingRequest) (dto.BookingMessageResponse, error) {
						assert.Equal(t, "2025-12-24", req.RawEventDate())
						assert.Equal(t, 40, req.GuestCount())

						return dto.BookingMessageResponse{
							Message: "Booking created successfully",
							Booking: dto.BookingResponse{ID: "b-1", Status: model.StatusPending, Guests: 40},
						}, nil
					})
			},
			wantCode:    http.StatusCreated,
			wantMessage: "Booking created successfully",
		},
		{
			name:        "unknown field",
			body:        `{"eventDate":"2025-12-24","guests":10,"status":"confirmed"}`,
			setupMock:   func(*mocks.MockBooking) {},
			wantCode:    http.StatusBadRequest,
			wantMessage: `unknown field "status"`,
		},
		{
			name:      "negative guests",
			body:      `{"eventDate":"2025-12-24","guests":-3}`,
			setupMock: func(*mocks.MockBooking) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "missing fields reported by the service",
			body: `{"clientName":"Asha Rao"}`,
			setupMock: func(svc *mocks.MockBooking) {
				svc.EXPECT().Create(gomock.Any(), customer, gomock.Any()).Return(dto.BookingMessageResponse{}, failure.MissingBookingFieldsError)
			},
			wantCode:    http.StatusBadRequest,
			wantMessage: failure.MissingBookingFieldsError.Message,
		},
		{
			name: "internal details are hidden",
			body: `{"eventDate":"2025-12-24","guests":10}`,
			setupMock: func(svc *mocks.MockBooking) {
				svc.EXPECT().Create(gomock.Any(), customer, gomock.Any()).Return(dto.BookingMessageResponse{}, errors.New("pq: relation bookings does not exist"))
			},
			wantCode:    http.StatusInternalServerError,
			wantMessage: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := mocks.NewMockBooking(ctrl)
			tt.setupMock(svc)

			rec := serve(t, svc, activityMocks.NewMockActivity(ctrl), customer, http.MethodPost, "/bookings", tt.body)

			assert.Equal(t, tt.wantCode, rec.Code)

			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, decode(t, rec)["message"])
			}
		})
	}
}

func TestHandler_GetBookingsReturnsBareArray(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockBooking(ctrl)
	svc.EXPECT().List(gomock.Any(), customer).Return([]dto.BookingResponse{{ID: "b-2"}, {ID: "b-1"}}, nil)

	rec := serve(t, svc, activityMocks.NewMockActivity(ctrl), customer, http.MethodGet, "/bookings", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var body []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 2)
	assert.Equal(t, "b-2", body[0]["id"])
	assert.Nil(t, body[0]["assignedEmployee"])
}

func TestHandler_Routes(t *testing.T) {
	admin := gDto.Principal{ID: "admin-1", Role: role.Admin}
	employee := gDto.Principal{ID: "emp-1", Role: role.Employee}

	tests := []struct {
		name      string
		principal gDto.Principal
		method    string
		target    string
		body      string
		setupMock func(svc *mocks.MockBooking, activity *activityMocks.MockActivity)
		wantCode  int
	}{
		{
			name:      "employee events resolve before the id route",
			principal: employee,
			method:    http.MethodGet,
			target:    "/bookings/employee/events",
			setupMock: func(svc *mocks.MockBooking, _ *activityMocks.MockActivity) {
				svc.EXPECT().ListAssignedToEmployee(gomock.Any(), employee).Return([]dto.BookingResponse{}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:      "employee status alias",
			principal: employee,
			method:    http.MethodPatch,
			target:    "/bookings/employee/events/b-1/status",
			body:      `{"status":"In Progress"}`,
			setupMock: func(svc *mocks.MockBooking, _ *activityMocks.MockActivity) {
				svc.EXPECT().
					UpdateEmployeeStatus(gomock.Any(), employee, "b-1", dto.EmployeeStatusRequest{Status: "In Progress"}).
					Return(dto.BookingResponse{ID: "b-1", Status: model.StatusConfirmed}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:      "admin status update",
			principal: admin,
			method:    http.MethodPatch,
			target:    "/bookings/b-1/status",
			body:      `{"status":"completed"}`,
			setupMock: func(svc *mocks.MockBooking, _ *activityMocks.MockActivity) {
				svc.EXPECT().
					UpdateStatus(gomock.Any(), admin, "b-1", dto.UpdateStatusRequest{Status: "completed"}).
					Return(dto.BookingMessageResponse{Message: "Booking status updated"}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:      "status body is required",
			principal: admin,
			method:    http.MethodPatch,
			target:    "/bookings/b-1/status",
			body:      `{}`,
			setupMock: func(*mocks.MockBooking, *activityMocks.MockActivity) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "assign forwards the employee id",
			principal: admin,
			method:    http.MethodPatch,
			target:    "/bookings/b-1/assign",
			body:      `{"employeeId":"emp-1"}`,
			setupMock: func(svc *mocks.MockBooking, _ *activityMocks.MockActivity) {
				svc.EXPECT().
					AssignEmployee(gomock.Any(), admin, "b-1", dto.AssignEmployeeRequest{EmployeeID: "emp-1"}).
					Return(dto.BookingMessageResponse{}, failure.NotFound("employee not found"))
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:      "owner cancel",
			principal: customer,
			method:    http.MethodPatch,
			target:    "/bookings/b-1/cancel",
			setupMock: func(svc *mocks.MockBooking, _ *activityMocks.MockActivity) {
				svc.EXPECT().Cancel(gomock.Any(), customer, "b-1").Return(dto.BookingMessageResponse{}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:      "activity trail",
			principal: admin,
			method:    http.MethodGet,
			target:    "/bookings/b-1/activity",
			setupMock: func(_ *mocks.MockBooking, activity *activityMocks.MockActivity) {
				activity.EXPECT().ListForBooking(gomock.Any(), admin, "b-1").Return([]activityDto.ActivityResponse{{ID: "a-1", BookingID: "b-1"}}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:      "single booking forbidden",
			principal: customer,
			method:    http.MethodGet,
			target:    "/bookings/b-9",
			setupMock: func(svc *mocks.MockBooking, _ *activityMocks.MockActivity) {
				svc.EXPECT().Get(gomock.Any(), customer, "b-9").Return(dto.BookingResponse{}, failure.ResourceRestrictedError)
			},
			wantCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := mocks.NewMockBooking(ctrl)
			activity := activityMocks.NewMockActivity(ctrl)
			tt.setupMock(svc, activity)

			rec := serve(t, svc, activity, tt.principal, tt.method, tt.target, tt.body)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
