package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	otelMocks "catering/infras/otel/mocks"
	bookingMocks "catering/internal/domains/booking/mocks"
	bookingModel "catering/internal/domains/booking/model"
	bookingRepo "catering/internal/domains/booking/repository"
	menuMocks "catering/internal/domains/menu/mocks"
	menuModel "catering/internal/domains/menu/model"
	"catering/internal/domains/payroll/service"
	gDto "catering/shared/dto"
	"catering/shared/failure"
	"catering/shared/role"
)

func TestPayrollService_ComputeForEmployee(t *testing.T) {
	employee := gDto.Principal{ID: "emp-1", Email: "ravi@catering.io", Role: role.Employee}

	completed := []bookingModel.Booking{
		{ID: "b-1", EventDate: time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC), Menu: pq.StringArray{"m-1", "m-2", "m-1"}, Status: bookingModel.StatusCompleted},
		{ID: "b-2", EventDate: time.Date(2025, 2, 5, 0, 0, 0, 0, time.UTC), Menu: pq.StringArray{}, Status: bookingModel.StatusCompleted},
	}

	tests := []struct {
		name       string
		principal  gDto.Principal
		setupMock  func(bookings *bookingMocks.MockBooking, menu *menuMocks.MockMenu)
		wantCode   int
		wantSalary float64
		wantEvents int
	}{
		{
			name:      "admin has no payroll",
			principal: gDto.Principal{ID: "admin-1", Role: role.Admin},
			setupMock: func(*bookingMocks.MockBooking, *menuMocks.MockMenu) {},
			wantCode:  http.StatusForbidden,
		},
		{
			name:      "customer has no payroll",
			principal: gDto.Principal{ID: "user-1", Role: role.User},
			setupMock: func(*bookingMocks.MockBooking, *menuMocks.MockMenu) {},
			wantCode:  http.StatusForbidden,
		},
		{
			name:      "nothing completed skips the menu lookup",
			principal: employee,
			setupMock: func(bookings *bookingMocks.MockBooking, _ *menuMocks.MockMenu) {
				bookings.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), bookingRepo.FilterCompletedBy(employee.ID)).
					Return([]bookingModel.Booking{}, nil)
			},
			wantSalary: 0,
			wantEvents: 0,
		},
		{
			name:      "sums completed bookings in event order",
			principal: employee,
			setupMock: func(bookings *bookingMocks.MockBooking, menu *menuMocks.MockMenu) {
				bookings.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), bookingRepo.FilterCompletedBy(employee.ID)).
					DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]bookingModel.Booking, error) {
						assert.Equal(t, gDto.SortDirAsc, params.SortDir)
						assert.Equal(t, "event_date, id", params.SortBy)

						return completed, nil
					})
				menu.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]menuModel.MenuItem{{ID: "m-1", Price: 12.5}, {ID: "m-2", Price: 7.25}}, nil)
			},
			wantSalary: 32.25,
			wantEvents: 2,
		},
		{
			name:      "booking store failure",
			principal: employee,
			setupMock: func(bookings *bookingMocks.MockBooking, _ *menuMocks.MockMenu) {
				bookings.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))
			},
			wantCode: http.StatusInternalServerError,
		},
		{
			name:      "menu store failure",
			principal: employee,
			setupMock: func(bookings *bookingMocks.MockBooking, menu *menuMocks.MockMenu) {
				bookings.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(completed, nil)
				menu.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			bookings := bookingMocks.NewMockBooking(ctrl)
			menu := menuMocks.NewMockMenu(ctrl)
			tt.setupMock(bookings, menu)

			svc := service.New(bookings, menu, otelMocks.NewOtel())

			res, err := svc.ComputeForEmployee(context.Background(), tt.principal)

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantSalary, res.Salary)
			assert.Equal(t, tt.wantEvents, res.CompletedEvents)
			assert.Zero(t, res.Paid)
			assert.Len(t, res.Breakdown, tt.wantEvents)
		})
	}
}
