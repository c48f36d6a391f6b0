package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	otelMocks "catering/infras/otel/mocks"
	"catering/internal/domains/booking/model"
	"catering/internal/domains/booking/model/dto"
	"catering/internal/domains/booking/service"
	menuMocks "catering/internal/domains/menu/mocks"
	menuModel "catering/internal/domains/menu/model"
	notificationMocks "catering/internal/domains/notification/mocks"
	payrollService "catering/internal/domains/payroll/service"
	userMocks "catering/internal/domains/user/mocks"
	userModel "catering/internal/domains/user/model"
	"catering/shared/role"
)

func TestBookingLifecycleFeedsPayroll(t *testing.T) {
	ctrl := gomock.NewController(t)

	items := []menuModel.MenuItem{
		{ID: "m-samosa", Name: "Samosa", Price: 4.25},
		{ID: "m-thali", Name: "Thali", Price: 18},
	}
	ravi := userModel.User{ID: employee.ID, Name: "Ravi", Role: role.Employee, Active: true}

	menu := menuMocks.NewMockMenu(ctrl)
	menu.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(items, nil).AnyTimes()
	menu.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(items, nil).AnyTimes()

	users := userMocks.NewMockUser(ctrl)
	users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(ravi, nil)
	users.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]userModel.User{{ID: customer.ID, Name: "Asha"}, ravi}, nil).
		AnyTimes()

	notifier := notificationMocks.NewMockNotifier(ctrl)
	notifier.EXPECT().Notify(gomock.Any(), "admins", gomock.Any(), gomock.Any()).Return(nil).Times(3)

	store := newMemoryStore()
	bookings := service.New(store, menu, users, notifier, testConfig(), otelMocks.NewOtel())
	payroll := payrollService.New(store, menu, otelMocks.NewOtel())
	ctx := context.Background()

	created, err := bookings.Create(ctx, customer, dto.CreateBookingRequest{
		EventDate:  "2025-06-01",
		Guests:     80,
		ClientName: ptr("Asha Rao"),
		Menu:       []string{"m-thali", "m-samosa", "m-samosa"},
	})
	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, created.Booking.Status)

	before, err := payroll.ComputeForEmployee(ctx, employee)
	require.NoError(t, err)
	assert.Zero(t, before.CompletedEvents)
	assert.Empty(t, before.Breakdown)

	assigned, err := bookings.AssignEmployee(ctx, admin, created.Booking.ID, dto.AssignEmployeeRequest{EmployeeID: employee.ID})
	require.NoError(t, err)
	assert.Equal(t, model.StatusConfirmed, assigned.Booking.Status)

	visible, err := bookings.ListAssignedToEmployee(ctx, employee)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, created.Booking.ID, visible[0].ID)

	completed, err := bookings.UpdateEmployeeStatus(ctx, employee, created.Booking.ID, dto.EmployeeStatusRequest{Status: "Completed"})
	require.NoError(t, err)
	assert.Equal(t, model.StatusCompleted, completed.Status)

	after, err := payroll.ComputeForEmployee(ctx, employee)
	require.NoError(t, err)
	assert.Equal(t, 1, after.CompletedEvents)
	assert.InDelta(t, 26.5, after.Salary, 0.001)
	assert.Zero(t, after.Paid)
	require.Len(t, after.Breakdown, 1)
	assert.Equal(t, created.Booking.ID, after.Breakdown[0].ID)
	assert.Equal(t, "Asha Rao", after.Breakdown[0].ClientName)
	assert.Equal(t, "2025-06-01", after.Breakdown[0].EventDate)

	again, err := payroll.ComputeForEmployee(ctx, employee)
	require.NoError(t, err)
	assert.Equal(t, after, again)
}
