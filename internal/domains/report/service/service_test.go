package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	otelMocks "catering/infras/otel/mocks"
	"catering/internal/domains/report/mocks"
	"catering/internal/domains/report/model"
	"catering/internal/domains/report/service"
	gDto "catering/shared/dto"
	"catering/shared/failure"
	"catering/shared/role"
)

func TestReportService_Summary(t *testing.T) {
	admin := gDto.Principal{ID: "admin-1", Role: role.Admin}

	tests := []struct {
		name      string
		principal gDto.Principal
		setupMock func(repo *mocks.MockReport)
		wantCode  int
	}{
		{
			name:      "non admin",
			principal: gDto.Principal{ID: "emp-1", Role: role.Employee},
			setupMock: func(*mocks.MockReport) {},
			wantCode:  http.StatusForbidden,
		},
		{
			name:      "aggregates every source",
			principal: admin,
			setupMock: func(repo *mocks.MockReport) {
				repo.EXPECT().BookingsByStatus(gomock.Any()).Return([]model.StatusCount{{Status: "pending", Total: 4}, {Status: "completed", Total: 2}}, nil)
				repo.EXPECT().OrderTotals(gomock.Any()).Return(model.OrderTotals{Orders: 9, PaidRevenue: 1520.5}, nil)
				repo.EXPECT().Catalog(gomock.Any()).Return(model.Catalog{MenuItems: 31, Employees: 6}, nil)
			},
		},
		{
			name:      "one failing aggregate fails the report",
			principal: admin,
			setupMock: func(repo *mocks.MockReport) {
				repo.EXPECT().BookingsByStatus(gomock.Any()).Return(nil, nil).AnyTimes()
				repo.EXPECT().OrderTotals(gomock.Any()).Return(model.OrderTotals{}, errors.New("statement timeout")).AnyTimes()
				repo.EXPECT().Catalog(gomock.Any()).Return(model.Catalog{}, nil).AnyTimes()
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockReport(gomock.NewController(t))
			tt.setupMock(repo)

			res, err := service.New(repo, otelMocks.NewOtel()).Summary(context.Background(), tt.principal)

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, map[string]int{"pending": 4, "confirmed": 0, "completed": 2, "cancelled": 0}, res.Bookings)
			assert.Equal(t, 9, res.Orders)
			assert.Equal(t, 1520.5, res.PaidRevenue)
			assert.Equal(t, 31, res.MenuItems)
			assert.Equal(t, 6, res.Employees)
		})
	}
}
