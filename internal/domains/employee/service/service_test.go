package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	otelMocks "catering/infras/otel/mocks"
	pgMocks "catering/infras/postgres/mocks"
	s3Mocks "catering/infras/s3/mocks"
	employeeMocks "catering/internal/domains/employee/mocks"
	"catering/internal/domains/employee/model"
	"catering/internal/domains/employee/model/dto"
	"catering/internal/domains/employee/service"
	userMocks "catering/internal/domains/user/mocks"
	userModel "catering/internal/domains/user/model"
	gDto "catering/shared/dto"
	"catering/shared/failure"
	"catering/shared/role"
)

const pngDataURL = "data:image/png;base64,iVBORw0KGgo="

type fixture struct {
	repo  *employeeMocks.MockEmployee
	users *userMocks.MockUser
	tx    *pgMocks.MockTransactor
	s3    *s3Mocks.MockS3
	svc   service.Employee
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	f := fixture{
		repo:  employeeMocks.NewMockEmployee(ctrl),
		users: userMocks.NewMockUser(ctrl),
		tx:    pgMocks.NewMockTransactor(ctrl),
		s3:    s3Mocks.NewMockS3(ctrl),
	}
	f.svc = service.New(f.repo, f.users, f.tx, f.s3, otelMocks.NewOtel())

	return f
}

func runTx(_ context.Context, fn func(tx *sqlx.Tx) error) error {
	return fn(nil)
}

func ptr[T any](v T) *T {
	return &v
}

func TestEmployeeService_Create(t *testing.T) {
	admin := gDto.Principal{ID: "admin-1", Role: role.Admin}

	tests := []struct {
		name      string
		req       dto.CreateEmployeeRequest
		setupMock func(f fixture)
		wantCode  int
		wantLogin bool
	}{
		{
			name: "profile only",
			req:  dto.CreateEmployeeRequest{Name: "Ravi", Specialization: "Chef", Email: "ravi@example.com"},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "with linked login and avatar",
			req: dto.CreateEmployeeRequest{
				Name:           "Meena",
				Specialization: "Server",
				Email:          "Meena@Example.com",
				Avatar:         ptr(pngDataURL),
				Password:       ptr("secret123"),
			},
			setupMock: func(f fixture) {
				f.users.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.s3.EXPECT().
					UploadFileBytes(gomock.Any(), model.AvatarDirectory, gomock.Any(), "image/png", gomock.Any()).
					Return("https://cdn.example.com/employees/a.png", nil)
				f.tx.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(runTx)

				var profileID string

				f.repo.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, employee model.Employee) error {
						profileID = employee.ID
						assert.Equal(t, "meena@example.com", employee.Email)

						return nil
					})
				f.users.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, user userModel.User) error {
						assert.Equal(t, role.Employee, user.Role)
						assert.Equal(t, profileID, *user.EmployeeProfileID)
						assert.Equal(t, "https://cdn.example.com/employees/a.png", *user.Avatar)

						return nil
					})
			},
			wantLogin: true,
		},
		{
			name: "login email already used",
			req:  dto.CreateEmployeeRequest{Name: "Meena", Specialization: "Server", Email: "meena@example.com", Password: ptr("secret123")},
			setupMock: func(f fixture) {
				f.users.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "avatar is not an image",
			req:  dto.CreateEmployeeRequest{Name: "Ravi", Specialization: "Chef", Email: "ravi@example.com", Avatar: ptr("data:text/plain;base64,aGVsbG8=")},
			setupMock: func(fixture) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "transaction failure removes uploaded avatar",
			req: dto.CreateEmployeeRequest{
				Name:           "Meena",
				Specialization: "Server",
				Email:          "meena@example.com",
				Avatar:         ptr(pngDataURL),
				Password:       ptr("secret123"),
			},
			setupMock: func(f fixture) {
				f.users.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.s3.EXPECT().
					UploadFileBytes(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return("https://cdn.example.com/employees/a.png", nil)
				f.tx.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
				f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.users.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(&pq.Error{Code: "23505"})
				f.s3.EXPECT().GetObjectKeyFromURL("https://cdn.example.com/employees/a.png").Return("employees/a.png")
				f.s3.EXPECT().DeleteFile(gomock.Any(), "employees/a.png").Return(nil)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "insert failure",
			req:  dto.CreateEmployeeRequest{Name: "Ravi", Specialization: "Chef", Email: "ravi@example.com"},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Create(context.Background(), admin, tt.req)

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, res.ID)
			assert.Equal(t, tt.wantLogin, res.UserID != nil)
		})
	}
}

func TestEmployeeService_GetProfile(t *testing.T) {
	principal := gDto.Principal{ID: "u-7", Role: role.Employee}

	tests := []struct {
		name      string
		setupMock func(f fixture)
		wantCode  int
	}{
		{
			name: "linked",
			setupMock: func(f fixture) {
				f.users.EXPECT().
					Get(gomock.Any(), gomock.Any(), userModel.FieldID, userModel.FieldEmployeeProfileID).
					Return(userModel.User{ID: "u-7", EmployeeProfileID: ptr("e-1")}, nil)
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Employee{ID: "e-1", Name: "Ravi"}, nil)
			},
		},
		{
			name: "not linked",
			setupMock: func(f fixture) {
				f.users.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(userModel.User{ID: "u-7"}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "profile removed",
			setupMock: func(f fixture) {
				f.users.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(userModel.User{ID: "u-7", EmployeeProfileID: ptr("e-1")}, nil)
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Employee{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.GetProfile(context.Background(), principal)

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "e-1", res.ID)
			assert.Equal(t, "u-7", *res.UserID)
		})
	}
}

func TestEmployeeService_Update_ReplacesAvatar(t *testing.T) {
	f := newFixture(t)
	admin := gDto.Principal{ID: "admin-1", Role: role.Admin}

	f.repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Employee{ID: "e-1", Avatar: ptr("https://cdn.example.com/employees/old.png")}, nil)
	f.s3.EXPECT().
		UploadFileBytes(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return("https://cdn.example.com/employees/new.png", nil)
	f.repo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, mod map[string]any, _ gDto.FilterGroup) error {
			assert.Equal(t, "https://cdn.example.com/employees/new.png", mod["avatar"])
			assert.Equal(t, "Head Chef", mod["specialization"])

			return nil
		})
	f.s3.EXPECT().GetObjectKeyFromURL("https://cdn.example.com/employees/old.png").Return("employees/old.png")
	f.s3.EXPECT().DeleteFile(gomock.Any(), "employees/old.png").Return(nil)
	f.repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Employee{ID: "e-1", Specialization: "Head Chef", Avatar: ptr("https://cdn.example.com/employees/new.png")}, nil)

	res, err := f.svc.Update(context.Background(), admin, "e-1", dto.UpdateEmployeeRequest{
		Specialization: ptr("Head Chef"),
		Avatar:         ptr(pngDataURL),
	})

	require.NoError(t, err)
	assert.Equal(t, "Head Chef", res.Specialization)
}
