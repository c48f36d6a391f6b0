package dto

import (
	"catering/internal/domains/employee/model"
	userModel "catering/internal/domains/user/model"
	"catering/shared/constant"
	gDto "catering/shared/dto"
	gModel "catering/shared/model"
	"catering/shared/role"
	"catering/shared/timezone"
	"strings"

	"github.com/google/uuid"
)

type CreateEmployeeRequest struct {
	Name           string  `json:"name"               validate:"required,min=2,max=100"`
	Specialization string  `json:"specialization"     validate:"required,max=100"`
	Email          string  `json:"email"              validate:"required,email"`
	Phone          *string `json:"phone,omitempty"    validate:"omitempty,max=20"`
	Avatar         *string `json:"avatar,omitempty"   validate:"omitempty,datauri"`
	Password       *string `json:"password,omitempty" validate:"omitempty,min=8"`
}

func (r *CreateEmployeeRequest) ToModel(actor string) model.Employee {
	meta := gModel.NewMetadata(actor)

	return model.Employee{
		ID:             uuid.NewString(),
		Name:           strings.TrimSpace(r.Name),
		Specialization: strings.TrimSpace(r.Specialization),
		Email:          strings.ToLower(strings.TrimSpace(r.Email)),
		Phone:          r.Phone,
		JoinedAt:       meta.CreatedAt,
		Metadata:       meta,
	}
}

// ToLogin builds the employee's linked account.
func (r *CreateEmployeeRequest) ToLogin(employee model.Employee, hashedPassword, actor string) userModel.User {
	return userModel.User{
		ID:                uuid.NewString(),
		Name:              employee.Name,
		Email:             employee.Email,
		Password:          hashedPassword,
		Role:              role.Employee,
		Phone:             employee.Phone,
		Avatar:            employee.Avatar,
		EmployeeProfileID: &employee.ID,
		Active:            true,
		Metadata:          gModel.NewMetadata(actor),
	}
}

type UpdateEmployeeRequest struct {
	Name           *string `db:"name"           json:"name,omitempty"           validate:"omitempty,min=2,max=100"`
	Specialization *string `db:"specialization" json:"specialization,omitempty" validate:"omitempty,max=100"`
	Phone          *string `db:"phone"          json:"phone,omitempty"          validate:"omitempty,max=20"`
	Avatar         *string `json:"avatar,omitempty" validate:"omitempty,datauri"`
}

type EmployeeResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Specialization string  `json:"specialization"`
	Email          string  `json:"email"`
	Phone          *string `json:"phone,omitempty"`
	Avatar         *string `json:"avatar,omitempty"`
	JoinedAt       string  `json:"joinedAt"`
	UserID         *string `json:"userId,omitempty"`
	gDto.Metadata
}

func (r *EmployeeResponse) FromModel(employee model.Employee) {
	r.ID = employee.ID
	r.Name = employee.Name
	r.Specialization = employee.Specialization
	r.Email = employee.Email
	r.Phone = employee.Phone
	r.Avatar = employee.Avatar
	r.JoinedAt = timezone.Format(employee.JoinedAt, constant.DateFormat)
	r.Metadata.FromModel(employee.Metadata)
}

func FromModels(employees []model.Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(employees))
	for i, employee := range employees {
		res[i].FromModel(employee)
	}

	return res
}
