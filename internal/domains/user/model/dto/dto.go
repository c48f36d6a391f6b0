package dto

import (
	"catering/internal/domains/user/model"
	"catering/shared/constant"
	gDto "catering/shared/dto"
	"catering/shared/role"
	"catering/shared/timezone"
	"mime/multipart"
)

type UserResponse struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	Role              role.Role `json:"role"`
	Phone             *string   `json:"phone,omitempty"`
	Address           *string   `json:"address,omitempty"`
	Avatar            *string   `json:"avatar,omitempty"`
	CompanyName       *string   `json:"companyName,omitempty"`
	GSTNumber         *string   `json:"gstNumber,omitempty"`
	CompanyLogo       *string   `json:"companyLogo,omitempty"`
	EmployeeProfileID *string   `json:"employeeProfileId,omitempty"`
	Active            bool      `json:"active"`
	LastLogin         *string   `json:"lastLogin,omitempty"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(user model.User) {
	r.ID = user.ID
	r.Name = user.Name
	r.Email = user.Email
	r.Role = user.Role
	r.Phone = user.Phone
	r.Address = user.Address
	r.Avatar = user.Avatar
	r.CompanyName = user.CompanyName
	r.GSTNumber = user.GSTNumber
	r.CompanyLogo = user.CompanyLogo
	r.EmployeeProfileID = user.EmployeeProfileID
	r.Active = user.Active
	r.Metadata.FromModel(user.Metadata)

	if user.LastLogin != nil {
		lastLogin := timezone.Format(*user.LastLogin, constant.DateFormat)
		r.LastLogin = &lastLogin
	}
}

func FromModels(users []model.User) []UserResponse {
	res := make([]UserResponse, len(users))
	for i, user := range users {
		res[i].FromModel(user)
	}

	return res
}

// Summary is the public projection of a user embedded in other resources.
type Summary struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone *string `json:"phone,omitempty"`
}

func NewSummary(user model.User) *Summary {
	return &Summary{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Phone: user.Phone,
	}
}

type UpdateProfileRequest struct {
	Name        *string `db:"name"         json:"name,omitempty"        validate:"omitempty,min=2,max=100"`
	Phone       *string `db:"phone"        json:"phone,omitempty"       validate:"omitempty,max=20"`
	Address     *string `db:"address"      json:"address,omitempty"     validate:"omitempty,max=255"`
	CompanyName *string `db:"company_name" json:"companyName,omitempty" validate:"omitempty,max=150"`
	GSTNumber   *string `db:"gst_number"   json:"gstNumber,omitempty"   validate:"omitempty,alphanum,len=15"`
	CompanyLogo *string `db:"company_logo" json:"companyLogo,omitempty" validate:"omitempty,url"`
}

func (r UpdateProfileRequest) TouchesCorporateFields() bool {
	return r.CompanyName != nil || r.GSTNumber != nil || r.CompanyLogo != nil
}

type UpdateAvatarRequest struct {
	File     *multipart.FileHeader `json:"file" swaggerignore:"true" validate:"required,mimetypes=image/png image/jpeg image/webp,maxfilesize=2"`
	FileData multipart.File        `json:"-"`
}

type AdminUpdateUserRequest struct {
	Role              *role.Role `db:"role"                json:"role,omitempty"              validate:"omitempty,oneof=user admin corporate employee"`
	Active            *bool      `db:"active"              json:"active,omitempty"`
	EmployeeProfileID *string    `db:"employee_profile_id" json:"employeeProfileId,omitempty" validate:"omitempty,uuid"`
}
