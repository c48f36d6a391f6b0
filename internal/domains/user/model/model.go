package model

import (
	"catering/shared/model"
	"catering/shared/role"
	"time"
)

const (
	TableName  = "users"
	EntityName = "user"

	FieldID                = "id"
	FieldName              = "name"
	FieldEmail             = "email"
	FieldPhone             = "phone"
	FieldPassword          = "password"
	FieldRole              = "role"
	FieldAvatar            = "avatar"
	FieldEmployeeProfileID = "employee_profile_id"
	FieldActive            = "active"
	FieldLastLogin         = "last_login"

	AvatarDirectory = "avatars"
)

type User struct {
	ID                string     `db:"id"`
	Name              string     `db:"name"`
	Email             string     `db:"email"`
	Password          string     `db:"password"`
	Role              role.Role  `db:"role"`
	Phone             *string    `db:"phone"`
	Address           *string    `db:"address"`
	Avatar            *string    `db:"avatar"`
	CompanyName       *string    `db:"company_name"`
	GSTNumber         *string    `db:"gst_number"`
	CompanyLogo       *string    `db:"company_logo"`
	EmployeeProfileID *string    `db:"employee_profile_id"`
	Active            bool       `db:"active"`
	LastLogin         *time.Time `db:"last_login"`
	model.Metadata
}

func ByID(users []User) map[string]User {
	index := make(map[string]User, len(users))
	for _, user := range users {
		index[user.ID] = user
	}

	return index
}
