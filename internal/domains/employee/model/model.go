package model

import (
	"catering/shared/model"
	"time"
)

const (
	TableName  = "employees"
	EntityName = "employee"

	FieldID             = "id"
	FieldName           = "name"
	FieldSpecialization = "specialization"
	FieldEmail          = "email"
	FieldAvatar         = "avatar"
	FieldJoinedAt       = "joined_at"

	AvatarDirectory = "employees"
)

type Employee struct {
	ID             string    `db:"id"`
	Name           string    `db:"name"`
	Specialization string    `db:"specialization"`
	Email          string    `db:"email"`
	Phone          *string   `db:"phone"`
	Avatar         *string   `db:"avatar"`
	JoinedAt       time.Time `db:"joined_at"`
	model.Metadata
}
