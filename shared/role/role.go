// Package role defines the closed set of user roles known to the service.
package role

import (
	"errors"
	"strings"
)

var ErrUnknownRole = errors.New("unknown role")

type Role string

const (
	User      Role = "user"
	Admin     Role = "admin"
	Corporate Role = "corporate"
	Employee  Role = "employee"
)

// All lists every role in a stable order.
func All() []Role {
	return []Role{User, Admin, Corporate, Employee}
}

// Parse converts a raw string into a Role. Matching ignores case and surrounding spaces.
func Parse(value string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(value))) {
	case User:
		return User, nil
	case Admin:
		return Admin, nil
	case Corporate:
		return Corporate, nil
	case Employee:
		return Employee, nil
	default:
		return "", ErrUnknownRole
	}
}

func (r Role) Valid() bool {
	_, err := Parse(string(r))

	return err == nil
}

func (r Role) String() string {
	return string(r)
}
