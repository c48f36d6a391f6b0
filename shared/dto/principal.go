package dto

import "catering/shared/role"

// Principal is the authenticated caller as carried by a verified access token.
type Principal struct {
	ID    string
	Email string
	Role  role.Role
}

func (p Principal) Is(r role.Role) bool {
	return p.Role == r
}

func (p Principal) Authenticated() bool {
	return p.ID != ""
}
