package models

import "github.com/google/uuid"

// Principal is the authenticated identity attached to a request by the
// auth middleware. It is supplied by the identity provider, never by the
// request body.
type Principal struct {
	ID   uuid.UUID
	Name string
	Role RoleType
}
