package employee

import (
	"time"
)

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

// Employee is the directory record the scoring engine references.
// Identity issuance lives elsewhere; this service only reads it.
type Employee struct {
	ID        string
	FullName  string
	Email     string
	Position  *string
	Role      Role
	IsActive  bool
	HireDate  time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
