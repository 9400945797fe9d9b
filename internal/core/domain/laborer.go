package domain

import (
	"errors"
	"time"
)

// Role classifies a laborer's position in the organisation.
type Role string

const (
	RoleUser       Role = "user"
	RoleAdmin      Role = "admin"
	RoleSupervisor Role = "supervisor"
)

// validRoles is the closed set of accepted roles.
var validRoles = map[Role]struct{}{
	RoleUser:       {},
	RoleAdmin:      {},
	RoleSupervisor: {},
}

var ErrLaborerNotFound = errors.New("laborer not found")
var ErrDuplicateEmail = errors.New("email must be unique")
var ErrInvalidRole = errors.New("invalid role")
var ErrInvalidHireDate = errors.New("invalid hire date")

// IsValid reports whether r is one of the enumerated roles.
func (r Role) IsValid() bool {
	_, ok := validRoles[r]
	return ok
}

// Laborer is the sole aggregate: one personnel record.
type Laborer struct {
	ID        string    `json:"id" bson:"_id"`
	FirstName string    `json:"firstName" bson:"first_name"`
	LastName  string    `json:"lastName" bson:"last_name"`
	Email     string    `json:"email" bson:"email"`
	HireDate  time.Time `json:"hireDate" bson:"hire_date"`
	Role      Role      `json:"role" bson:"role"`
	Picture   string    `json:"picture" bson:"picture"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updated_at"`
}

// LaborerSummary is the list projection. Picture is intentionally absent.
type LaborerSummary struct {
	ID        string    `json:"id" bson:"_id"`
	FirstName string    `json:"firstName" bson:"first_name"`
	LastName  string    `json:"lastName" bson:"last_name"`
	HireDate  time.Time `json:"hireDate" bson:"hire_date"`
	Email     string    `json:"email" bson:"email"`
	Role      Role      `json:"role" bson:"role"`
}
