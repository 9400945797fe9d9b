package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---
//
// Both endpoints accept multipart form data; the optional picture file is
// read separately from the form fields via c.FormFile.

type createLaborerRequest struct {
	FirstName string `form:"firstName" validate:"required"`
	LastName  string `form:"lastName"  validate:"required"`
	Email     string `form:"email"     validate:"required,email"`
	HireDate  string `form:"hireDate"  validate:"required"`
	Role      string `form:"role"      validate:"required,oneof=user admin supervisor"`
}

// updateLaborerRequest is a partial form: absent fields keep their stored
// values. Validation only applies to fields that were supplied.
type updateLaborerRequest struct {
	FirstName string `form:"firstName"`
	LastName  string `form:"lastName"`
	Email     string `form:"email"    validate:"omitempty,email"`
	HireDate  string `form:"hireDate"`
	Role      string `form:"role"     validate:"omitempty,oneof=user admin supervisor"`
}

// --- Response types ---
//
// Response-only types owned by the transport layer. These are intentionally
// separate from domain types so the JSON contract is not coupled to internal
// changes.

type laborerResponse struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	HireDate  time.Time `json:"hireDate"`
	Role      string    `json:"role"`
	Picture   string    `json:"picture"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// laborerSummaryResponse is the list item. It intentionally omits the
// picture field.
type laborerSummaryResponse struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	HireDate  time.Time `json:"hireDate"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
}
