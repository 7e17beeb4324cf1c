package domain

import "errors"

// Status is the declared occupation of an account holder.
type Status string

const (
	StatusStudent           Status = "Student"
	StatusEmployee          Status = "Employee"
	StatusIndependentWorker Status = "Independent Worker"
	StatusSmallBusiness     Status = "Small Business"
	StatusSelfEmployed      Status = "Self-Employed"
	StatusUnemployed        Status = "Unemployed"
)

// Statuses lists every accepted status value, in declaration order.
var Statuses = []Status{
	StatusStudent,
	StatusEmployee,
	StatusIndependentWorker,
	StatusSmallBusiness,
	StatusSelfEmployed,
	StatusUnemployed,
}

// Valid reports whether s is a member of the closed status set.
func (s Status) Valid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

var ErrEmailTaken = errors.New("email already registered")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")
var ErrStoreUnavailable = errors.New("document store unavailable")
var ErrInvalidStatus = errors.New("status not in accepted set")

// User models a registered account.
//
// Password is stored and compared verbatim — the product is a demo and the
// persisted contract matches raw credentials. It is excluded from JSON so no
// handler can echo it back by accident.
type User struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Location  string `json:"location"`
	Status    Status `json:"status"`
	Reason    string `json:"reason"`
	Password  string `json:"-"`
	IsActive  bool   `json:"is_active"`
}
