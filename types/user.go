package types

import "time"

// Roles assignable to a user account. The backend enforces them; the client
// only compares them for access gating.
const (
	RoleAdmin      = "admin"
	RoleInstructor = "instructor"
	RoleStudent    = "student"
)

// ValidRole reports whether role is one of the known role constants.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleInstructor, RoleStudent:
		return true
	default:
		return false
	}
}

// User represents an account on the LMS backend as returned by the
// profile and user-update endpoints.
type User struct {
	// ID is the unique identifier of the user.
	ID int `json:"id"`

	// Email is the user's login email address.
	Email string `json:"email"`

	// Fname is the user's first name.
	Fname string `json:"fname"`

	// Lname is the user's last name.
	Lname string `json:"lname"`

	// Role indicates the user's authorization level within the system
	// (one of "admin", "instructor", "student").
	Role string `json:"role"`

	// Bio is an optional free-form description of the user.
	Bio string `json:"bio,omitempty"`

	// Avatar is an optional reference to the user's avatar image as
	// stored by the backend.
	Avatar string `json:"avatar,omitempty"`

	// Phone is an optional contact phone number.
	Phone string `json:"phone,omitempty"`

	// Address is an optional postal address.
	Address string `json:"address,omitempty"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// FullName returns the user's display name.
func (u User) FullName() string {
	switch {
	case u.Fname == "":
		return u.Lname
	case u.Lname == "":
		return u.Fname
	default:
		return u.Fname + " " + u.Lname
	}
}
