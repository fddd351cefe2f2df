package models

import "time"

// User roles.
const (
	RoleUser          = "user"
	RoleAgency        = "agency"
	RoleAdministrator = "administrator"
)

// User is a registered account. Email is the unique key; the password is
// stored and compared as an opaque plaintext value by policy.
type User struct {
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	Password      string    `json:"password"`
	Role          string    `json:"role"`
	AgencyName    string    `json:"agencyName,omitempty"`
	AgencyAddress string    `json:"agencyAddress,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}
