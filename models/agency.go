package models

import "time"

// AgencyApplication is created at agency signup and sits in the pending set
// until an administrator approves or rejects it. Approval copies it into the
// approved set with ApprovedDate and merges its cars into the catalog.
type AgencyApplication struct {
	ID           string    `json:"id"`
	AgencyName   string    `json:"agencyName"`
	Owner        string    `json:"owner"`
	Email        string    `json:"email"`
	Address      string    `json:"address,omitempty"`
	Cars         []Car     `json:"cars"`
	Approved     bool      `json:"approved"`
	SubmittedAt  time.Time `json:"submittedAt"`
	ApprovedDate time.Time `json:"approvedDate,omitempty"`
}
