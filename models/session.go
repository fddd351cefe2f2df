package models

// Identity is the authenticated principal held by a session slot.
type Identity struct {
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role"`
}

// Session holds the two independent identity slots: a browser can be
// simultaneously logged in as a user and as an administrator. A nil slot
// means logged out on that axis.
type Session struct {
	User  *Identity `json:"user,omitempty"`
	Admin *Identity `json:"admin,omitempty"`
}
