// Package models defines the client-side data models of the storefront:
// identities, cart lines, products and orders as the remote API returns them.
package models

// Role distinguishes ordinary customers from administrators.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Identity is the user profile paired with a live credential.
type Identity struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	PhoneNo  string `json:"phoneNo,omitempty"`
	Role     Role   `json:"category,omitempty"`
}

// IsAdmin reports whether the identity may use back-office operations.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// Account is an Identity as seen from the back office.
type Account struct {
	Identity
	Active bool `json:"active"`
}

// StatusLabel renders Active for display.
func (a Account) StatusLabel() string {
	if a.Active {
		return "active"
	}
	return "inactive"
}

// SignUpRequest is the payload for creating a customer account.
type SignUpRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	PhoneNo  string `json:"phoneNo"`
}
