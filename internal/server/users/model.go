// Package users implements the credential store: user records with one-way
// hashed credentials, registration, login and profile maintenance.
package users

import "time"

// Roles a user can hold.
const (
	RoleGardener   = "gardener"
	RoleSupervisor = "supervisor"
	RoleHomeowner  = "homeowner"
	RoleAdmin      = "admin"
)

type User struct {
	ID             string    `json:"id"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	UserName       string    `json:"username"`
	Email          string    `json:"email"`
	PasswordHash   string    `json:"-"`
	Role           string    `json:"role"`
	Location       string    `json:"location,omitempty"`
	Climate        string    `json:"climate,omitempty"`
	SoilType       string    `json:"soilType,omitempty"`
	Experience     string    `json:"experience"`
	RegisteredDate time.Time `json:"registeredDate"`
}
