package domain

import "time"

// Role is the part a member plays in the marketplace
type Role string

const (
	RoleDonor     Role = "donor"
	RoleRecipient Role = "recipient"
	RoleCharity   Role = "charity"
	RoleAdmin     Role = "admin"
)

// SelectableRoles are the roles a new member may pick during sign-up
var SelectableRoles = map[Role]bool{
	RoleDonor:     true,
	RoleRecipient: true,
	RoleCharity:   true,
}

// Account is a registered member
type Account struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Role         Role      `json:"role"`
	Address      string    `json:"address"`
	PasswordHash string    `json:"-"`
	Verified     bool      `json:"verified"`
	Rating       float64   `json:"rating"`
	ReviewCount  int       `json:"review_count"`
	CreatedAt    time.Time `json:"created_at"`
}
