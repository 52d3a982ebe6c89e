package model

import "time"

// User represents a registered member. Users are never deleted; profile
// fields are mutated only through explicit update calls.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Avatar       string    `json:"avatar,omitempty"`
	Role         string    `json:"role"`
	Rating       float64   `json:"rating"`
	TotalSwaps   int       `json:"total_swaps"`
	Points       int       `json:"points"`
	CreatedAt    time.Time `json:"created_at"`
}

// Roles.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// DefaultRating is a user's rating before any review has been received.
const DefaultRating = 5.0

// RoleAtLeast checks if role meets or exceeds the minimum required role.
func RoleAtLeast(role, minimum string) bool {
	levels := map[string]int{
		RoleAdmin: 2,
		RoleUser:  1,
	}
	return levels[role] >= levels[minimum]
}

// UserPatch carries a partial profile update. Nil fields are left untouched.
type UserPatch struct {
	Username   *string  `json:"username,omitempty"`
	Avatar     *string  `json:"avatar,omitempty"`
	Rating     *float64 `json:"rating,omitempty"`
	TotalSwaps *int     `json:"total_swaps,omitempty"`
	Points     *int     `json:"points,omitempty"`
}

// Apply copies the set fields of the patch onto the user.
func (p UserPatch) Apply(u *User) {
	if p.Username != nil {
		u.Username = *p.Username
	}
	if p.Avatar != nil {
		u.Avatar = *p.Avatar
	}
	if p.Rating != nil {
		u.Rating = *p.Rating
	}
	if p.TotalSwaps != nil {
		u.TotalSwaps = *p.TotalSwaps
	}
	if p.Points != nil {
		u.Points = *p.Points
	}
}
