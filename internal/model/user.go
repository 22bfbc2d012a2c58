package model

import "time"

// User mirrors the `users` table. PasswordHash is a bcrypt hash and must
// never leave the process; API responses expose a User only through
// PublicView.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedDate  time.Time `json:"createdDate"`
}

// UserView is the externally facing representation of a User.
type UserView struct {
	ID          int64     `json:"id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	Role        string    `json:"role"`
	CreatedDate time.Time `json:"createdDate"`
}

// PublicView strips the credential from a User.
func (u User) PublicView() UserView {
	return UserView{
		ID:          u.ID,
		Email:       u.Email,
		Name:        u.Name,
		Role:        u.Role,
		CreatedDate: u.CreatedDate,
	}
}
