package domain

import "time"

// User represents a registered account. The Password field only ever holds
// the plaintext submitted at registration or login and is never persisted,
// the PasswordHash column never leaves the process: every boundary crossing
// goes through Public().
type User struct {
	ID           int    `json:"id"`
	Email        string `json:"email" gorm:"notNull;uniqueIndex"`
	Username     string `json:"username" gorm:"notNull;uniqueIndex"`
	Password     string `json:"-" gorm:"-"`
	PasswordHash string `json:"-" gorm:"notNull"`
	Location     string `json:"location,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserService is a set of methods to manipulate and work with the User model.
type UserService interface {
	Register(user *User) error
	Authenticate(email, password string) (*User, error)
	ByID(id int) (*User, error)
	ByEmail(email string) (*User, error)
	SearchByUsername(query string) ([]User, error)
}

// PublicUser is the projection of a User that may cross the system boundary.
type PublicUser struct {
	ID       int    `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Location string `json:"location,omitempty"`
}

// Public projects the user down to its transmittable fields.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:       u.ID,
		Email:    u.Email,
		Username: u.Username,
		Location: u.Location,
	}
}
