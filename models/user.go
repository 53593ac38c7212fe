package models

import "time"

// User represents an account record stored in the Credential Store.
// PasswordHash is a bcrypt hash and must never leave the server process.
type User struct {
	// UserID is the surrogate key assigned by the store on creation.
	UserID int64 `json:"user_id"`

	// UserName is the unique login name. It cannot be changed after creation.
	UserName string `json:"user_name"`

	// Email is the unique e-mail address of the account.
	Email string `json:"email"`

	// PhoneNumber is optional; nil means "not provided".
	PhoneNumber *string `json:"phone_number,omitempty"`

	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash string `json:"-"`

	// CreatedAt is set once by the store.
	CreatedAt time.Time `json:"created_at"`
}

// Public returns the subset of the record that may be shown to callers.
func (u User) Public() PublicUser {
	return PublicUser{
		UserID:      u.UserID,
		UserName:    u.UserName,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
	}
}

// PublicUser is the user profile returned by the API and cached by the
// client session. It never carries the password hash.
type PublicUser struct {
	UserID      int64   `json:"user_id"`
	UserName    string  `json:"user_name"`
	Email       string  `json:"email,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
}

// LoginProfile is the subset of the profile returned on login: the phone
// number is left out.
func (u PublicUser) LoginProfile() PublicUser {
	return PublicUser{UserID: u.UserID, UserName: u.UserName, Email: u.Email}
}
