package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common validation errors
var (
	ErrEmptyUserID         = errors.New("user ID cannot be empty")
	ErrEmptyLogin          = errors.New("login cannot be empty")
	ErrEmptyFirstName      = errors.New("first name cannot be empty")
	ErrEmptySecondName     = errors.New("second name cannot be empty")
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
)

// User represents a registered account. Users are immutable after
// registration: there is no update or delete endpoint, and the login is
// unique across the store.
type User struct {
	ID             uuid.UUID `json:"id"`
	Login          string    `json:"login"`
	FirstName      string    `json:"first_name"`
	SecondName     string    `json:"second_name"`
	HashedPassword string    `json:"-"` // Never expose the password hash in JSON
	CreatedAt      time.Time `json:"created_at"`
}

// NewUser creates a new User with the given login, names, and an
// already-hashed credential. It generates a new UUID for the user ID and
// sets the creation timestamp. Returns an error if validation fails.
//
// The caller is responsible for hashing the password (see service/auth)
// before constructing the user; plaintext never reaches the domain.
func NewUser(login, firstName, secondName, hashedPassword string) (*User, error) {
	user := &User{
		ID:             uuid.New(),
		Login:          login,
		FirstName:      firstName,
		SecondName:     secondName,
		HashedPassword: hashedPassword,
		CreatedAt:      time.Now().UTC(),
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrEmptyUserID
	}

	if u.Login == "" {
		return ErrEmptyLogin
	}

	if u.FirstName == "" {
		return ErrEmptyFirstName
	}

	if u.SecondName == "" {
		return ErrEmptySecondName
	}

	if u.HashedPassword == "" {
		return ErrEmptyHashedPassword
	}

	return nil
}
