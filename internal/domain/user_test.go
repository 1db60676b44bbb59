package domain

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewUser(t *testing.T) {
	// Test valid user creation
	user, err := NewUser("osmith", "Oliver", "Smith", "$2a$10$somebcrypthash")

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if user.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}

	if user.Login != "osmith" {
		t.Errorf("Expected login osmith, got %s", user.Login)
	}

	if user.FirstName != "Oliver" || user.SecondName != "Smith" {
		t.Errorf("Expected name Oliver Smith, got %s %s", user.FirstName, user.SecondName)
	}

	if user.CreatedAt.IsZero() {
		t.Error("Expected non-zero CreatedAt time")
	}

	// Test missing fields
	_, err = NewUser("", "Oliver", "Smith", "hash")
	if err != ErrEmptyLogin {
		t.Errorf("Expected error %v, got %v", ErrEmptyLogin, err)
	}

	_, err = NewUser("osmith", "", "Smith", "hash")
	if err != ErrEmptyFirstName {
		t.Errorf("Expected error %v, got %v", ErrEmptyFirstName, err)
	}

	_, err = NewUser("osmith", "Oliver", "", "hash")
	if err != ErrEmptySecondName {
		t.Errorf("Expected error %v, got %v", ErrEmptySecondName, err)
	}

	_, err = NewUser("osmith", "Oliver", "Smith", "")
	if err != ErrEmptyHashedPassword {
		t.Errorf("Expected error %v, got %v", ErrEmptyHashedPassword, err)
	}
}

func TestUserValidate(t *testing.T) {
	validUser := User{
		ID:             uuid.New(),
		Login:          "osmith",
		FirstName:      "Oliver",
		SecondName:     "Smith",
		HashedPassword: "hashedpassword123",
	}

	// Test valid user
	if err := validUser.Validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	// Test invalid ID
	invalidUser := validUser
	invalidUser.ID = uuid.Nil
	if err := invalidUser.Validate(); err != ErrEmptyUserID {
		t.Errorf("Expected error %v, got %v", ErrEmptyUserID, err)
	}

	// Test empty login
	invalidUser = validUser
	invalidUser.Login = ""
	if err := invalidUser.Validate(); err != ErrEmptyLogin {
		t.Errorf("Expected error %v, got %v", ErrEmptyLogin, err)
	}

	// Test empty hash
	invalidUser = validUser
	invalidUser.HashedPassword = ""
	if err := invalidUser.Validate(); err != ErrEmptyHashedPassword {
		t.Errorf("Expected error %v, got %v", ErrEmptyHashedPassword, err)
	}
}
