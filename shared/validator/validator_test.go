package validator_test

import (
	"strings"
	"testing"

	"github.com/reagan13/beach-management-system-java-sub000/shared/validator"
)

type registrationPayload struct {
	Username string `json:"username" validate:"required,username_policy"`
	Password string `json:"password" validate:"required,password_policy"`
	Email    string `json:"email"    validate:"required,email"`
}

func TestValidateStruct_UsernamePolicy(t *testing.T) {
	tests := []struct {
		name        string
		username    string
		expectError bool
	}{
		{
			name:        "letters and digits",
			username:    "guest42",
			expectError: false,
		},
		{
			name:        "too short",
			username:    "abc12",
			expectError: true,
		},
		{
			name:        "contains spaces",
			username:    "guest 42",
			expectError: true,
		},
		{
			name:        "contains symbols",
			username:    "guest_42!",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := registrationPayload{
				Username: tt.username,
				Password: "Secret123",
				Email:    "guest@example.com",
			}

			err := validator.ValidateStruct(&data)

			if tt.expectError && err == nil {
				t.Errorf("expected validation error for username %q", tt.username)
			}

			if !tt.expectError && err != nil {
				t.Errorf("unexpected validation error for username %q: %v", tt.username, err)
			}
		})
	}
}

func TestValidateStruct_PasswordPolicy(t *testing.T) {
	tests := []struct {
		name        string
		password    string
		expectError bool
	}{
		{
			name:        "letters and digits",
			password:    "Secret123",
			expectError: false,
		},
		{
			name:        "too short",
			password:    "Sec1",
			expectError: true,
		},
		{
			name:        "letters only",
			password:    "SecretPassword",
			expectError: true,
		},
		{
			name:        "digits only",
			password:    "1234567890",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := registrationPayload{
				Username: "guest42",
				Password: tt.password,
				Email:    "guest@example.com",
			}

			err := validator.ValidateStruct(&data)

			if tt.expectError && err == nil {
				t.Errorf("expected validation error for password %q", tt.password)
			}

			if !tt.expectError && err != nil {
				t.Errorf("unexpected validation error for password %q: %v", tt.password, err)
			}
		})
	}
}

func TestValidate_ReadsBody(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		expectError bool
	}{
		{
			name:        "valid payload",
			body:        `{"username":"guest42","password":"Secret123","email":"guest@example.com"}`,
			expectError: false,
		},
		{
			name:        "malformed json",
			body:        `{"username":`,
			expectError: true,
		},
		{
			name:        "invalid email",
			body:        `{"username":"guest42","password":"Secret123","email":"not-an-email"}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data registrationPayload

			err := validator.Validate(strings.NewReader(tt.body), &data)

			if tt.expectError && err == nil {
				t.Errorf("expected error for body %q", tt.body)
			}

			if !tt.expectError && err != nil {
				t.Errorf("unexpected error for body %q: %v", tt.body, err)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	if err := validator.ValidateVar("guest@example.com", "email"); err != nil {
		t.Errorf("unexpected error for valid email: %v", err)
	}

	if err := validator.ValidateVar("not-an-email", "email"); err == nil {
		t.Error("expected error for invalid email")
	}
}
