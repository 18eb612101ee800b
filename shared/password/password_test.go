package password_test

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/reagan13/beach-management-system-java-sub000/shared/password"
)

func TestConstants(t *testing.T) {
	if password.DefaultCost != bcrypt.DefaultCost {
		t.Errorf("expected DefaultCost to be %d, got %d", bcrypt.DefaultCost, password.DefaultCost)
	}
}

func TestHash(t *testing.T) {
	tests := []struct {
		name        string
		password    string
		expectError bool
	}{
		{
			name:        "valid password",
			password:    "validPassword123",
			expectError: false,
		},
		{
			name:        "empty password",
			password:    "",
			expectError: true,
		},
		{
			name:        "short password",
			password:    "abc",
			expectError: false,
		},
		{
			name:        "long password",
			password:    strings.Repeat("a", 70),
			expectError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := password.Hash(tt.password)

			if tt.expectError {
				if err == nil {
					t.Error("expected error, got nil")
				}

				return
			}

			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}

			if hash == tt.password {
				t.Error("hash should not equal the plain password")
			}
		})
	}
}

func TestVerify(t *testing.T) {
	hash, err := password.Hash("correctPassword1")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	tests := []struct {
		name        string
		password    string
		hash        string
		expectError error
	}{
		{
			name:        "matching password",
			password:    "correctPassword1",
			hash:        hash,
			expectError: nil,
		},
		{
			name:        "wrong password",
			password:    "wrongPassword1",
			hash:        hash,
			expectError: password.ErrInvalidPassword,
		},
		{
			name:        "empty password",
			password:    "",
			hash:        hash,
			expectError: password.ErrInvalidPassword,
		},
		{
			name:        "empty hash",
			password:    "correctPassword1",
			hash:        "",
			expectError: password.ErrInvalidPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := password.Verify(tt.password, tt.hash)

			if tt.expectError == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}

				return
			}

			if !errors.Is(err, tt.expectError) {
				t.Errorf("expected error %v, got %v", tt.expectError, err)
			}
		})
	}
}
