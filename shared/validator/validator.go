package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"unicode"

	val "github.com/go-playground/validator/v10"

	"github.com/reagan13/beach-management-system-java-sub000/shared/failure"
)

const (
	minUsernameLength = 6
	minPasswordLength = 8
)

var validate *val.Validate

// registerUsernamePolicy enforces the single authoritative username rule:
// at least 6 characters, letters and digits only.
func registerUsernamePolicy(field val.FieldLevel) bool {
	username, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	if len(username) < minUsernameLength {
		return false
	}

	for _, r := range username {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}

	return true
}

// registerPasswordPolicy enforces the single authoritative password rule:
// at least 8 characters with at least one letter and one digit.
func registerPasswordPolicy(field val.FieldLevel) bool {
	password, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	if len(password) < minPasswordLength {
		return false
	}

	var hasLetter, hasDigit bool

	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	return hasLetter && hasDigit
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	err := validate.RegisterValidation("username_policy", registerUsernamePolicy)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("password_policy", registerPasswordPolicy)
	if err != nil {
		panic(err)
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
