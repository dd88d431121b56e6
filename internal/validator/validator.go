package validator

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

const (
	MinPasswordLength = 6
	MaxNameLength     = 50
)

var loginPattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New()

	// Custom validators
	v.RegisterValidation("login_chars", validateLoginChars)

	return &Validator{validate: v}
}

func (v *Validator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

func validateLoginChars(fl validator.FieldLevel) bool {
	return loginPattern.MatchString(fl.Field().String())
}

// IsValidName checks the display-name rules used on registration and profile
// edit.
func IsValidName(name string) bool {
	return name != "" && len([]rune(name)) <= MaxNameLength
}

// IsValidLogin checks login shape: at least 3 characters, letters, digits and
// underscores only.
func IsValidLogin(login string) bool {
	return len(login) >= 3 && loginPattern.MatchString(login)
}

// IsValidPassword checks the minimum password length.
func IsValidPassword(password string) bool {
	return len(password) >= MinPasswordLength
}

// PasswordError returns a display message for an invalid password, or empty
// when the password is acceptable.
func PasswordError(password string) string {
	if password == "" {
		return "введите пароль"
	}
	if len(password) < MinPasswordLength {
		return fmt.Sprintf("пароль должен быть не менее %d символов", MinPasswordLength)
	}
	return ""
}
