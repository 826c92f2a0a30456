package wizard

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	phoneSeparators = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "", ".", "")
	phonePattern    = regexp.MustCompile(`^(?:\+?91|0)?[6-9][0-9]{9}$`)
)

// NormalizePhone strips common separators from a phone number.
func NormalizePhone(raw string) string {
	return phoneSeparators.Replace(strings.TrimSpace(raw))
}

// IsValidPhone accepts ten digit mobile numbers with an optional +91 or 0 prefix.
func IsValidPhone(raw string) bool {
	return phonePattern.MatchString(NormalizePhone(raw))
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	mustRegister(v, "phone", func(fl validator.FieldLevel) bool {
		return IsValidPhone(fl.Field().String())
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %q validation: %v", tag, err))
	}
}

var validate = newValidator()

// fieldMessages turns validator errors into one user-facing line.
func fieldMessages(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return strings.Join(msgs, "; ")
}

func fieldMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return "enter a valid email address"
	case "phone":
		return "enter a valid 10 digit phone number"
	case "min", "max":
		return fmt.Sprintf("%s must be between 2 and 120 characters", field)
	}
	return fmt.Sprintf("%s is invalid", field)
}
