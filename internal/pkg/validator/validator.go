package validator

import (
	"github.com/go-playground/validator/v10"

	"github.com/chronopilferer/Trendy-Trip-Algorithm/internal/pkg/utils"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// "clock" validates 24-hour HH:MM strings ("08:00", "23:59").
	_ = validate.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
		return utils.ClockPattern.MatchString(fl.Field().String())
	})
}

// Validate runs struct validation with the shared validator instance
func Validate(s interface{}) error {
	return validate.Struct(s)
}

// GetValidator exposes the shared validator for custom configuration
func GetValidator() *validator.Validate {
	return validate
}
