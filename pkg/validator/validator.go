package validator

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Custom tags for the clinic's wire formats.
const (
	tagDate    = "date"    // YYYY-MM-DD
	tagClock   = "clock"   // HH:MM
	tagWeekday = "weekday" // 1 = Monday .. 5 = Friday
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()
	v.RegisterValidation(tagDate, layoutValidator("2006-01-02"))
	v.RegisterValidation(tagClock, layoutValidator("15:04"))
	v.RegisterValidation(tagWeekday, func(fl validator.FieldLevel) bool {
		day := fl.Field().Int()
		return day >= 1 && day <= 5
	})

	return &CustomValidator{
		validator: v,
	}
}

func layoutValidator(layout string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		_, err := time.Parse(layout, fl.Field().String())
		return err == nil
	}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required":
				errors[field] = field + " is required"
			case "min":
				errors[field] = field + " must be at least " + e.Param()
			case "max":
				errors[field] = field + " must be at most " + e.Param()
			case "gte":
				errors[field] = field + " must be greater than or equal to " + e.Param()
			case "lte":
				errors[field] = field + " must be less than or equal to " + e.Param()
			case "oneof":
				errors[field] = field + " must be one of: " + e.Param()
			case tagDate:
				errors[field] = field + " must be a date formatted as YYYY-MM-DD"
			case tagClock:
				errors[field] = field + " must be a time formatted as HH:MM"
			case tagWeekday:
				errors[field] = field + " must be a working day between 1 (Monday) and 5 (Friday)"
			default:
				errors[field] = field + " is invalid"
			}
		}
	}

	return errors
}
