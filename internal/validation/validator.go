package validation

import (
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with custom ledger rules
type Validator struct {
	validate *validator.Validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("account_number", validateAccountNumber)
	_ = v.RegisterValidation("holder_name", validateHolderName)
	_ = v.RegisterValidation("pin", validatePin)
	_ = v.RegisterValidation("not_future", validateNotFuture)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Struct validates a struct against its validate tags
func (v *Validator) Struct(s any) error {
	return v.validate.Struct(s)
}

// FieldErrors extracts a field-name -> failed-rule map from a validation error.
// Returns nil if the error is not a validator error.
func (v *Validator) FieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if ok := errorsAs(err, &verrs); !ok {
		return nil
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fe.Tag()
	}
	return fields
}

func errorsAs(err error, target *validator.ValidationErrors) bool {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return false
	}
	*target = verrs
	return true
}

// Custom validation functions

// validateAccountNumber validates that an account number is exactly 10
// characters and not blank
func validateAccountNumber(fl validator.FieldLevel) bool {
	accountNumber := fl.Field().String()
	return len(accountNumber) == 10 && strings.TrimSpace(accountNumber) != ""
}

// validateHolderName validates that a holder name has at least 2 meaningful characters
func validateHolderName(fl validator.FieldLevel) bool {
	return len(strings.TrimSpace(fl.Field().String())) >= 2
}

// validatePin validates that a PIN is non-blank and at least 4 characters
func validatePin(fl validator.FieldLevel) bool {
	pin := fl.Field().String()
	return strings.TrimSpace(pin) != "" && len(pin) >= 4
}

// validateNotFuture validates that a date is not in the future
func validateNotFuture(fl validator.FieldLevel) bool {
	date, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return false
	}
	return !date.After(time.Now())
}
