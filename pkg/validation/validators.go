package validation

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("cpf", CPFValidator)
	_ = v.RegisterValidation("cnpj", CNPJValidator)
	_ = v.RegisterValidation("br_state", StateValidator)
	_ = v.RegisterValidation("adult", AdultValidator)
}

// CPFValidator validates a CPF document number field
func CPFValidator(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true // Optional, use required if needed
	}
	return ValidCPF(val)
}

// CNPJValidator validates a CNPJ document number field
func CNPJValidator(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return ValidCNPJ(val)
}

// StateValidator validates a two-letter Brazilian state code field
func StateValidator(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return ValidStateCode(val)
}

// AdultValidator validates that a date-of-birth field is 18+ years back
func AdultValidator(fl validator.FieldLevel) bool {
	dob, ok := fl.Field().Interface().(time.Time)
	if !ok || dob.IsZero() {
		return true
	}
	return AtLeast18(dob)
}
