package validator

import (
	"log"

	"github.com/go-playground/validator/v10"

	"ayurcare_backend/internal/models"
)

// registerCustomRules registers the model-derived validation tags.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// A rule that fails to register is a startup error.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// 'is-role': account role must be a member of the closed role set
	mustRegister("is-role", validateRole)
}

func validateRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // emptiness is the 'required' tag's concern
	}
	return models.Role(value).Valid()
}
