// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"wealthdesk/internal/uuid"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("role", validateRole)
		_ = v.RegisterValidation("family_profile", validateFamilyProfile)
		_ = v.RegisterValidation("event_frequency", validateEventFrequency)
		_ = v.RegisterValidation("uuid_param", validateUUID)
	}
}

func validateRole(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "advisor", "viewer":
		return true
	}
	return false
}

func validateFamilyProfile(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "conservative", "moderate", "aggressive", "very_aggressive":
		return true
	}
	return false
}

func validateEventFrequency(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "single", "monthly", "annual":
		return true
	}
	return false
}

func validateUUID(fl validator.FieldLevel) bool {
	return uuid.IsValid(fl.Field().String())
}
