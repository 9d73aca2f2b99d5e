// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// validCurrencies contains the ISO 4217 codes statements are expected in.
var validCurrencies = map[string]bool{
	"TRY": true, "USD": true, "EUR": true, "GBP": true, "CHF": true,
	"JPY": true, "SAR": true, "AED": true, "RUB": true, "CNY": true,
}

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("iso4217", validateISO4217)
		_ = v.RegisterValidation("category_type", validateCategoryType)
		_ = v.RegisterValidation("source_type", validateSourceType)
		_ = v.RegisterValidation("ai_provider", validateAIProvider)
	}
}

func validateISO4217(fl validator.FieldLevel) bool {
	return validCurrencies[fl.Field().String()]
}

func validateCategoryType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "income", "expense":
		return true
	}
	return false
}

func validateSourceType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "statement", "manual":
		return true
	}
	return false
}

func validateAIProvider(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "gemini", "openai", "deepseek":
		return true
	}
	return false
}
