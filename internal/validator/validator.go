// Package validator holds the entity validators run before any database
// operation. The same constraints are enforced a second time by the schema,
// so either layer failing yields a handled 422 response.
package validator

import (
	"errors"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// ValidationError carries a client-safe message for a rejected entity.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// UserCandidate holds the signup fields checked before persistence.
type UserCandidate struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

// RecipeCandidate holds the recipe fields checked before persistence.
// MinutesToComplete is a pointer so an absent JSON field is distinguishable
// from an explicit zero.
type RecipeCandidate struct {
	Title             string `validate:"required"`
	Instructions      string `validate:"required,instructions"`
	MinutesToComplete *int   `validate:"required"`
}

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New()
	// Character count of the untrimmed string, boundary at exactly 50.
	// Counting runes keeps this layer consistent with the char_length
	// CHECK the schema enforces.
	_ = v.RegisterValidation("instructions", func(fl validator.FieldLevel) bool {
		return utf8.RuneCountInString(fl.Field().String()) >= 50
	})
	return v
}

// ValidateUser rejects a signup candidate with missing credentials.
// Username uniqueness is checked separately against the store.
func ValidateUser(c UserCandidate) error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return &ValidationError{Message: "Username and password are required"}
		}
		return err
	}
	return nil
}

// ValidateRecipe rejects a recipe candidate with missing fields or
// instructions shorter than 50 characters. Missing fields take precedence
// over the length check.
func ValidateRecipe(c RecipeCandidate) error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if fe.Tag() == "required" {
				return &ValidationError{Message: "Title, instructions, and minutes_to_complete are required"}
			}
		}
		return &ValidationError{Message: "Instructions must be at least 50 characters long"}
	}
	return err
}
