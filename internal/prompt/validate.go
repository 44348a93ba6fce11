package prompt

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"
)

// LanguageCodes are the accepted voice and thread languages.
var LanguageCodes = []string{"EN", "ES", "DE", "NL", "FR", "IT", "PT", "JA"}

// Positions are the accepted playing positions.
var Positions = []string{"GK", "CB", "LB", "RB", "LWB", "RWB", "CDM", "CM", "CAM", "LM", "RM", "LW", "RW", "CF", "ST"}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("langcode", func(fl validator.FieldLevel) bool {
		return ValidLanguage(fl.Field().String())
	})
	return v
}

// ValidLanguage accepts an upper-case code from LanguageCodes that is also a
// well-formed BCP 47 language tag.
func ValidLanguage(code string) bool {
	found := false
	for _, c := range LanguageCodes {
		if c == code {
			found = true
			break
		}
	}
	if !found {
		return false
	}
	_, err := language.Parse(strings.ToLower(code))
	return err == nil
}

// field checks one answer against a validator tag.
func field(tag, message string) func(string) error {
	return func(s string) error {
		if err := validate.Var(s, tag); err != nil {
			return errors.New(message)
		}
		return nil
	}
}

// describe flattens validator errors into one line.
func describe(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	parts := make([]string, len(verrs))
	for i, fe := range verrs {
		parts[i] = fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag())
	}
	return fmt.Errorf("invalid input: %s", strings.Join(parts, ", "))
}
