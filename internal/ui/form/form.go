package form

import (
	"html"
	"strings"
	"unicode/utf8"

	"github.com/bornholm/upline/internal/constants"
	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
)

var (
	validate  = validator.New()
	sanitizer = bluemonday.StrictPolicy()
)

// Errors maps a form field to the first validation message raised for it.
type Errors map[string]string

func (e Errors) Add(field, message string) {
	if _, exists := e[field]; exists {
		return
	}

	e[field] = message
}

func (e Errors) Has(field string) bool {
	_, exists := e[field]
	return exists
}

func (e Errors) Get(field string) string {
	return e[field]
}

func (e Errors) Empty() bool {
	return len(e) == 0
}

// Text trims the value and strips any markup from it. The result is plain
// text, escaping is left to the templates.
func Text(value string) string {
	return strings.TrimSpace(html.UnescapeString(sanitizer.Sanitize(value)))
}

func (e Errors) Required(field, value string) bool {
	if strings.TrimSpace(value) == "" {
		e.Add(field, constants.Required(field))
		return false
	}

	return true
}

func (e Errors) Email(field, value string) bool {
	if !e.Required(field, value) {
		return false
	}

	if utf8.RuneCountInString(value) > constants.EmailMaxLength {
		e.Add(field, constants.MaxLength(field, constants.EmailMaxLength))
		return false
	}

	if err := validate.Var(value, "email"); err != nil {
		e.Add(field, constants.InvalidEmail())
		return false
	}

	return true
}

// Length checks the number of characters of the value. A zero bound is ignored.
func (e Errors) Length(field, value string, min, max int) bool {
	length := utf8.RuneCountInString(value)

	if min > 0 && length < min {
		e.Add(field, constants.MinLength(field, min))
		return false
	}

	if max > 0 && length > max {
		e.Add(field, constants.MaxLength(field, max))
		return false
	}

	return true
}

func (e Errors) Match(field, value, other, otherValue string) bool {
	if value != otherValue {
		e.Add(field, constants.Mismatch(field, other))
		return false
	}

	return true
}
