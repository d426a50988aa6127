package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var messages = map[string]string{
	"required":       "{field} is required",
	"gt":             "{field} must be greater than {param}",
	"gte":            "{field} must be greater than or equal to {param}",
	"lte":            "{field} must be less than or equal to {param}",
	"oneof":          "{field} must be one of {param}",
	"max":            "{field} must be at most {param}",
	"min":            "{field} must be at least {param}",
	"dive":           "{field} has an invalid entry",
	"isodate":        "{field} must be a date in YYYY-MM-DD format",
	"phone":          "{field} must be a valid phone number",
	"email":          "{field} must be a valid email address",
	"notbeforefield": "{field} must not be before {param}",
}

// message renders every failed field, in declaration order, as one sentence
// per field joined by "; ".
func message(err error) string {
	var valErrors val.ValidationErrors
	if !errors.As(err, &valErrors) {
		return err.Error()
	}

	parts := make([]string, 0, len(valErrors))

	for _, valErr := range valErrors {
		template, ok := messages[valErr.Tag()]
		if !ok {
			parts = append(parts, valErr.Error())

			continue
		}

		text := strings.ReplaceAll(template, "{field}", fieldName(valErr))
		text = strings.ReplaceAll(text, "{param}", paramName(valErr))
		parts = append(parts, text)
	}

	return strings.Join(parts, "; ")
}

// fieldName prefers the JSON path, minus the root struct, so messages match
// what the client sent.
func fieldName(valErr val.FieldError) string {
	namespace := valErr.Namespace()
	if _, path, ok := strings.Cut(namespace, "."); ok {
		return path
	}

	return valErr.Field()
}

// paramName lowers the first letter of a sibling field reference so it reads
// like the JSON key it was declared next to.
func paramName(valErr val.FieldError) string {
	param := valErr.Param()
	if valErr.Tag() != "notbeforefield" || param == "" {
		return param
	}

	return strings.ToLower(param[:1]) + param[1:]
}
