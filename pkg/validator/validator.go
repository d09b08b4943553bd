package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

func FormatValidationError(err error) string {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		var messages []string
		for _, fieldError := range validationErrors {
			messages = append(messages, getFieldErrorMessage(fieldError))
		}
		return strings.Join(messages, "; ")
	}
	return err.Error()
}

func getFieldErrorMessage(fe validator.FieldError) string {
	field := getFieldName(fe.Field())

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		if fe.Type().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		if fe.Type().String() == "string" {
			return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "eqfield":
		return fmt.Sprintf("%s must match %s", field, getFieldName(fe.Param()))
	default:
		return fmt.Sprintf("%s is not valid", field)
	}
}

func getFieldName(field string) string {
	fieldNames := map[string]string{
		"FullName":         "full name",
		"Email":            "email",
		"Password":         "password",
		"ConfirmPassword":  "confirmPassword",
		"StudentID":        "studentId",
		"Role":             "role",
		"Title":            "title",
		"Content":          "content",
		"ImportanceLevel":  "importanceLevel",
		"LegalTopic":       "legalTopic",
		"Tags":             "tags",
		"LegalPrinciple":   "legalPrinciple",
		"Citation":         "citation",
		"Year":             "citation.year",
		"LawReport":        "citation.lawReport",
		"Page":             "citation.page",
		"NumQuizGenerated": "numQuizGenerated",
	}

	if name, ok := fieldNames[field]; ok {
		return name
	}
	return field
}
