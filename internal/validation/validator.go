// Artwalk - Public Art Catalogue and Nearby Attraction Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/artwalk

// Package validation checks request bodies with go-playground/validator v10.
//
// A single validator instance is shared by all handlers; it caches struct
// metadata and reports fields by their JSON names so that error messages
// match what clients sent.
//
//	var req models.RegisterRequest
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    respondJSON(w, http.StatusBadRequest, verr.ToResponse())
//	    return
//	}
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/tomtom215/artwalk/internal/models"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// FieldError is one failed rule on one field.
type FieldError struct {
	field   string
	tag     string
	param   string
	message string
}

// Field returns the JSON name of the field that failed.
func (e FieldError) Field() string { return e.field }

// Tag returns the rule that failed, e.g. "email".
func (e FieldError) Tag() string { return e.tag }

// Param returns the rule parameter, e.g. "8" for "min=8".
func (e FieldError) Param() string { return e.param }

func (e FieldError) Error() string { return e.message }

// RequestValidationError collects every failed rule of one request body.
type RequestValidationError struct {
	errors []FieldError
}

// Errors returns the individual field failures.
func (ve *RequestValidationError) Errors() []FieldError {
	return ve.errors
}

func (ve *RequestValidationError) Error() string {
	if len(ve.errors) == 0 {
		return "validation failed"
	}
	messages := make([]string, len(ve.errors))
	for i, err := range ve.errors {
		messages[i] = err.message
	}
	return strings.Join(messages, "; ")
}

// ToResponse converts the failure into the 400 response body.
func (ve *RequestValidationError) ToResponse() models.ValidationErrorResponse {
	resp := models.ValidationErrorResponse{Message: ve.Error()}
	if len(ve.errors) > 0 {
		resp.Fields = make(map[string]string, len(ve.errors))
		for _, err := range ve.errors {
			resp.Fields[err.field] = err.message
		}
	}
	return resp
}

// GetValidator returns the shared validator instance.
func GetValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(jsonFieldName)
	})
	return validate
}

func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	default:
		return name
	}
}

// ValidateStruct validates s and returns nil when every rule passes.
func ValidateStruct(s interface{}) *RequestValidationError {
	err := GetValidator().Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return &RequestValidationError{
			errors: []FieldError{{field: "body", tag: "invalid", message: "request body is invalid"}},
		}
	}

	fieldErrors := make([]FieldError, len(validationErrs))
	for i, fe := range validationErrs {
		fieldErrors[i] = FieldError{
			field:   fe.Field(),
			tag:     fe.Tag(),
			param:   fe.Param(),
			message: translateError(fe),
		}
	}
	return &RequestValidationError{errors: fieldErrors}
}

// Required reports a missing field the same way ValidateStruct would.
// Handlers use it for fields that are optional on update but required on create.
func Required(field string) *RequestValidationError {
	return &RequestValidationError{
		errors: []FieldError{{field: field, tag: "required", message: field + " is required"}},
	}
}

var errorMessageTemplates = map[string]string{
	"required":  "%s is required",
	"email":     "%s must be a valid email address",
	"mac":       "%s must be a valid MAC address",
	"latitude":  "%s must be a valid latitude (-90 to 90)",
	"longitude": "%s must be a valid longitude (-180 to 180)",
}

var errorMessageWithParam = map[string]string{
	"oneof":    "%s must be one of: %s",
	"datetime": "%s must be a date in the form %s",
	"gte":      "%s must be greater than or equal to %s",
	"lte":      "%s must be less than or equal to %s",
}

func translateError(fe validator.FieldError) string {
	field := fe.Field()
	tag := fe.Tag()
	param := fe.Param()

	if template, ok := errorMessageTemplates[tag]; ok {
		return fmt.Sprintf(template, field)
	}
	if template, ok := errorMessageWithParam[tag]; ok {
		if tag == "datetime" && param == "2006-01-02" {
			param = "YYYY-MM-DD"
		}
		return fmt.Sprintf(template, field, param)
	}
	return translateMinMax(fe, field, tag, param)
}

func translateMinMax(fe validator.FieldError, field, tag, param string) string {
	isString := fe.Kind() == reflect.String

	switch tag {
	case "min":
		if isString {
			return fmt.Sprintf("%s must be at least %s characters", field, param)
		}
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "max":
		if isString {
			return fmt.Sprintf("%s must be at most %s characters", field, param)
		}
		return fmt.Sprintf("%s must be at most %s", field, param)
	default:
		return fmt.Sprintf("%s failed %s validation", field, tag)
	}
}
