// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
)

// emailPattern is the address shape accepted on signup.
var emailPattern = regexp.MustCompile(`^[-\w.]+@([-\w]+.)+[-\w]{2,4}$`)

// fieldMessages overrides the generic translation for a "<json field>.<tag>"
// failure.
var fieldMessages = map[string]string{
	"name.min":           "Name must be 1 to 100 characters long",
	"name.max":           "Name must be 1 to 100 characters long",
	"email.min":          "Email must be 5 to 255 characters long",
	"email.max":          "Email must be 5 to 255 characters long",
	"email.email_format": "Email regex check failed",
	"sex.oneof":          "Sex must be one of M, F, N",
	"id.min":             "Id must be under 255 characters long",
	"id.max":             "Id must be under 255 characters long",
	"password.min":       "Password must be over 6 characters long",
	"password.max_bytes": "Password must be at most 72 bytes long",
	"recaptcha.required": "reCAPTCHA token was not passed",
}

// ValidationError lists every rule a value broke, in field order.
// It matches [ErrInvalidRequest] with errors.Is.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidRequest
}

// RequestValidator validates request structs by their `validate` tags.
// It is safe for concurrent use.
type RequestValidator struct {
	validate *validator.Validate
	trans    ut.Translator
}

// NewRequestValidator constructs a RequestValidator with the English
// translations and the custom "email_format" and "max_bytes" tags registered.
func NewRequestValidator() (*RequestValidator, error) {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)

	locale := en.New()
	trans, _ := ut.New(locale, locale).GetTranslator("en")
	if err := entranslations.RegisterDefaultTranslations(v, trans); err != nil {
		return nil, fmt.Errorf("registering english translations: %w", err)
	}

	rules := []struct {
		tag     string
		fn      validator.Func
		message string
	}{
		{"email_format", validateEmailFormat, "{0} must be a valid email address"},
		{"max_bytes", validateMaxBytes, "{0} must be at most {1} bytes long"},
	}
	for _, rule := range rules {
		if err := registerRule(v, trans, rule.tag, rule.fn, rule.message); err != nil {
			return nil, err
		}
	}

	return &RequestValidator{validate: v, trans: trans}, nil
}

// Validate checks a struct (or a pointer to one). When fields are given only
// those struct fields are checked.
func (r *RequestValidator) Validate(ctx context.Context, value any, fields ...string) error {
	if !isStruct(value) {
		return fmt.Errorf("%w: %T", ErrUnsupportedType, value)
	}

	var err error
	if len(fields) > 0 {
		err = r.validate.StructPartialCtx(ctx, value, fields...)
	} else {
		err = r.validate.StructCtx(ctx, value)
	}
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return fmt.Errorf("validating %T: %w", value, err)
	}

	messages := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		messages = append(messages, r.message(fe))
	}

	return &ValidationError{Messages: messages}
}

func (r *RequestValidator) message(fe validator.FieldError) string {
	if msg, ok := fieldMessages[fe.Field()+"."+fe.Tag()]; ok {
		return msg
	}
	return fe.Translate(r.trans)
}

func registerRule(v *validator.Validate, trans ut.Translator, tag string, fn validator.Func, message string) error {
	if err := v.RegisterValidation(tag, fn); err != nil {
		return fmt.Errorf("registering %s validation: %w", tag, err)
	}

	err := v.RegisterTranslation(tag, trans,
		func(t ut.Translator) error {
			return t.Add(tag, message, true)
		},
		func(t ut.Translator, fe validator.FieldError) string {
			msg, _ := t.T(tag, fe.Field(), fe.Param())
			return msg
		},
	)
	if err != nil {
		return fmt.Errorf("registering %s translation: %w", tag, err)
	}

	return nil
}

// validateMaxBytes bounds the UTF-8 length of a string; "max" counts runes.
func validateMaxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return len(fl.Field().String()) <= limit
}

func validateEmailFormat(fl validator.FieldLevel) bool {
	return emailPattern.MatchString(fl.Field().String())
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	return name
}

func isStruct(value any) bool {
	t := reflect.TypeOf(value)
	if t == nil {
		return false
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Kind() == reflect.Struct
}
