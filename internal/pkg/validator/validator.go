// Package validator wraps go-playground/validator with the project's custom
// tags and a flattened error format.
//
// Custom tags:
//
//	topicname  a Kafka topic name fragment: 1 to 249 characters from [a-zA-Z0-9._-]
package validator

import (
	"errors"
	"fmt"
	"regexp"

	gvalidator "github.com/go-playground/validator/v10"
)

// ErrValidationFailed heads the joined error returned by Validate.
var ErrValidationFailed = errors.New("struct validation failed")

var validator *gvalidator.Validate

// Example: "'Brokers': value '[]' does not meet the requirements for the 'min' validation"
const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

var topicNamePattern = regexp.MustCompile(`^[a-zA-Z0-9._-]{1,249}$`)

func validateTopicName(fl gvalidator.FieldLevel) bool {
	return topicNamePattern.MatchString(fl.Field().String())
}

func init() {
	validator = gvalidator.New(gvalidator.WithRequiredStructEnabled())

	if err := validator.RegisterValidation("topicname", validateTopicName); err != nil {
		panic(err)
	}
}

// formatError joins ErrValidationFailed with one line per failing field.
// Errors that are not validation errors are returned as is.
func formatError(err error) error {
	var fieldErrs gvalidator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	errs := make([]error, 0, len(fieldErrs)+1)
	errs = append(errs, ErrValidationFailed)
	for _, fe := range fieldErrs {
		errs = append(errs, fmt.Errorf(errStringFormat, fe.Field(), fe.Value(), fe.Tag()))
	}

	return errors.Join(errs...)
}

// Validate checks v against its `validate` tags.
//
//	type Config struct {
//	    TopicPrefix string `validate:"required,topicname"`
//	}
//
//	if err := validator.Validate(cfg); errors.Is(err, validator.ErrValidationFailed) {
//	    // report err
//	}
func Validate(v any) error {
	if err := validator.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}
