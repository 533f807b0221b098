package content

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidRequest is wrapped by every error Validate returns.
var ErrInvalidRequest = errors.New("invalid content request")

// validate is shared; validator.Validate caches struct metadata and is safe
// for concurrent use.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON names so callers see the names they sent.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// FieldError describes one field that failed validation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError lists every field of an Input that failed validation.
type ValidationError struct {
	Fields []FieldError
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return fmt.Sprintf("%s: %s", ErrInvalidRequest, strings.Join(msgs, "; "))
}

// Unwrap lets errors.Is match ErrInvalidRequest.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidRequest
}

// Validate checks raw input against the request schema and returns the
// normalized Request with defaults applied. A missing tone becomes
// DefaultTone; an explicitly empty, null or unknown tone is rejected.
func Validate(in Input) (Request, error) {
	var fields []FieldError
	if err := validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return Request{}, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
		}
		fields = fieldErrors(verrs)
	}
	for _, name := range in.nullFields {
		fields = append(fields, FieldError{
			Field:   name,
			Message: fmt.Sprintf("%s must be a string, not null", name),
		})
	}
	if len(fields) > 0 {
		return Request{}, &ValidationError{Fields: fields}
	}

	tone := DefaultTone
	if in.Tone != nil {
		tone = Tone(*in.Tone)
	}

	return Request{
		Topic:       in.Topic,
		ContentType: ContentType(in.ContentType),
		Tone:        tone,
		Keywords:    in.Keywords,
	}, nil
}

func fieldErrors(verrs validator.ValidationErrors) []FieldError {
	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{
			Field:   fe.Field(),
			Message: fieldMessage(fe),
		})
	}
	return fields
}

// fieldMessages overrides the generic reason for a field and tag, keyed
// "field.tag".
var fieldMessages = map[string]string{
	"topic.min": "Topic must be at least 3 characters long.",
}

// fieldMessage maps a validator tag to a readable reason.
func fieldMessage(fe validator.FieldError) string {
	if msg, ok := fieldMessages[fe.Field()+"."+fe.Tag()]; ok {
		return msg
	}

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", fe.Field(), fe.Param())
	case "oneof":
		allowed := strings.Join(strings.Fields(fe.Param()), ", ")
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), allowed)
	default:
		return fmt.Sprintf("%s failed on the '%s' rule", fe.Field(), fe.Tag())
	}
}
