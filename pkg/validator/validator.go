package validator

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"

	"storefront-backend/pkg/apperror"
)

// maxBodyBytes bounds JSON request bodies.
const maxBodyBytes = 1 << 20

var validate = validator.New(validator.WithRequiredStructEnabled())

func init() {
	// Report JSON field names instead of Go field names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
}

// Validate validates a struct using go-playground/validator tags.
func Validate(s any) error {
	if err := validate.Struct(s); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			return apperror.Wrap(apperror.InvalidInput, describe(validationErrors), err)
		}
		return apperror.Wrap(apperror.InvalidInput, "Invalid input", err)
	}
	return nil
}

// DecodeAndValidate reads a JSON body into dst and validates it.
// Unknown fields, trailing data and malformed JSON are rejected as invalid input.
func DecodeAndValidate(r *http.Request, dst any) error {
	if err := Decode(r, dst); err != nil {
		return err
	}
	return Validate(dst)
}

// Decode reads a single strict JSON object from the request body into dst.
// Only whitespace may follow the object.
func Decode(r *http.Request, dst any) error {
	if r.Body == nil {
		return apperror.NewInvalidInput("Invalid input: request body is required")
	}
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return apperror.Wrap(apperror.InvalidInput, "Invalid input: unreadable request body", err)
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return apperror.Wrap(apperror.InvalidInput, "Invalid input: request body is required", err)
		}
		return apperror.Wrap(apperror.InvalidInput, "Invalid input: malformed JSON body", err)
	}
	if rest := body[min(dec.InputOffset(), int64(len(body))):]; len(bytes.TrimSpace(rest)) > 0 {
		return apperror.NewInvalidInput("Invalid input: request body must contain a single JSON object")
	}
	return nil
}

func describe(errs validator.ValidationErrors) string {
	msgs := make([]string, 0, len(errs))
	for _, fe := range errs {
		msgs = append(msgs, fmt.Sprintf("%s %s", fe.Field(), msgForTag(fe)))
	}
	return "Invalid input: " + strings.Join(msgs, "; ")
}

func msgForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "url":
		return "must be a valid URL"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	default:
		return fmt.Sprintf("failed on '%s' validation", fe.Tag())
	}
}
