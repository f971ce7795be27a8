package common

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationMiddleware checks `validate` struct tags on every request before its
// handler runs. Requests that are not structs pass through.
func ValidationMiddleware() Middleware {
	validate := validator.New(validator.WithRequiredStructEnabled())
	return func(ctx context.Context, request Request, next HandlerFunc) (Response, error) {
		if err := validate.Struct(request); err != nil {
			var invalid *validator.InvalidValidationError
			if !errors.As(err, &invalid) {
				return nil, formatValidationError(err)
			}
		}
		return next(ctx, request)
	}
}

func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}
	messages := make([]string, 0, len(validationErrs))
	for _, e := range validationErrs {
		messages = append(messages, fmt.Sprintf("field '%s' failed validation: %s", e.Field(), e.Tag()))
	}
	return fmt.Errorf("invalid request: %s", strings.Join(messages, "; "))
}
