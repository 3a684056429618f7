package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// HomeRequest carries the client-controlled inputs of a home-view load.
// Everything else (identity, realm) is resolved server-side.
type HomeRequest struct {
	// Stream and Topic narrow the view to one stream (and optionally one
	// topic within it).
	Stream string `query:"stream" validate:"omitempty,min=1,max=60"`
	Topic  string `query:"topic" validate:"omitempty,min=1,max=60"`
}

// RequestValidator adapts go-playground/validator to echo's Validator
// interface. It is installed once on the echo instance.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator creates a new RequestValidator instance.
func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// Validate implements echo.Validator.
func (v *RequestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
