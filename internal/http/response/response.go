// Package response contains the helper types and functions the HTTP
// handlers use to build uniform JSON responses for successes, errors and
// validation failures.
package response

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator"

	"github.com/Aaryashkc/Client-domain-management/internal/models"
)

// Response is the standard JSON response envelope.
// Status is "OK" or "Error"; Error carries the message on failure and
// Data carries the payload on success.
type Response struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
	Data   any    `json:"data,omitempty"`
}

// ErrorResponse is the error shape referenced by the Swagger annotations.
type ErrorResponse struct {
	Status string `json:"status" example:"Error"`
	Error  string `json:"error" example:"invalid request body"`
}

const (
	// StatusOK is the status value of a successful response.
	StatusOK = "OK"
	// StatusError is the status value of a failed response.
	StatusError = "Error"
)

// StatusOKWithData returns a successful Response wrapping data.
func StatusOKWithData(data any) Response {
	return Response{
		Status: StatusOK,
		Data:   data,
	}
}

// Error returns an ErrorResponse with the given message.
func Error(msg string) ErrorResponse {
	return ErrorResponse{
		Status: StatusError,
		Error:  msg,
	}
}

// ValidationError builds an error Response from struct tag violations.
// Each violation becomes a human-readable sentence, joined by commas.
func ValidationError(errs validator.ValidationErrors) Response {
	var errsMsgs []string

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is a required field", err.Field()))
		case "email":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be a valid email address", err.Field()))
		case "uuid":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s can contain only uuid", err.Field()))
		case "oneof":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be one of: %s", err.Field(), err.Param()))
		case "min":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is too short", err.Field()))
		default:
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is not a valid", err.Field()))
		}
	}
	return Response{
		Status: StatusError,
		Error:  strings.Join(errsMsgs, ", "),
	}
}

// FieldErrors builds an error Response from domain-rule violations, the
// checks that cannot be expressed as struct tags.
func FieldErrors(errs []models.FieldError) Response {
	var errsMsgs []string
	for _, err := range errs {
		errsMsgs = append(errsMsgs, err.String())
	}
	return Response{
		Status: StatusError,
		Error:  strings.Join(errsMsgs, ", "),
	}
}
