package models

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Error codes carried by AppError.
const (
	CodeNotFound    = "NOT_FOUND"
	CodeValidation  = "VALIDATION_ERROR"
	CodeConflict    = "CONFLICT"
	CodeBadUpstream = "BAD_UPSTREAM"
	CodeInternal    = "INTERNAL_ERROR"
	CodeRateLimited = "RATE_LIMITED"
)

// ErrorResponse is the JSON body written for every failed request.
type ErrorResponse struct {
	Msg string `json:"msg"`
}

// MessageResponse is the JSON body of a successful favorite mutation.
type MessageResponse struct {
	Msg string `json:"msg"`
}

// AppError represents a custom application error
type AppError struct {
	Code    string
	Message string
	Status  int
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// StatusCode returns the HTTP status carried by the error, 500 when unset.
func (e *AppError) StatusCode() int {
	if e.Status == 0 {
		return fiber.StatusInternalServerError
	}
	return e.Status
}

// Predefined error constructors
func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: resource + " not found",
		Status:  fiber.StatusNotFound,
	}
}

func NewValidationError(message string) *AppError {
	return &AppError{
		Code:    CodeValidation,
		Message: message,
		Status:  fiber.StatusBadRequest,
	}
}

func NewConflictError(message string) *AppError {
	return &AppError{
		Code:    CodeConflict,
		Message: message,
		Status:  fiber.StatusConflict,
	}
}

func NewBadUpstreamError(message string, err error) *AppError {
	return &AppError{
		Code:    CodeBadUpstream,
		Message: message,
		Status:  fiber.StatusBadGateway,
		Err:     err,
	}
}

func NewRateLimitedError() *AppError {
	return &AppError{
		Code:    CodeRateLimited,
		Message: "Too many requests, please try again later",
		Status:  fiber.StatusTooManyRequests,
	}
}

func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    CodeInternal,
		Message: "Internal server error",
		Status:  fiber.StatusInternalServerError,
		Err:     err,
	}
}

// RespondWithError writes the standardized {"msg": ...} body with the error's status.
// Wrapped causes are never sent to the client.
func RespondWithError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	msg := "Internal server error"

	var appErr *AppError
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &appErr):
		status = appErr.StatusCode()
		msg = appErr.Message
	case errors.As(err, &fiberErr):
		status = fiberErr.Code
		msg = fiberErr.Message
	}

	return c.Status(status).JSON(ErrorResponse{Msg: msg})
}

// ErrorHandler is the app-wide fiber error handler. Handlers return errors and
// this is the single place they are turned into responses.
func ErrorHandler(c *fiber.Ctx, err error) error {
	return RespondWithError(c, err)
}
