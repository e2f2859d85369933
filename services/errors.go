package services

import "net/http"

// AppError is an expected failure carrying the HTTP status it maps to.
type AppError struct {
	Status  int
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func NotFound(what string) *AppError {
	return &AppError{Status: http.StatusNotFound, Message: what + " not found!"}
}

func Conflict(msg string) *AppError {
	return &AppError{Status: http.StatusConflict, Message: msg}
}

func Forbidden(msg string) *AppError {
	return &AppError{Status: http.StatusForbidden, Message: msg}
}

func BadRequest(msg string) *AppError {
	return &AppError{Status: http.StatusBadRequest, Message: msg}
}

func Unauthorized(msg string) *AppError {
	return &AppError{Status: http.StatusUnauthorized, Message: msg}
}

func Unprocessable(msg string) *AppError {
	return &AppError{Status: http.StatusUnprocessableEntity, Message: msg}
}

func TooLarge(msg string) *AppError {
	return &AppError{Status: http.StatusRequestEntityTooLarge, Message: msg}
}

var errNotAllowed = Forbidden("You are not allowed to modify this resource!")
