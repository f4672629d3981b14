package services

import "errors"

// Sentinel errors mapped to HTTP statuses by the handler layer.
var (
	ErrNotFound       = errors.New("resource not found")
	ErrDuplicate      = errors.New("resource already exists")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
	ErrMailerNotReady = errors.New("email transport unavailable")
	ErrNoRecipients   = errors.New("no recipients matched the request")
)

// ErrInvalidCredentials is returned for both unknown email and wrong password
// so the response does not reveal which accounts exist.
var ErrInvalidCredentials = errors.New("Invalid email or password!")
