// Package common defines the closed error set shared by repositories,
// services, and the HTTP boundary.
package common

import "errors"

var (

	// repository specific errors
	ErrNotFound         = errors.New("not found")
	ErrDuplicateAccount = errors.New("account already exists")

	// service specific errors
	ErrInternal           = errors.New("internal error")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrServiceUnavailable = errors.New("service unavailable")

	// token verification errors
	ErrTokenExpired          = errors.New("token expired")
	ErrTokenInvalidSignature = errors.New("invalid token signature")
	ErrTokenMalformed        = errors.New("malformed token")
)
