package domain

import "errors"

// Business-rule failures. The messages are part of the API contract and are
// returned verbatim in error bodies, so they keep their user-facing casing.
var (
	ErrCardNotFound          = errors.New("Card not found")
	ErrCardAlreadyExists     = errors.New("Card already exists")
	ErrCardExpired           = errors.New("Card has expired")
	ErrInvalidCardHolder     = errors.New("Invalid card holder")
	ErrInvalidExpirationDate = errors.New("Invalid expiration date")
	ErrInvalidCvv            = errors.New("Invalid CVV")
	ErrInsufficientFunds     = errors.New("Insufficient funds")

	ErrUserAlreadyExists     = errors.New("User already exists")
	ErrUserNotFound          = errors.New("User does not exist")
	ErrInvalidPassword       = errors.New("Invalid password")
	ErrInvalidOrExpiredToken = errors.New("Invalid or expired refresh token")
	ErrNotRefreshToken       = errors.New("Not a refresh token")
)

var businessErrors = []error{
	ErrCardNotFound,
	ErrCardAlreadyExists,
	ErrCardExpired,
	ErrInvalidCardHolder,
	ErrInvalidExpirationDate,
	ErrInvalidCvv,
	ErrInsufficientFunds,
	ErrUserAlreadyExists,
	ErrUserNotFound,
	ErrInvalidPassword,
	ErrInvalidOrExpiredToken,
	ErrNotRefreshToken,
}

// IsBusinessError reports whether err is an expected business-rule failure
// that handlers surface as a 400 with the error message, as opposed to an
// unexpected failure that becomes a generic 500.
func IsBusinessError(err error) bool {
	for _, e := range businessErrors {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}
