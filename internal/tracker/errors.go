package tracker

import "errors"

// Validation and lookup errors. The messages double as the response payload's
// "error" field, so the wording matches what clients of the original service
// already expect.
var (
	ErrUsernameRequired    = errors.New("Username required")
	ErrDescriptionRequired = errors.New("Description required (field can not be empty)")
	ErrDescriptionTooLong  = errors.New("Description must not exceed 20 characters")
	ErrDurationNaN         = errors.New("Duration must be a number")
	ErrUserNotFound        = errors.New("User ID does not exist")
)
