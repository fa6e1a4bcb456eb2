package analyses

import "errors"

var (
	// ErrNotFound indicates the analysis does not exist or belongs to another user.
	ErrNotFound = errors.New("analysis not found")
	// ErrTextTooShort indicates the submitted text is below the minimum length.
	ErrTextTooShort = errors.New("text too short")
	// ErrTextTooLong indicates the submitted text exceeds the maximum length.
	ErrTextTooLong = errors.New("text too long")
	// ErrInvalidType indicates an unknown analysis type.
	ErrInvalidType = errors.New("invalid analysis type")
)
