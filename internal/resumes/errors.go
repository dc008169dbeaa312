package resumes

import "errors"

// ErrNotFound indicates the resume or version does not exist.
var ErrNotFound = errors.New("resume not found")

// ErrInvalidInput indicates a rejected upload or request payload.
var ErrInvalidInput = errors.New("invalid input")
