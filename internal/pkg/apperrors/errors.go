package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenNotFound      = errors.New("token not found")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// User errors
var (
	ErrUserNotFound  = errors.New("user not found")
	ErrUsernameTaken = errors.New("username already in use")
	ErrEmailTaken    = errors.New("email already in use")
	ErrNicknameTaken = errors.New("nickname already in use")
)

// Board errors
var (
	ErrPostNotFound  = errors.New("post not found")
	ErrNotPostAuthor = errors.New("user is not the post author")
)

// Catalog errors
var (
	ErrGameNotFound = errors.New("board game not found")
)

// Meeting errors
var (
	ErrMeetingNotFound        = errors.New("meeting not found")
	ErrAlreadyJoined          = errors.New("user already joined this meeting")
	ErrMeetingFull            = errors.New("meeting is full")
	ErrHostAlreadyParticipant = errors.New("host is already a participant")
)

// Password reset errors
var (
	ErrInvalidResetCode = errors.New("invalid or expired password reset code")
	ErrResetNotVerified = errors.New("password reset code has not been verified")
)

// CustomError attaches a contextual message to one of the sentinel errors
// above. errors.Is keeps matching the sentinel through Unwrap, and the HTTP
// layer surfaces Message instead of its generic fallback.
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}
