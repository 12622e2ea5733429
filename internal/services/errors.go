package services

import "errors"

// Rejections. Each one aborts the operation before anything is written.
var (
	ErrLimitExceeded       = errors.New("point limit exceeded")
	ErrUserNotFound        = errors.New("user not found")
	ErrNoBalance           = errors.New("no charged points")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrNoHistory           = errors.New("no point history")
)

var reasons = map[error]string{
	ErrLimitExceeded:       "limit_exceeded",
	ErrUserNotFound:        "user_not_found",
	ErrNoBalance:           "no_balance",
	ErrInsufficientBalance: "insufficient_balance",
	ErrNoHistory:           "no_history",
}

// Reason returns the stable code of a rejection, or "" for any other error.
func Reason(err error) string {
	for e, code := range reasons {
		if errors.Is(err, e) {
			return code
		}
	}
	return ""
}

// IsRejection reports whether err is a business rule rejection rather than a
// storage failure.
func IsRejection(err error) bool { return Reason(err) != "" }
