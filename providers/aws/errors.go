package aws

import (
	"errors"
	"fmt"

	"github.com/aws/smithy-go"
)

// AuthError reports that AWS rejected the supplied credentials.
type AuthError struct {
	Err error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("aws rejected credentials: %v", e.Err)
}

func (e *AuthError) Unwrap() error { return e.Err }

// isAuthDenied reports whether err is an auth-shaped API error.
// Codes vary per service, so the usual suspects are listed explicitly.
func isAuthDenied(err error) bool {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	switch apiErr.ErrorCode() {
	case "InvalidClientTokenId",
		"UnrecognizedClientException",
		"SignatureDoesNotMatch",
		"AuthFailure",
		"InvalidAccessKeyId",
		"ExpiredToken",
		"ExpiredTokenException",
		"AccessDenied",
		"AccessDeniedException":
		return true
	}
	return false
}

// classify wraps auth-shaped errors as *AuthError and passes everything
// else through unchanged.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if isAuthDenied(err) {
		return &AuthError{Err: err}
	}
	return err
}
