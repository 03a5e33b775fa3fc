package aws

import (
	"errors"
	"fmt"
	"testing"

	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
)

func TestIsAuthDenied(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"InvalidClientTokenId", true},
		{"UnrecognizedClientException", true},
		{"SignatureDoesNotMatch", true},
		{"AuthFailure", true},
		{"InvalidAccessKeyId", true},
		{"ExpiredToken", true},
		{"AccessDeniedException", true},
		{"Throttling", false},
		{"RequestLimitExceeded", false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			err := &smithy.GenericAPIError{Code: tt.code, Message: "nope"}
			assert.Equal(t, tt.want, isAuthDenied(err))
		})
	}
}

func TestIsAuthDenied_WrappedError(t *testing.T) {
	err := fmt.Errorf("describe instances: %w", &smithy.GenericAPIError{Code: "AuthFailure"})
	assert.True(t, isAuthDenied(err))
}

func TestIsAuthDenied_PlainError(t *testing.T) {
	assert.False(t, isAuthDenied(errors.New("connection reset")))
}

func TestClassify(t *testing.T) {
	assert.NoError(t, classify(nil))

	plain := errors.New("timeout")
	assert.Equal(t, plain, classify(plain))

	authShaped := &smithy.GenericAPIError{Code: "AccessDenied"}
	classified := classify(authShaped)
	var authErr *AuthError
	assert.True(t, errors.As(classified, &authErr))
	assert.ErrorIs(t, classified, error(authShaped))
}

func TestAuthErrorMessage(t *testing.T) {
	err := &AuthError{Err: errors.New("bad signature")}
	assert.Contains(t, err.Error(), "aws rejected credentials")
	assert.Contains(t, err.Error(), "bad signature")
}
