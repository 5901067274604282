package auth

import "errors"

var (
	ErrTokenGenerateFail  = errors.New("failed to generate token")
	ErrInvalidAccessToken = errors.New("invalid access token")
	ErrUnexpected         = errors.New("unexpected error")
)
