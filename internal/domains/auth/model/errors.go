package model

import (
	"net/http"
	"ohanna/shared/failure"
)

var (
	ErrInvalidAPIKey       = failure.New(http.StatusUnauthorized, "invalid api key")
	ErrInvalidRefreshToken = failure.New(http.StatusUnauthorized, "invalid refresh token")
	ErrAuthDisabled        = failure.New(http.StatusNotFound, "authentication is not enabled")
)
