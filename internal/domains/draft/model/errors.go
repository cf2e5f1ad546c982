package model

import (
	"net/http"
	"ohanna/shared/failure"
)

var (
	ErrDraftNotFound          = failure.New(http.StatusNotFound, "draft not found")
	ErrGuestIndexOutOfRange   = failure.New(http.StatusBadRequest, "guest index out of range")
	ErrPaymentIndexOutOfRange = failure.New(http.StatusBadRequest, "payment index out of range")
	ErrExpenseNotFound        = failure.New(http.StatusNotFound, "expense not found")
	ErrUnknownCommand         = failure.New(http.StatusBadRequest, "unknown draft command")
	ErrNotEditing             = failure.New(http.StatusBadRequest, "draft is not editing a stored booking")
)
