package service

import (
	"net/http"

	commonerrors "github.com/AlibekovAA/caption-studio/backend/internal/common/errors"
)

var (
	ErrCredentialsRequired = commonerrors.NewDomainError(
		"CREDENTIALS_REQUIRED",
		commonerrors.CategoryValidation,
		http.StatusBadRequest,
		"Email and password are required",
	)

	ErrPasswordTooShort = commonerrors.NewDomainError(
		"PASSWORD_TOO_SHORT",
		commonerrors.CategoryValidation,
		http.StatusBadRequest,
		"Password must be at least 6 characters",
	)

	ErrPasswordTooLong = commonerrors.NewDomainError(
		"PASSWORD_TOO_LONG",
		commonerrors.CategoryValidation,
		http.StatusBadRequest,
		"Password must be at most 72 characters",
	)

	ErrEmailTooLong = commonerrors.NewDomainError(
		"EMAIL_TOO_LONG",
		commonerrors.CategoryValidation,
		http.StatusBadRequest,
		"Email must be at most 254 characters",
	)

	ErrEmailTaken = commonerrors.NewDomainError(
		"EMAIL_TAKEN",
		commonerrors.CategoryConflict,
		http.StatusConflict,
		"Email already registered",
	)

	ErrInvalidCredentials = commonerrors.NewDomainError(
		"INVALID_CREDENTIALS",
		commonerrors.CategoryUnauthorized,
		http.StatusUnauthorized,
		"Invalid email or password",
	)
)
