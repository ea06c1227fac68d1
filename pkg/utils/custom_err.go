package utils

import "errors"

var (
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrMissingField       = errors.New("missing required field")
	ErrInvalidMonth       = errors.New("invalid month")
	ErrMemberNotFound     = errors.New("member not found")
	ErrInactiveMember     = errors.New("member is inactive")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidRole        = errors.New("invalid role")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrEmailTaken         = errors.New("email already exists")
	ErrScopeForbidden     = errors.New("forbidden admin scope")
	ErrDatabaseError      = errors.New("database error")
)
