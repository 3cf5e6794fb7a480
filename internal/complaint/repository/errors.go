package repository

import "errors"

var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrLevelMismatch = errors.New("level mismatch")
	ErrNotHigher     = errors.New("new level is not higher than current level")
)
