package domain

import "errors"

var (
	// ErrWordNotFound covers every lookup failure shown to the user
	ErrWordNotFound = errors.New("word not found")
	// ErrEmptyWord is returned for blank input
	ErrEmptyWord = errors.New("word cannot be empty")
)
