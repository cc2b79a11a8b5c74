package search

import "errors"

var (
	ErrSessionNotFound = errors.New("search session not found")
)
