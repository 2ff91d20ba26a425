package storage

import "errors"

// ErrSessionNotFound indicates that the user is not logged in
var ErrSessionNotFound = errors.New("session not found")
