package service

import "errors"

// Domain errors. Handlers map them to HTTP statuses with errors.Is
var (
	// ErrEmailExists indicates that the email is already registered
	ErrEmailExists = errors.New("email already registered")

	// ErrInvalidCredentials indicates unknown email or wrong password
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUserNotFound indicates that the user does not exist
	ErrUserNotFound = errors.New("user not found")

	// ErrEmptyText indicates empty or whitespace-only post or comment text
	ErrEmptyText = errors.New("text is required")

	// ErrPostNotFound indicates unknown or malformed post id
	ErrPostNotFound = errors.New("post not found")

	// ErrNotOwner indicates that the caller does not own the post or comment
	ErrNotOwner = errors.New("user not authorized")

	// ErrAlreadyLiked indicates that the caller has already liked the post
	ErrAlreadyLiked = errors.New("post already liked")

	// ErrNotLiked indicates that the caller has not liked the post
	ErrNotLiked = errors.New("post has not yet been liked")

	// ErrCommentNotFound indicates unknown or malformed comment id
	ErrCommentNotFound = errors.New("comment does not exist")
)
