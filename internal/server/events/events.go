// Package events publishes post domain events. The NATS publisher is optional;
// when it is not configured the server uses Nop.
package events

import (
	"context"
	"time"
)

// Event subjects
const (
	SubjectPostCreated     = "posts.created"
	SubjectPostDeleted     = "posts.deleted"
	SubjectPostLiked       = "posts.liked"
	SubjectPostUnliked     = "posts.unliked"
	SubjectCommentAdded    = "posts.comment.added"
	SubjectCommentRemoved  = "posts.comment.removed"
	SubjectUserRegistered  = "users.registered"
)

// Event is the payload published for every successful mutation
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	Subject   string    `json:"-"`
	PostID    string    `json:"post_id,omitempty"`
	UserID    string    `json:"user_id"`
	CommentID string    `json:"comment_id,omitempty"`
	Likes     int       `json:"likes,omitempty"`
}

// Publisher sends domain events to subscribers
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// Nop discards all events
type Nop struct{}

// Publish implements Publisher
func (Nop) Publish(context.Context, Event) error { return nil }
