package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/iudanet/devsocial/internal/models"
	"github.com/iudanet/devsocial/internal/server/events"
	"github.com/iudanet/devsocial/internal/server/storage"
)

func setupTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var errStorage = errors.New("disk is on fire")

// fakeUserStorage - хранилище пользователей на map
type fakeUserStorage struct {
	mu      sync.Mutex
	byID    map[string]*models.User
	byEmail map[string]*models.User
	err     error
}

func newFakeUserStorage() *fakeUserStorage {
	return &fakeUserStorage{
		byID:    make(map[string]*models.User),
		byEmail: make(map[string]*models.User),
	}
}

func (f *fakeUserStorage) CreateUser(ctx context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return f.err
	}
	if _, ok := f.byEmail[user.Email]; ok {
		return storage.ErrUserAlreadyExists
	}
	cp := *user
	f.byID[user.ID] = &cp
	f.byEmail[user.Email] = &cp
	return nil
}

func (f *fakeUserStorage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.byEmail[email]
	if !ok {
		return nil, storage.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserStorage) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.byID[userID]
	if !ok {
		return nil, storage.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserStorage) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.byID)
}

// fakePostStorage - хранилище постов на map с той же семантикой, что и SQL реализация
type fakePostStorage struct {
	mu    sync.Mutex
	posts map[string]*models.Post
	err   error
}

func newFakePostStorage() *fakePostStorage {
	return &fakePostStorage{posts: make(map[string]*models.Post)}
}

func clonePost(p *models.Post) *models.Post {
	cp := *p
	cp.Likes = append([]models.Like{}, p.Likes...)
	cp.Comments = append([]models.Comment{}, p.Comments...)
	return &cp
}

func (f *fakePostStorage) CreatePost(ctx context.Context, post *models.Post) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return f.err
	}
	f.posts[post.ID] = clonePost(post)
	return nil
}

func (f *fakePostStorage) ListPosts(ctx context.Context) ([]*models.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return nil, f.err
	}
	out := make([]*models.Post, 0, len(f.posts))
	for _, p := range f.posts {
		out = append(out, clonePost(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakePostStorage) GetPost(ctx context.Context, postID string) (*models.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.posts[postID]
	if !ok {
		return nil, storage.ErrPostNotFound
	}
	return clonePost(p), nil
}

func (f *fakePostStorage) DeletePost(ctx context.Context, postID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return f.err
	}
	if _, ok := f.posts[postID]; !ok {
		return storage.ErrPostNotFound
	}
	delete(f.posts, postID)
	return nil
}

func (f *fakePostStorage) AddLike(ctx context.Context, like *models.Like) ([]models.Like, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.posts[like.PostID]
	if !ok {
		return nil, storage.ErrPostNotFound
	}
	if p.HasLike(like.UserID) {
		return nil, storage.ErrLikeExists
	}
	p.Likes = append([]models.Like{*like}, p.Likes...)
	return append([]models.Like{}, p.Likes...), nil
}

func (f *fakePostStorage) RemoveLike(ctx context.Context, postID, userID string) ([]models.Like, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.posts[postID]
	if !ok {
		return nil, storage.ErrPostNotFound
	}
	for i, l := range p.Likes {
		if l.UserID == userID {
			p.Likes = append(p.Likes[:i:i], p.Likes[i+1:]...)
			return append([]models.Like{}, p.Likes...), nil
		}
	}
	return nil, storage.ErrLikeNotFound
}

func (f *fakePostStorage) AddComment(ctx context.Context, comment *models.Comment) ([]models.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.posts[comment.PostID]
	if !ok {
		return nil, storage.ErrPostNotFound
	}
	p.Comments = append([]models.Comment{*comment}, p.Comments...)
	return append([]models.Comment{}, p.Comments...), nil
}

func (f *fakePostStorage) RemoveComment(ctx context.Context, postID, commentID string) ([]models.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.posts[postID]
	if !ok {
		return nil, storage.ErrPostNotFound
	}
	for i, c := range p.Comments {
		if c.ID == commentID {
			p.Comments = append(p.Comments[:i:i], p.Comments[i+1:]...)
			return append([]models.Comment{}, p.Comments...), nil
		}
	}
	return nil, storage.ErrCommentNotFound
}

// recordingPublisher запоминает опубликованные события
type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
	err    error
}

func (p *recordingPublisher) Publish(ctx context.Context, event events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.events = append(p.events, event)
	return p.err
}

func (p *recordingPublisher) subjects() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Subject)
	}
	return out
}

// countingRecorder считает доменные метрики
type countingRecorder struct {
	mu            sync.Mutex
	registrations int
	logins        map[bool]int
	actions       map[string]int
}

func newCountingRecorder() *countingRecorder {
	return &countingRecorder{logins: make(map[bool]int), actions: make(map[string]int)}
}

func (r *countingRecorder) RecordRegistration() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.registrations++
}

func (r *countingRecorder) RecordLogin(success bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logins[success]++
}

func (r *countingRecorder) RecordPostAction(action string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.actions[action]++
}

// stepClock возвращает время, увеличивающееся на секунду при каждом вызове
func stepClock(start time.Time) func() time.Time {
	var mu sync.Mutex
	current := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		current = current.Add(time.Second)
		return current
	}
}
