// Package cache wraps a storage.PostStorage with a Redis read-through cache
// for the feed and single posts.
//
// Every cached value lives under a versioned key "<base>:v<N>". A mutation
// increments the version of the affected bases, so a value loaded from
// storage before the mutation is written under a version nobody reads anymore.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/iudanet/devsocial/internal/models"
	"github.com/iudanet/devsocial/internal/server/storage"
)

const (
	feedKey    = "devsocial:posts:feed"
	postPrefix = "devsocial:post:"

	// DefaultTTL is used when ttl passed to New is not positive
	DefaultTTL = 5 * time.Minute

	// версия живет дольше любого значения, иначе после ее сброса в 0
	// мог бы найтись старый ":v0"
	minVersionTTL = 24 * time.Hour
)

// PostCache implements storage.PostStorage on top of another PostStorage
type PostCache struct {
	next   storage.PostStorage
	rdb    redis.Cmdable
	logger *slog.Logger
	ttl    time.Duration
}

var _ storage.PostStorage = (*PostCache)(nil)

// New creates a caching decorator around next
func New(next storage.PostStorage, rdb redis.Cmdable, ttl time.Duration, logger *slog.Logger) *PostCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &PostCache{
		next:   next,
		rdb:    rdb,
		ttl:    ttl,
		logger: logger,
	}
}

func postKey(postID string) string {
	return postPrefix + postID
}

func versionKey(base string) string {
	return base + ":ver"
}

func dataKey(base string, version int64) string {
	return base + ":v" + strconv.FormatInt(version, 10)
}

// CreatePost stores a post and moves the feed to a new version
func (c *PostCache) CreatePost(ctx context.Context, post *models.Post) error {
	if err := c.next.CreatePost(ctx, post); err != nil {
		return err
	}
	c.bump(ctx, feedKey)
	return nil
}

// ListPosts returns the cached feed or loads it from the underlying storage
func (c *PostCache) ListPosts(ctx context.Context) ([]*models.Post, error) {
	version, ok := c.version(ctx, feedKey)
	if ok {
		var posts []*models.Post
		if c.load(ctx, dataKey(feedKey, version), &posts) {
			for _, p := range posts {
				restorePostIDs(p)
			}
			return posts, nil
		}
	}

	posts, err := c.next.ListPosts(ctx)
	if err != nil {
		return nil, err
	}

	if ok {
		c.store(ctx, dataKey(feedKey, version), posts)
	}
	return posts, nil
}

// GetPost returns the cached post or loads it from the underlying storage
func (c *PostCache) GetPost(ctx context.Context, postID string) (*models.Post, error) {
	base := postKey(postID)

	version, ok := c.version(ctx, base)
	if ok {
		post := &models.Post{}
		if c.load(ctx, dataKey(base, version), post) {
			restorePostIDs(post)
			return post, nil
		}
	}

	post, err := c.next.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	if ok {
		c.store(ctx, dataKey(base, version), post)
	}
	return post, nil
}

// DeletePost removes the post and moves the post and the feed to new versions
func (c *PostCache) DeletePost(ctx context.Context, postID string) error {
	err := c.next.DeletePost(ctx, postID)
	c.bump(ctx, feedKey, postKey(postID))
	return err
}

// AddLike delegates and invalidates the post and the feed
func (c *PostCache) AddLike(ctx context.Context, like *models.Like) ([]models.Like, error) {
	likes, err := c.next.AddLike(ctx, like)
	if err != nil {
		return nil, err
	}
	c.bump(ctx, feedKey, postKey(like.PostID))
	return likes, nil
}

// RemoveLike delegates and invalidates the post and the feed
func (c *PostCache) RemoveLike(ctx context.Context, postID, userID string) ([]models.Like, error) {
	likes, err := c.next.RemoveLike(ctx, postID, userID)
	if err != nil {
		return nil, err
	}
	c.bump(ctx, feedKey, postKey(postID))
	return likes, nil
}

// AddComment delegates and invalidates the post and the feed
func (c *PostCache) AddComment(ctx context.Context, comment *models.Comment) ([]models.Comment, error) {
	comments, err := c.next.AddComment(ctx, comment)
	if err != nil {
		return nil, err
	}
	c.bump(ctx, feedKey, postKey(comment.PostID))
	return comments, nil
}

// RemoveComment delegates and invalidates the post and the feed
func (c *PostCache) RemoveComment(ctx context.Context, postID, commentID string) ([]models.Comment, error) {
	comments, err := c.next.RemoveComment(ctx, postID, commentID)
	if err != nil {
		return nil, err
	}
	c.bump(ctx, feedKey, postKey(postID))
	return comments, nil
}

// version читает текущую версию base до обращения к хранилищу.
// Нет ключа - версия 0. При ошибке Redis ok=false и кэш для запроса не используется
func (c *PostCache) version(ctx context.Context, base string) (int64, bool) {
	v, err := c.rdb.Get(ctx, versionKey(base)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, true
		}
		c.logger.WarnContext(ctx, "Cache version read failed",
			slog.String("key", base),
			slog.Any("error", err))
		return 0, false
	}
	return v, true
}

// bump переводит base на новую версию. Старые значения больше не читаются и истекают по TTL
func (c *PostCache) bump(ctx context.Context, bases ...string) {
	ttl := max(minVersionTTL, 2*c.ttl)
	for _, base := range bases {
		key := versionKey(base)
		if err := c.rdb.Incr(ctx, key).Err(); err != nil {
			c.logger.WarnContext(ctx, "Cache invalidation failed",
				slog.String("key", base),
				slog.Any("error", err))
			continue
		}
		if err := c.rdb.Expire(ctx, key, ttl).Err(); err != nil {
			c.logger.WarnContext(ctx, "Cache version expiry failed",
				slog.String("key", base),
				slog.Any("error", err))
		}
	}
}

// load читает ключ из Redis. Промах и любые ошибки Redis означают "нет в кэше"
func (c *PostCache) load(ctx context.Context, key string, dst any) bool {
	data, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.WarnContext(ctx, "Cache read failed",
				slog.String("key", key),
				slog.Any("error", err))
		}
		return false
	}

	if err := json.Unmarshal(data, dst); err != nil {
		c.logger.WarnContext(ctx, "Cache entry is corrupted",
			slog.String("key", key),
			slog.Any("error", err))
		if err := c.rdb.Del(ctx, key).Err(); err != nil {
			c.logger.WarnContext(ctx, "Failed to drop corrupted entry",
				slog.String("key", key),
				slog.Any("error", err))
		}
		return false
	}

	return true
}

func (c *PostCache) store(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		c.logger.WarnContext(ctx, "Failed to encode cache entry",
			slog.String("key", key),
			slog.Any("error", err))
		return
	}

	if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "Cache write failed",
			slog.String("key", key),
			slog.Any("error", err))
	}
}

// restorePostIDs восстанавливает post_id у лайков и комментариев: в JSON он не сериализуется
func restorePostIDs(post *models.Post) {
	for i := range post.Likes {
		post.Likes[i].PostID = post.ID
	}
	for i := range post.Comments {
		post.Comments[i].PostID = post.ID
	}
	if post.Likes == nil {
		post.Likes = []models.Like{}
	}
	if post.Comments == nil {
		post.Comments = []models.Comment{}
	}
}

// Ping checks Redis connectivity
func Ping(ctx context.Context, rdb redis.Cmdable) error {
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to ping redis: %w", err)
	}
	return nil
}
