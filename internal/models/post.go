package models

import "time"

// Post представляет запись в ленте.
// Name и Avatar - снимок автора на момент создания, при смене профиля не обновляются.
type Post struct {
	CreatedAt time.Time `json:"date" db:"created_at"`
	ID        string    `json:"_id" db:"id"`
	UserID    string    `json:"user" db:"user_id"` // владелец, неизменяем после создания
	Text      string    `json:"text" db:"text"`
	Name      string    `json:"name" db:"name"`
	Avatar    string    `json:"avatar" db:"avatar"`
	Likes     []Like    `json:"likes" db:"-"`    // последние сверху
	Comments  []Comment `json:"comments" db:"-"` // последние сверху
}

// Like - отметка "нравится". Не более одной на пару (post, user).
type Like struct {
	CreatedAt time.Time `json:"-" db:"created_at"`
	PostID    string    `json:"-" db:"post_id"`
	UserID    string    `json:"user" db:"user_id"`
}

// Comment - комментарий к посту со снимком автора
type Comment struct {
	CreatedAt time.Time `json:"date" db:"created_at"`
	ID        string    `json:"_id" db:"id"`
	PostID    string    `json:"-" db:"post_id"`
	UserID    string    `json:"user" db:"user_id"`
	Text      string    `json:"text" db:"text"`
	Name      string    `json:"name" db:"name"`
	Avatar    string    `json:"avatar" db:"avatar"`
}

// HasLike проверяет, есть ли у поста лайк от пользователя
func (p *Post) HasLike(userID string) bool {
	for _, l := range p.Likes {
		if l.UserID == userID {
			return true
		}
	}
	return false
}

// FindComment возвращает комментарий по ID или nil
func (p *Post) FindComment(commentID string) *Comment {
	for i := range p.Comments {
		if p.Comments[i].ID == commentID {
			return &p.Comments[i]
		}
	}
	return nil
}
