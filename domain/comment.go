package domain

import "time"

// Comment represents a user's comment on a post. A comment may reply to
// another comment via ParentID, which must reference a comment on the same
// post. ParentID is a pointer so the column defaults to null for top-level
// comments.
type Comment struct {
	ID       int    `json:"id"`
	UserID   int    `json:"user_id" gorm:"notNull;index"`
	User     User   `json:"user"`
	PostID   int    `json:"post_id" gorm:"notNull;index"`
	Text     string `json:"text" gorm:"notNull"`
	ParentID *int   `json:"parent_comment_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CommentService is a set of methods to manipulate and work with the Comment model.
type CommentService interface {
	Create(comment *Comment) error
}

// PublicComment is the projection of a Comment hydrated with its author.
type PublicComment struct {
	ID        int        `json:"id"`
	User      PublicUser `json:"user"`
	PostID    int        `json:"post_id"`
	Text      string     `json:"text"`
	ParentID  *int       `json:"parent_comment_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// Public projects the comment down to its transmittable fields.
func (c *Comment) Public() PublicComment {
	return PublicComment{
		ID:        c.ID,
		User:      c.User.Public(),
		PostID:    c.PostID,
		Text:      c.Text,
		ParentID:  c.ParentID,
		CreatedAt: c.CreatedAt,
	}
}
