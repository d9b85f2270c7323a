package domain

import "time"

// Post represents a piece of content published by a user. The User, Comments
// and Likes fields are hydration targets, they are only filled by explicit
// store queries before a post is returned across the boundary.
type Post struct {
	ID          int    `json:"id"`
	UserID      int    `json:"user_id" gorm:"notNull;index"`
	User        User   `json:"user"`
	Description string `json:"description" gorm:"notNull"`
	MediaURL    string `json:"media_url,omitempty"`

	Comments []Comment `json:"comments" gorm:"foreignKey:PostID"`
	Likes    []Like    `json:"likes" gorm:"foreignKey:PostID"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PostService is a set of methods to manipulate and work with the Post model.
type PostService interface {
	Create(post *Post) error
	ByID(id int) (*Post, error)
}

// PublicPost is the projection of a fully hydrated Post.
type PublicPost struct {
	ID          int             `json:"id"`
	User        PublicUser      `json:"user"`
	Description string          `json:"description"`
	MediaURL    string          `json:"media_url,omitempty"`
	Comments    []PublicComment `json:"comments"`
	Likes       []PublicLike    `json:"likes"`
	CreatedAt   time.Time       `json:"created_at"`
}

// Public projects the post and everything hydrated onto it.
func (p *Post) Public() PublicPost {
	comments := make([]PublicComment, 0, len(p.Comments))
	for i := range p.Comments {
		comments = append(comments, p.Comments[i].Public())
	}
	likes := make([]PublicLike, 0, len(p.Likes))
	for i := range p.Likes {
		likes = append(likes, p.Likes[i].Public())
	}
	return PublicPost{
		ID:          p.ID,
		User:        p.User.Public(),
		Description: p.Description,
		MediaURL:    p.MediaURL,
		Comments:    comments,
		Likes:       likes,
		CreatedAt:   p.CreatedAt,
	}
}
