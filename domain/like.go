package domain

import "time"

// Like represents a many-to-many relationship between a User and a Post.
// At most one like exists per user and post, enforced by the composite
// unique index. A like is created and destroyed by the toggle action.
type Like struct {
	ID     int  `json:"id"`
	UserID int  `json:"user_id" gorm:"notNull;uniqueIndex:idx_likes_user_post"`
	User   User `json:"user"`
	PostID int  `json:"post_id" gorm:"notNull;uniqueIndex:idx_likes_user_post"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LikeService is a set of methods to manipulate and work with the Like model.
type LikeService interface {
	Toggle(userID, postID int) (liked bool, err error)
}

// PublicLike is the projection of a Like hydrated with its liker.
type PublicLike struct {
	ID        int        `json:"id"`
	User      PublicUser `json:"user"`
	CreatedAt time.Time  `json:"created_at"`
}

// Public projects the like down to its transmittable fields.
func (l *Like) Public() PublicLike {
	return PublicLike{
		ID:        l.ID,
		User:      l.User.Public(),
		CreatedAt: l.CreatedAt,
	}
}
