package domain

import "time"

// Follow represents a self-referential many-to-many relationship between two
// users. The FollowerID is the ID of the user that follows, the FollowedID is
// the ID of the user being followed. At most one edge exists per ordered
// pair, enforced by the composite unique index, and a user can never follow
// themselves.
type Follow struct {
	ID         int  `json:"id"`
	FollowerID int  `json:"-" gorm:"notNull;uniqueIndex:idx_follows_pair"`
	Follower   User `json:"follower"`
	FollowedID int  `json:"-" gorm:"notNull;uniqueIndex:idx_follows_pair"`
	Followed   User `json:"followed"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FollowService is a set of methods to manipulate and work with the Follow model.
type FollowService interface {
	Create(follow *Follow) error
	Delete(follow *Follow) error
	FollowingIDs(userID int) ([]int, error)
}

// PublicFollow is the projection of a Follow hydrated with both users.
type PublicFollow struct {
	ID        int        `json:"id"`
	Follower  PublicUser `json:"follower"`
	Followed  PublicUser `json:"followed"`
	CreatedAt time.Time  `json:"created_at"`
}

// Public projects the follow edge down to its transmittable fields.
func (f *Follow) Public() PublicFollow {
	return PublicFollow{
		ID:        f.ID,
		Follower:  f.Follower.Public(),
		Followed:  f.Followed.Public(),
		CreatedAt: f.CreatedAt,
	}
}
