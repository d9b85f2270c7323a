package crud

import (
	"gorm.io/gorm"

	"snapFeed/domain"
)

// FeedService assembles feeds.
// It implements the domain.FeedService interface.
type FeedService struct {
	feedGorm
}

// feedGorm runs the feed queries against the database.
type feedGorm struct {
	db *gorm.DB
}

// NewFeedService returns an instance of FeedService.
func NewFeedService(db *gorm.DB) *FeedService {
	return &FeedService{
		feedGorm{
			db: db,
		},
	}
}

// Ensure the FeedService struct properly implements the domain.FeedService interface.
// If it does not, then this expression becomes invalid and won't compile.
var _ domain.FeedService = &FeedService{}

// Build computes the feed scope (the user plus everyone they follow) and
// returns every post by an author in scope, newest first. Post ids are
// assigned monotonically, so descending id order is descending creation
// order. Each post is hydrated with its author, its comments in insertion
// order (each with their author) and its likes (each with their liker).
// The whole result set is returned in one call, there is no pagination.
func (fg *feedGorm) Build(userID int) ([]domain.Post, error) {
	var scope []int
	err := fg.db.
		Model(&domain.Follow{}).
		Where("follower_id = ?", userID).
		Pluck("followed_id", &scope).Error
	if err != nil {
		return nil, err
	}
	scope = append(scope, userID)

	var posts []domain.Post
	err = fg.db.
		Where("user_id IN ?", scope).
		Preload("User").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.id ASC")
		}).
		Preload("Comments.User").
		Preload("Likes.User").
		Order("id desc").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}
