package crud

import (
	"gorm.io/gorm"

	"snapFeed/domain"
	"snapFeed/errs"
)

// LikeService manages Likes.
// It implements the domain.LikeService interface.
type LikeService struct {
	likeValidator
}

// likeValidator runs validations on incoming Like data.
// On success, it passes the data on to likeGorm.
// Otherwise, it returns the error of the validation that has failed.
type likeValidator struct {
	likeGorm
}

// likeGorm runs CRUD operations on the database using incoming Like data.
// It assumes that data has been validated. On success, it returns nil.
// Otherwise, it returns the error of the operation that has failed.
type likeGorm struct {
	db *gorm.DB
}

// NewLikeService returns an instance of LikeService.
func NewLikeService(db *gorm.DB) *LikeService {
	return &LikeService{
		likeValidator{
			likeGorm{
				db: db,
			},
		},
	}
}

// Ensure the LikeService struct properly implements the domain.LikeService interface.
// If it does not, then this expression becomes invalid and won't compile.
var _ domain.LikeService = &LikeService{}

// Toggle runs validations and flips the like state of the given user on the
// given post. It reports the resulting state: true if the like now exists,
// false if it was removed.
func (lv *likeValidator) Toggle(userID, postID int) (bool, error) {
	like := domain.Like{UserID: userID, PostID: postID}
	err := runLikeValFns(&like,
		lv.userIDValid,
		lv.likedPostExists)
	if err != nil {
		return false, err
	}
	return lv.likeGorm.Toggle(&like)
}

// runLikeValFns runs any number of functions of type likeValFn on the passed in Like object.
// If none of them returns an error, it returns nil. Otherwise, it returns the respective error.
func runLikeValFns(like *domain.Like, fns ...likeValFn) error {
	for _, fn := range fns {
		if err := fn(like); err != nil {
			return err
		}
	}
	return nil
}

// A likeValFn is any function that takes in a pointer to a domain.Like object and returns an error.
type likeValFn func(like *domain.Like) error

// likedPostExists makes sure that the post to be liked actually exists.
func (lv *likeValidator) likedPostExists(like *domain.Like) error {
	err := lv.db.First(&domain.Post{}, "id = ?", like.PostID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errs.Errorf(errs.ENOTFOUND, "The liked post does not exist.")
		}
		return err
	}
	return nil
}

// userIDValid ensures that the userID is not empty.
func (lv *likeValidator) userIDValid(like *domain.Like) error {
	if like.UserID <= 0 {
		return errs.Errorf(errs.EINVALID, "A user ID is required.")
	}
	return nil
}

// Toggle flips the like inside a single transaction so the read-check-write
// is atomic against concurrent toggles. If a like exists it is deleted,
// otherwise one is created. A duplicate-key failure on the insert means a
// concurrent toggle won the race and the like exists, so it is reported as
// liked rather than propagated.
func (lg *likeGorm) Toggle(like *domain.Like) (liked bool, err error) {
	err = lg.db.Transaction(func(tx *gorm.DB) error {
		var existing domain.Like
		err := tx.First(&existing, "user_id = ? AND post_id = ?", like.UserID, like.PostID).Error
		if err == nil {
			liked = false
			return tx.Delete(&existing).Error
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}
		if err := tx.Create(like).Error; err != nil {
			if isUniqueViolation(err) {
				liked = true
				return nil
			}
			return err
		}
		liked = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return liked, nil
}
