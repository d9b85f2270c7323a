package crud

import (
	"strings"

	"gorm.io/gorm"

	"snapFeed/domain"
	"snapFeed/errs"
)

// CommentService manages Comments.
// It implements the domain.CommentService interface.
type CommentService struct {
	commentValidator
}

// commentValidator runs validations on incoming Comment data.
// On success, it passes the data on to commentGorm.
// Otherwise, it returns the error of the validation that has failed.
type commentValidator struct {
	commentGorm
}

// commentGorm runs CRUD operations on the database using incoming Comment data.
// It assumes that data has been validated. On success, it returns nil.
// Otherwise, it returns the error of the operation that has failed.
type commentGorm struct {
	db *gorm.DB
}

// NewCommentService returns an instance of CommentService.
func NewCommentService(db *gorm.DB) *CommentService {
	return &CommentService{
		commentValidator{
			commentGorm{
				db: db,
			},
		},
	}
}

// Ensure the CommentService struct properly implements the domain.CommentService interface.
// If it does not, then this expression becomes invalid and won't compile.
var _ domain.CommentService = &CommentService{}

// Create runs validations needed for creating new Comment database records.
func (cv *commentValidator) Create(comment *domain.Comment) error {
	err := runCommentValFns(comment,
		cv.userIDValid,
		cv.textMinLength,
		cv.commentedPostExists,
		cv.parentOnSamePost)
	if err != nil {
		return err
	}
	return cv.commentGorm.Create(comment)
}

// runCommentValFns runs any number of functions of type commentValFn on the passed in Comment object.
// If none of them returns an error, it returns nil. Otherwise, it returns the respective error.
func runCommentValFns(comment *domain.Comment, fns ...commentValFn) error {
	for _, fn := range fns {
		if err := fn(comment); err != nil {
			return err
		}
	}
	return nil
}

// A commentValFn is any function that takes in a pointer to a domain.Comment object and returns an error.
type commentValFn func(comment *domain.Comment) error

// commentedPostExists makes sure that the post to be commented on actually exists.
func (cv *commentValidator) commentedPostExists(comment *domain.Comment) error {
	err := cv.db.First(&domain.Post{}, "id = ?", comment.PostID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errs.Errorf(errs.ENOTFOUND, "The commented post does not exist.")
		}
		return err
	}
	return nil
}

// parentOnSamePost makes sure that the comment replied to exists and belongs
// to the same post as the new comment. This check only runs if the incoming
// Comment object carries a parent id.
func (cv *commentValidator) parentOnSamePost(comment *domain.Comment) error {
	if comment.ParentID == nil {
		return nil
	}
	var parent domain.Comment
	err := cv.db.First(&parent, "id = ?", *comment.ParentID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errs.Errorf(errs.ENOTFOUND, "The parent comment does not exist.")
		}
		return err
	}
	if parent.PostID != comment.PostID {
		return errs.Errorf(errs.ENOTFOUND, "The parent comment does not belong to this post.")
	}
	return nil
}

// textMinLength makes sure that the comment's text is not empty.
func (cv *commentValidator) textMinLength(comment *domain.Comment) error {
	if strings.TrimSpace(comment.Text) == "" {
		return errs.Errorf(errs.EINVALID, "Comment text must not be empty.")
	}
	return nil
}

// userIDValid ensures that the userID is not empty.
func (cv *commentValidator) userIDValid(comment *domain.Comment) error {
	if comment.UserID <= 0 {
		return errs.Errorf(errs.EINVALID, "A user ID is required.")
	}
	return nil
}

// Create stores the data from the Comment object in a new database record.
// On success, it eager-loads the author relation, so that the json response
// displays the full data of the created comment.
func (cg *commentGorm) Create(comment *domain.Comment) error {
	if err := cg.db.Create(comment).Error; err != nil {
		return err
	}
	if err := cg.db.Preload("User").First(comment, "id = ?", comment.ID).Error; err != nil {
		return err
	}
	return nil
}
