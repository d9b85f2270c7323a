package crud

import (
	"testing"

	"github.com/stretchr/testify/require"

	"snapFeed/domain"
	"snapFeed/errs"
)

func TestCreateComment(t *testing.T) {
	db := testDB(t)
	us := NewUserService(db, "test-pepper")
	ps := NewPostService(db)
	cs := NewCommentService(db)
	alice := registerTestUser(t, us, "alice")
	post := createTestPost(t, ps, alice.ID, "hello")

	comment := domain.Comment{UserID: alice.ID, PostID: post.ID, Text: "first"}
	require.NoError(t, cs.Create(&comment))
	require.NotZero(t, comment.ID)
	require.Equal(t, "alice", comment.User.Username, "created comment is hydrated with its author")
	require.Nil(t, comment.ParentID)
}

func TestCreateCommentMissingPost(t *testing.T) {
	db := testDB(t)
	us := NewUserService(db, "test-pepper")
	cs := NewCommentService(db)
	alice := registerTestUser(t, us, "alice")

	err := cs.Create(&domain.Comment{UserID: alice.ID, PostID: 12345, Text: "first"})
	require.Error(t, err)
	require.Equal(t, errs.ENOTFOUND, errs.ErrorCode(err))
}

func TestCreateCommentEmptyText(t *testing.T) {
	db := testDB(t)
	us := NewUserService(db, "test-pepper")
	ps := NewPostService(db)
	cs := NewCommentService(db)
	alice := registerTestUser(t, us, "alice")
	post := createTestPost(t, ps, alice.ID, "hello")

	err := cs.Create(&domain.Comment{UserID: alice.ID, PostID: post.ID, Text: "   "})
	require.Error(t, err)
	require.Equal(t, errs.EINVALID, errs.ErrorCode(err))
}

func TestCreateReply(t *testing.T) {
	db := testDB(t)
	us := NewUserService(db, "test-pepper")
	ps := NewPostService(db)
	cs := NewCommentService(db)
	alice := registerTestUser(t, us, "alice")
	bob := registerTestUser(t, us, "bob")
	post := createTestPost(t, ps, alice.ID, "hello")

	parent := domain.Comment{UserID: alice.ID, PostID: post.ID, Text: "first"}
	require.NoError(t, cs.Create(&parent))

	reply := domain.Comment{UserID: bob.ID, PostID: post.ID, Text: "replying", ParentID: &parent.ID}
	require.NoError(t, cs.Create(&reply))
	require.Equal(t, parent.ID, *reply.ParentID)
}

func TestCreateReplyMissingParent(t *testing.T) {
	db := testDB(t)
	us := NewUserService(db, "test-pepper")
	ps := NewPostService(db)
	cs := NewCommentService(db)
	alice := registerTestUser(t, us, "alice")
	post := createTestPost(t, ps, alice.ID, "hello")

	missing := 12345
	err := cs.Create(&domain.Comment{UserID: alice.ID, PostID: post.ID, Text: "replying", ParentID: &missing})
	require.Error(t, err)
	require.Equal(t, errs.ENOTFOUND, errs.ErrorCode(err))
}

func TestCreateReplyParentOnOtherPost(t *testing.T) {
	db := testDB(t)
	us := NewUserService(db, "test-pepper")
	ps := NewPostService(db)
	cs := NewCommentService(db)
	alice := registerTestUser(t, us, "alice")
	postA := createTestPost(t, ps, alice.ID, "post a")
	postB := createTestPost(t, ps, alice.ID, "post b")

	parent := domain.Comment{UserID: alice.ID, PostID: postA.ID, Text: "on post a"}
	require.NoError(t, cs.Create(&parent))

	// A parent on a different post never silently succeeds.
	err := cs.Create(&domain.Comment{UserID: alice.ID, PostID: postB.ID, Text: "replying", ParentID: &parent.ID})
	require.Error(t, err)
	require.Equal(t, errs.ENOTFOUND, errs.ErrorCode(err))
}

func TestPostByIDOrdersCommentsByInsertion(t *testing.T) {
	db := testDB(t)
	us := NewUserService(db, "test-pepper")
	ps := NewPostService(db)
	cs := NewCommentService(db)
	alice := registerTestUser(t, us, "alice")
	post := createTestPost(t, ps, alice.ID, "hello")

	for _, text := range []string{"first", "second", "third"} {
		require.NoError(t, cs.Create(&domain.Comment{UserID: alice.ID, PostID: post.ID, Text: text}))
	}

	found, err := ps.ByID(post.ID)
	require.NoError(t, err)
	require.Len(t, found.Comments, 3)
	require.Equal(t, "first", found.Comments[0].Text)
	require.Equal(t, "second", found.Comments[1].Text)
	require.Equal(t, "third", found.Comments[2].Text)
}
