package crud

import (
	"testing"

	"github.com/stretchr/testify/require"

	"snapFeed/domain"
	"snapFeed/errs"
)

func TestFollowSelf(t *testing.T) {
	db := testDB(t)
	us := NewUserService(db, "test-pepper")
	fs := NewFollowService(db)
	alice := registerTestUser(t, us, "alice")

	err := fs.Create(&domain.Follow{FollowerID: alice.ID, FollowedID: alice.ID})
	require.Error(t, err)
	require.Equal(t, errs.EINVALID, errs.ErrorCode(err))
}

func TestFollowMissingTarget(t *testing.T) {
	db := testDB(t)
	us := NewUserService(db, "test-pepper")
	fs := NewFollowService(db)
	alice := registerTestUser(t, us, "alice")

	err := fs.Create(&domain.Follow{FollowerID: alice.ID, FollowedID: alice.ID + 999})
	require.Error(t, err)
	require.Equal(t, errs.ENOTFOUND, errs.ErrorCode(err))
}

func TestFollowTwice(t *testing.T) {
	db := testDB(t)
	us := NewUserService(db, "test-pepper")
	fs := NewFollowService(db)
	alice := registerTestUser(t, us, "alice")
	bob := registerTestUser(t, us, "bob")

	require.NoError(t, fs.Create(&domain.Follow{FollowerID: alice.ID, FollowedID: bob.ID}))

	err := fs.Create(&domain.Follow{FollowerID: alice.ID, FollowedID: bob.ID})
	require.Error(t, err)
	require.Equal(t, errs.ECONFLICT, errs.ErrorCode(err))
}

func TestFollowHydratesBothUsers(t *testing.T) {
	db := testDB(t)
	us := NewUserService(db, "test-pepper")
	fs := NewFollowService(db)
	alice := registerTestUser(t, us, "alice")
	bob := registerTestUser(t, us, "bob")

	follow := domain.Follow{FollowerID: alice.ID, FollowedID: bob.ID}
	require.NoError(t, fs.Create(&follow))
	require.Equal(t, "alice", follow.Follower.Username)
	require.Equal(t, "bob", follow.Followed.Username)
}

func TestFollowingIDs(t *testing.T) {
	db := testDB(t)
	us := NewUserService(db, "test-pepper")
	fs := NewFollowService(db)
	alice := registerTestUser(t, us, "alice")
	bob := registerTestUser(t, us, "bob")

	ids, err := fs.FollowingIDs(alice.ID)
	require.NoError(t, err)
	require.Empty(t, ids)

	require.NoError(t, fs.Create(&domain.Follow{FollowerID: alice.ID, FollowedID: bob.ID}))

	ids, err = fs.FollowingIDs(alice.ID)
	require.NoError(t, err)
	require.Equal(t, []int{bob.ID}, ids)

	// The edge is directed, bob follows nobody.
	ids, err = fs.FollowingIDs(bob.ID)
	require.NoError(t, err)
	require.Empty(t, ids)
}

func TestUnfollow(t *testing.T) {
	db := testDB(t)
	us := NewUserService(db, "test-pepper")
	fs := NewFollowService(db)
	alice := registerTestUser(t, us, "alice")
	bob := registerTestUser(t, us, "bob")

	err := fs.Delete(&domain.Follow{FollowerID: alice.ID, FollowedID: bob.ID})
	require.Error(t, err)
	require.Equal(t, errs.ENOTFOUND, errs.ErrorCode(err))

	require.NoError(t, fs.Create(&domain.Follow{FollowerID: alice.ID, FollowedID: bob.ID}))
	require.NoError(t, fs.Delete(&domain.Follow{FollowerID: alice.ID, FollowedID: bob.ID}))

	ids, err := fs.FollowingIDs(alice.ID)
	require.NoError(t, err)
	require.Empty(t, ids)
}
