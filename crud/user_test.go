package crud

import (
	"testing"

	"github.com/stretchr/testify/require"

	"snapFeed/domain"
	"snapFeed/errs"
)

func TestRegister(t *testing.T) {
	us := NewUserService(testDB(t), "test-pepper")

	user := registerTestUser(t, us, "alice")
	require.NotZero(t, user.ID)
	require.Empty(t, user.Password, "plaintext password must be cleared after hashing")
	require.NotEmpty(t, user.PasswordHash)
	require.NotEqual(t, "password123", user.PasswordHash)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	us := NewUserService(testDB(t), "test-pepper")
	registerTestUser(t, us, "alice")

	dup := &domain.User{
		Email:    "alice@example.com",
		Username: "someone_else",
		Password: "password123",
	}
	err := us.Register(dup)
	require.Error(t, err)
	require.Equal(t, errs.ECONFLICT, errs.ErrorCode(err))
}

func TestRegisterDuplicateUsername(t *testing.T) {
	us := NewUserService(testDB(t), "test-pepper")
	registerTestUser(t, us, "alice")

	dup := &domain.User{
		Email:    "other@example.com",
		Username: "alice",
		Password: "password123",
	}
	err := us.Register(dup)
	require.Error(t, err)
	require.Equal(t, errs.ECONFLICT, errs.ErrorCode(err))
}

func TestRegisterInvalidInput(t *testing.T) {
	us := NewUserService(testDB(t), "test-pepper")

	for name, user := range map[string]*domain.User{
		"missing password": {Email: "a@example.com", Username: "a"},
		"short password":   {Email: "a@example.com", Username: "a", Password: "short"},
		"missing email":    {Username: "a", Password: "password123"},
		"bad email":        {Email: "not-an-email", Username: "a", Password: "password123"},
		"missing username": {Email: "a@example.com", Password: "password123"},
	} {
		err := us.Register(user)
		require.Error(t, err, name)
		require.Equal(t, errs.EINVALID, errs.ErrorCode(err), name)
	}
}

func TestAuthenticate(t *testing.T) {
	us := NewUserService(testDB(t), "test-pepper")
	registered := registerTestUser(t, us, "alice")

	found, err := us.Authenticate("alice@example.com", "password123")
	require.NoError(t, err)
	require.Equal(t, registered.ID, found.ID)
}

func TestAuthenticateDoesNotLeakWhichCheckFailed(t *testing.T) {
	us := NewUserService(testDB(t), "test-pepper")
	registerTestUser(t, us, "alice")

	_, unknownEmailErr := us.Authenticate("nobody@example.com", "password123")
	_, wrongPasswordErr := us.Authenticate("alice@example.com", "wrong-password")

	require.Error(t, unknownEmailErr)
	require.Error(t, wrongPasswordErr)
	require.Equal(t, errs.EUNAUTHORIZED, errs.ErrorCode(unknownEmailErr))
	require.Equal(t, errs.EUNAUTHORIZED, errs.ErrorCode(wrongPasswordErr))
	require.Equal(t, errs.ErrorMessage(unknownEmailErr), errs.ErrorMessage(wrongPasswordErr))
}

func TestSearchByUsername(t *testing.T) {
	us := NewUserService(testDB(t), "test-pepper")
	registerTestUser(t, us, "alice")
	registerTestUser(t, us, "alicia")
	registerTestUser(t, us, "bob")

	found, err := us.SearchByUsername("ALI")
	require.NoError(t, err)
	require.Len(t, found, 2, "search matches case-insensitively")
	require.Equal(t, "alice", found[0].Username)
	require.Equal(t, "alicia", found[1].Username)

	none, err := us.SearchByUsername("zzz")
	require.NoError(t, err)
	require.Empty(t, none)
}
