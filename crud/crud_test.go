package crud

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"snapFeed/domain"
)

// testDB opens a fresh in-memory sqlite database carrying the full schema.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	// Every pooled connection would otherwise get its own private :memory:
	// database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	err = db.AutoMigrate(
		domain.User{},
		domain.Follow{},
		domain.Post{},
		domain.Comment{},
		domain.Like{},
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB, err := db.DB()
		require.NoError(t, err)
		sqlDB.Close()
	})
	return db
}

// registerTestUser registers a user through the full validation chain.
func registerTestUser(t *testing.T, us *UserService, username string) *domain.User {
	t.Helper()
	user := &domain.User{
		Email:    username + "@example.com",
		Username: username,
		Password: "password123",
	}
	require.NoError(t, us.Register(user))
	return user
}

// createTestPost creates a post owned by the given user.
func createTestPost(t *testing.T, ps *PostService, userID int, description string) *domain.Post {
	t.Helper()
	post := &domain.Post{
		UserID:      userID,
		Description: description,
	}
	require.NoError(t, ps.Create(post))
	return post
}
