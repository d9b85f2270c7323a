package domain

// FeedService assembles a user's feed: every post whose author is the user
// themselves or someone they follow, newest first, fully hydrated.
type FeedService interface {
	Build(userID int) ([]Post, error)
}
