package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/outfique/backend/internal/domain"
)

func postIDs(posts []domain.Post) []string {
	out := make([]string, len(posts))
	for i, p := range posts {
		out[i] = p.ID
	}
	return out
}

func TestFeedService_Like(t *testing.T) {
	feed := NewFeedService(nil)

	post, err := feed.Like("2")
	require.NoError(t, err)
	assert.Equal(t, 90, post.Likes)
	assert.Equal(t, 90, feed.List()[1].Likes)

	_, err = feed.Like("404")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFeedService_ListIsACopy(t *testing.T) {
	feed := NewFeedService(nil)

	posts := feed.List()
	posts[0].Likes = 0

	assert.Equal(t, 127, feed.List()[0].Likes)
}

func TestFeedService_Save(t *testing.T) {
	notes := &recordingNotifier{}
	feed := NewFeedService(notes)

	require.NoError(t, feed.Save(context.Background(), "1"))
	assert.Equal(t, "Saved to collection", notes.last().Title)

	assert.ErrorIs(t, feed.Save(context.Background(), "404"), domain.ErrNotFound)
}

func TestFeedService_SearchUsers(t *testing.T) {
	feed := NewFeedService(nil)

	got := feed.SearchUsers("JANE")
	require.Len(t, got, 1)
	assert.Equal(t, "fashionista_jane", got[0].Username)

	assert.Len(t, feed.SearchUsers("urban chic"), 1, "display name matches")
	assert.Len(t, feed.SearchUsers(""), 3)
	assert.Empty(t, feed.SearchUsers("nobody"))
}

func TestFeedService_SearchPosts(t *testing.T) {
	feed := NewFeedService(nil)

	assert.Equal(t, []string{"1", "2", "3", "4"}, postIDs(feed.SearchPosts("")))
	assert.Equal(t, []string{"4"}, postIDs(feed.SearchPosts("minimal")))
	assert.Equal(t, []string{"2"}, postIDs(feed.SearchPosts("friday")))
	assert.Empty(t, feed.SearchPosts("tuxedo"))
}
