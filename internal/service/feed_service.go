package service

import (
	"context"
	"strings"
	"sync"

	"github.com/outfique/backend/internal/domain"
	"github.com/outfique/backend/pkg/utils"
)

func seedPosts() []domain.Post {
	return []domain.Post{
		{
			ID:       "1",
			Author:   domain.Author{ID: "1", Username: "fashionista_jane", Avatar: "https://images.unsplash.com/photo-1494790108755-2616b6c10-db.jpg?w=100&h=100&fit=crop&crop=face"},
			Image:    "https://images.unsplash.com/photo-1649972904349-6e44c42644a7?w=400&h=400&fit=crop",
			Caption:  "Perfect spring vibes! 🌸",
			Likes:    127,
			Comments: 23,
		},
		{
			ID:       "2",
			Author:   domain.Author{ID: "2", Username: "style_maven", Avatar: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=100&h=100&fit=crop&crop=face"},
			Image:    "https://images.unsplash.com/photo-1581091226825-a6a2a5aee158?w=400&h=400&fit=crop",
			Caption:  "Casual Friday done right ✨",
			Likes:    89,
			Comments: 12,
		},
		{
			ID:       "3",
			Author:   domain.Author{ID: "3", Username: "urban_chic", Avatar: "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=100&h=100&fit=crop&crop=face"},
			Image:    "https://images.unsplash.com/photo-1581092795360-fd1ca04f0952?w=400&h=400&fit=crop",
			Caption:  "Weekend mood 🌟",
			Likes:    156,
			Comments: 34,
		},
		{
			ID:     "4",
			Author: domain.Author{ID: "4", Username: "modern_minimalist"},
			Image:  "https://images.unsplash.com/photo-1721322800607-8c38375eef04?w=400&h=400&fit=crop",
			Likes:  203,
		},
	}
}

func seedProfiles() []domain.ProfileSummary {
	return []domain.ProfileSummary{
		{ID: "1", Username: "fashionista_jane", DisplayName: "Jane Doe", Followers: "1.2k"},
		{ID: "2", Username: "style_maven", DisplayName: "Style Maven", Followers: "856"},
		{ID: "3", Username: "urban_chic", DisplayName: "Urban Chic", Followers: "2.1k"},
	}
}

// FeedService serves the outfit feed and search over a seeded catalog
type FeedService struct {
	notifier domain.Notifier

	mu       sync.RWMutex
	posts    []domain.Post
	profiles []domain.ProfileSummary
}

// NewFeedService creates a feed with the sample posts and profiles
func NewFeedService(notifier domain.Notifier) *FeedService {
	return &FeedService{
		notifier: notifier,
		posts:    seedPosts(),
		profiles: seedProfiles(),
	}
}

// List returns the feed in display order
func (s *FeedService) List() []domain.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Post, len(s.posts))
	copy(out, s.posts)
	return out
}

// Like adds one like to the post
func (s *FeedService) Like(id string) (domain.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.posts {
		if s.posts[i].ID == id {
			s.posts[i].Likes++
			return s.posts[i], nil
		}
	}
	return domain.Post{}, domain.ErrNotFound
}

// Save records the post in the user's collection
func (s *FeedService) Save(ctx context.Context, id string) error {
	if !s.exists(id) {
		return domain.ErrNotFound
	}
	if s.notifier != nil {
		s.notifier.Notify(ctx, domain.Notice{
			Title:       "Saved to collection",
			Description: "This outfit has been saved to your wardrobe",
		})
	}
	return nil
}

func (s *FeedService) exists(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.posts {
		if p.ID == id {
			return true
		}
	}
	return false
}

// SearchUsers matches query against username and display name, ignoring case
func (s *FeedService) SearchUsers(query string) []domain.ProfileSummary {
	query = strings.TrimSpace(query)
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.ProfileSummary{}
	for _, p := range s.profiles {
		if utils.ContainsFold(p.Username, query) || utils.ContainsFold(p.DisplayName, query) {
			out = append(out, p)
		}
	}
	return out
}

// SearchPosts matches query against author and caption; an empty query returns every post
func (s *FeedService) SearchPosts(query string) []domain.Post {
	query = strings.TrimSpace(query)
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.Post{}
	for _, p := range s.posts {
		if utils.ContainsFold(p.Author.Username, query) || utils.ContainsFold(p.Caption, query) {
			out = append(out, p)
		}
	}
	return out
}
