package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/outfique/backend/internal/domain"
	"github.com/outfique/backend/internal/media"
	"github.com/outfique/backend/internal/service"
)

// Uploader presigns wardrobe photo uploads
type Uploader interface {
	PresignUpload(ctx context.Context, userID, contentType string) (media.Upload, error)
}

// HealthChecker reports whether a backing store is reachable
type HealthChecker interface {
	Health(ctx context.Context) error
}

// Deps are the services the handlers serve
type Deps struct {
	Auth          *service.AuthService
	Wardrobe      *service.WardrobeService
	Weather       *service.WeatherTracker
	Suggestions   *service.SuggestionService
	Feed          *service.FeedService
	Notifications *service.NotificationService
	Notices       *service.NoticeBoard
	Uploader      Uploader // nil disables photo uploads
	Store         HealthChecker
}

// Handler contains all HTTP handlers
type Handler struct {
	Deps
}

// NewHandler creates a new handler
func NewHandler(deps Deps) *Handler {
	return &Handler{Deps: deps}
}

func ok(c *fiber.Ctx, data any) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

// HealthCheck returns service health status
func (h *Handler) HealthCheck(c *fiber.Ctx) error {
	status := "ok"
	code := fiber.StatusOK
	if h.Store != nil {
		if err := h.Store.Health(c.Context()); err != nil {
			status = "degraded"
			code = fiber.StatusServiceUnavailable
		}
	}

	return c.Status(code).JSON(fiber.Map{
		"status":  status,
		"service": "outfique-backend",
		"version": "1.0.0",
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	User          *domain.User `json:"user"`
	Authenticated bool         `json:"authenticated"`
}

// Login signs in with email and password
func (h *Handler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if strings.TrimSpace(req.Email) == "" {
		return domain.NewInvalidInput("email is required")
	}

	user, err := h.Auth.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return ok(c, sessionResponse{User: user, Authenticated: true})
}

// Signup registers a new account and signs it in
func (h *Handler) Signup(c *fiber.Ctx) error {
	var req signupRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if strings.TrimSpace(req.Username) == "" || strings.TrimSpace(req.Email) == "" {
		return domain.NewInvalidInput("username and email are required")
	}

	user, err := h.Auth.Signup(c.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    sessionResponse{User: user, Authenticated: true},
	})
}

// Logout ends the session
func (h *Handler) Logout(c *fiber.Ctx) error {
	h.Auth.Logout(c.Context())
	return ok(c, sessionResponse{})
}

// GetSession returns the signed-in user, if any
func (h *Handler) GetSession(c *fiber.Ctx) error {
	user := h.Auth.CurrentUser()
	return ok(c, sessionResponse{User: user, Authenticated: user != nil})
}

// UpdateProfile edits the signed-in user's profile
func (h *Handler) UpdateProfile(c *fiber.Ctx) error {
	var upd domain.ProfileUpdate
	if err := c.BodyParser(&upd); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	user, updated := h.Auth.UpdateProfile(c.Context(), upd)
	if !updated {
		return domain.ErrAuthRequired
	}
	return ok(c, user)
}

// GetWardrobe returns the wardrobe state, optionally filtered by season or category
func (h *Handler) GetWardrobe(c *fiber.Ctx) error {
	if season := c.Query("season"); season != "" {
		s := domain.Season(strings.ToLower(season))
		if !s.Valid() {
			return domain.NewInvalidInput("unknown season " + season)
		}
		return ok(c, h.Wardrobe.BySeason(s))
	}
	if category := c.Query("category"); category != "" {
		return ok(c, h.Wardrobe.ByCategory(category))
	}
	return ok(c, h.Wardrobe.Snapshot())
}

// AddWardrobeItem stores a new item for the signed-in user
func (h *Handler) AddWardrobeItem(c *fiber.Ctx) error {
	var in domain.NewWardrobeItem
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	item, err := h.Wardrobe.Add(c.Context(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    item,
	})
}

// DeleteWardrobeItem removes an item by id
func (h *Handler) DeleteWardrobeItem(c *fiber.Ctx) error {
	if err := h.Wardrobe.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return ok(c, h.Wardrobe.Snapshot())
}

// RefreshWardrobe reloads the wardrobe from the store
func (h *Handler) RefreshWardrobe(c *fiber.Ctx) error {
	if err := h.Wardrobe.Refetch(c.Context()); err != nil {
		return err
	}
	return ok(c, h.Wardrobe.Snapshot())
}

type uploadRequest struct {
	ContentType string `json:"content_type"`
}

// CreateUpload returns a presigned URL for a wardrobe photo
func (h *Handler) CreateUpload(c *fiber.Ctx) error {
	if h.Uploader == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "Photo uploads are not configured")
	}
	user := h.Auth.CurrentUser()
	if user == nil {
		return domain.ErrAuthRequired
	}

	var req uploadRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	upload, err := h.Uploader.PresignUpload(c.Context(), user.ID, req.ContentType)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    upload,
	})
}

// GetWeather looks up the weather for ?city, or returns the last lookup
func (h *Handler) GetWeather(c *fiber.Ctx) error {
	// the tracker keeps the city past this request
	return ok(c, h.Weather.Lookup(c.Context(), utils.CopyString(c.Query("city"))))
}

// GetSuggestions returns outfit suggestions for ?city
func (h *Handler) GetSuggestions(c *fiber.Ctx) error {
	return ok(c, h.Suggestions.ForCity(c.Context(), utils.CopyString(c.Query("city"))))
}

// GetFeed returns the outfit feed
func (h *Handler) GetFeed(c *fiber.Ctx) error {
	return ok(c, h.Feed.List())
}

// LikePost adds a like to a post
func (h *Handler) LikePost(c *fiber.Ctx) error {
	post, err := h.Feed.Like(c.Params("id"))
	if err != nil {
		return err
	}
	return ok(c, post)
}

// SavePost saves a post to the user's collection
func (h *Handler) SavePost(c *fiber.Ctx) error {
	if err := h.Feed.Save(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return ok(c, nil)
}

// Search finds outfits or users; ?type=users switches to profiles
func (h *Handler) Search(c *fiber.Ctx) error {
	query := c.Query("q")
	switch c.Query("type", "outfits") {
	case "users":
		return ok(c, h.Feed.SearchUsers(query))
	case "outfits":
		return ok(c, h.Feed.SearchPosts(query))
	default:
		return domain.NewInvalidInput("type must be outfits or users")
	}
}

// GetNotifications returns the signed-in user's inbox
func (h *Handler) GetNotifications(c *fiber.Ctx) error {
	items, err := h.Notifications.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    items,
		"count":   len(items),
	})
}

// MarkNotificationsRead flags every notification as read
func (h *Handler) MarkNotificationsRead(c *fiber.Ctx) error {
	n, err := h.Notifications.MarkAllRead(c.Context())
	if err != nil {
		return err
	}
	return ok(c, fiber.Map{"updated": n})
}

// GetNotices returns pending toasts; ?peek=true leaves them in place
func (h *Handler) GetNotices(c *fiber.Ctx) error {
	if c.QueryBool("peek") {
		return ok(c, h.Notices.Recent())
	}
	return ok(c, h.Notices.Drain())
}
