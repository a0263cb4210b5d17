package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/outfique/backend/internal/domain"
)

// DefaultNoticeLimit bounds how many notices the board keeps
const DefaultNoticeLimit = 50

// NoticeBoard collects user-facing notices, newest first.
// The UI polls Recent or Drain to render them as toasts.
type NoticeBoard struct {
	mu      sync.Mutex
	notices []domain.Notice
	limit   int
	now     func() time.Time
	logger  *slog.Logger
}

// NewNoticeBoard creates a board keeping at most limit notices
func NewNoticeBoard(limit int, logger *slog.Logger) *NoticeBoard {
	if limit <= 0 {
		limit = DefaultNoticeLimit
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &NoticeBoard{limit: limit, now: time.Now, logger: logger}
}

// Notify implements domain.Notifier
func (b *NoticeBoard) Notify(ctx context.Context, n domain.Notice) {
	if n.CreatedAt.IsZero() {
		n.CreatedAt = b.now()
	}

	level := slog.LevelInfo
	if n.Destructive {
		level = slog.LevelWarn
	}
	b.logger.Log(ctx, level, "notice", "title", n.Title, "description", n.Description)

	b.mu.Lock()
	defer b.mu.Unlock()
	b.notices = append([]domain.Notice{n}, b.notices...)
	if len(b.notices) > b.limit {
		b.notices = b.notices[:b.limit]
	}
}

// Recent returns a copy of the held notices
func (b *NoticeBoard) Recent() []domain.Notice {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]domain.Notice, len(b.notices))
	copy(out, b.notices)
	return out
}

// Drain returns the held notices and empties the board
func (b *NoticeBoard) Drain() []domain.Notice {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := b.notices
	if out == nil {
		out = []domain.Notice{}
	}
	b.notices = nil
	return out
}
