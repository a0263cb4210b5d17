package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/outfique/backend/internal/domain"
)

var _ domain.WardrobeRepository = (*WardrobeRepository)(nil)

const wardrobeColumns = `id, user_id, name, category, color, season, image_url, created_at, updated_at`

// WardrobeRepository implements domain.WardrobeRepository on PostgreSQL
type WardrobeRepository struct {
	db DBTX
}

// NewWardrobeRepository creates a new wardrobe repository
func NewWardrobeRepository(db DBTX) *WardrobeRepository {
	return &WardrobeRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanWardrobeItem(row rowScanner) (domain.WardrobeItem, error) {
	var (
		item   domain.WardrobeItem
		season string
	)
	err := row.Scan(
		&item.ID, &item.UserID, &item.Name, &item.Category, &item.Color,
		&season, &item.ImageURL, &item.CreatedAt, &item.UpdatedAt,
	)
	item.Season = domain.Season(season)
	return item, err
}

// ListByUser returns the user's items, newest first
func (r *WardrobeRepository) ListByUser(ctx context.Context, userID string) ([]domain.WardrobeItem, error) {
	query := `
		SELECT ` + wardrobeColumns + `
		FROM wardrobe_items
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to query wardrobe items: %w", err)
	}
	defer rows.Close()

	items := make([]domain.WardrobeItem, 0)
	for rows.Next() {
		item, err := scanWardrobeItem(rows)
		if err != nil {
			return nil, fmt.Errorf("postgres: failed to scan wardrobe row: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: failed to iterate wardrobe rows: %w", err)
	}

	return items, nil
}

// Insert stores a new item and returns the created row
func (r *WardrobeRepository) Insert(ctx context.Context, userID string, in domain.NewWardrobeItem) (domain.WardrobeItem, error) {
	query := `
		INSERT INTO wardrobe_items (user_id, name, category, color, season, image_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + wardrobeColumns

	row := r.db.QueryRowContext(ctx, query,
		userID, in.Name, in.Category, in.Color, string(in.Season), in.ImageURL,
	)
	item, err := scanWardrobeItem(row)
	if err != nil {
		return domain.WardrobeItem{}, fmt.Errorf("postgres: failed to insert wardrobe item: %w", err)
	}

	return item, nil
}

// Delete removes an item by id; ids that are not UUIDs cannot exist and are ignored
func (r *WardrobeRepository) Delete(ctx context.Context, id string) error {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM wardrobe_items WHERE id = $1`, parsed.String()); err != nil {
		return fmt.Errorf("postgres: failed to delete wardrobe item: %w", err)
	}

	return nil
}

// Health checks database connectivity
func (r *WardrobeRepository) Health(ctx context.Context) error {
	var one int
	if err := r.db.QueryRowContext(ctx, `SELECT 1`).Scan(&one); err != nil {
		return fmt.Errorf("postgres: health check failed: %w", err)
	}
	return nil
}
