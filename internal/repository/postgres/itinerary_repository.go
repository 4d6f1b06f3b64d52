package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/chronopilferer/Trendy-Trip-Algorithm/internal/domain"
	"github.com/chronopilferer/Trendy-Trip-Algorithm/internal/domain/repository"
	apperrors "github.com/chronopilferer/Trendy-Trip-Algorithm/internal/pkg/errors"
)

type itineraryRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewItineraryRepository(db *DB, logger *zap.Logger) repository.ItineraryRepository {
	return &itineraryRepository{
		db:     db,
		logger: logger,
	}
}

// itineraryRow mirrors the itineraries table. Route and meal choices are
// stored as JSONB since they are read back whole, never queried into.
type itineraryRow struct {
	ID          string         `db:"id"`
	Date        sql.NullString `db:"date"`
	Objective   int64          `db:"objective"`
	MealChoices []byte         `db:"meal_choices"`
	Route       []byte         `db:"route"`
	CreatedAt   sql.NullTime   `db:"created_at"`
}

func (r *itineraryRepository) Save(ctx context.Context, itinerary *domain.Itinerary) error {
	mealChoices, err := json.Marshal(itinerary.MealChoices)
	if err != nil {
		return fmt.Errorf("marshal meal choices: %w", err)
	}
	route, err := json.Marshal(itinerary.Visits)
	if err != nil {
		return fmt.Errorf("marshal route: %w", err)
	}

	query := `
		INSERT INTO itineraries (id, date, objective, meal_choices, route, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err = r.db.ExecContext(ctx, query,
		itinerary.ID,
		itinerary.Date,
		itinerary.Objective,
		mealChoices,
		route,
		itinerary.CreatedAt,
	)
	if err != nil {
		r.logger.Error("Failed to insert itinerary", zap.String("id", itinerary.ID), zap.Error(err))
		return fmt.Errorf("insert itinerary: %w", err)
	}

	return nil
}

func (r *itineraryRepository) GetByID(ctx context.Context, id string) (*domain.Itinerary, error) {
	query := `
		SELECT id, date, objective, meal_choices, route, created_at
		FROM itineraries
		WHERE id = $1
	`

	var row itineraryRow
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrItineraryNotFound
		}
		r.logger.Error("Failed to query itinerary", zap.String("id", id), zap.Error(err))
		return nil, fmt.Errorf("query itinerary: %w", err)
	}

	return rowToItinerary(&row)
}

func (r *itineraryRepository) List(ctx context.Context, limit, offset int) ([]domain.Itinerary, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM itineraries`); err != nil {
		return nil, 0, fmt.Errorf("count itineraries: %w", err)
	}

	query := `
		SELECT id, date, objective, meal_choices, route, created_at
		FROM itineraries
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	var rows []itineraryRow
	if err := r.db.SelectContext(ctx, &rows, query, limit, offset); err != nil {
		r.logger.Error("Failed to list itineraries", zap.Error(err))
		return nil, 0, fmt.Errorf("list itineraries: %w", err)
	}

	itineraries := make([]domain.Itinerary, 0, len(rows))
	for i := range rows {
		itinerary, err := rowToItinerary(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		itineraries = append(itineraries, *itinerary)
	}

	return itineraries, total, nil
}

func rowToItinerary(row *itineraryRow) (*domain.Itinerary, error) {
	itinerary := &domain.Itinerary{
		ID:        row.ID,
		Objective: row.Objective,
	}
	if row.Date.Valid {
		itinerary.Date = row.Date.String
	}
	if row.CreatedAt.Valid {
		itinerary.CreatedAt = row.CreatedAt.Time
	}
	if len(row.MealChoices) > 0 {
		if err := json.Unmarshal(row.MealChoices, &itinerary.MealChoices); err != nil {
			return nil, fmt.Errorf("unmarshal meal choices: %w", err)
		}
	}
	if len(row.Route) > 0 {
		if err := json.Unmarshal(row.Route, &itinerary.Visits); err != nil {
			return nil, fmt.Errorf("unmarshal route: %w", err)
		}
	}
	return itinerary, nil
}
