package postgres

import (
	"context"
	"fmt"

	"github.com/dtroode/izakaya-server/internal/model"
)

var _ model.VisitStore = (*VisitRepository)(nil)

type VisitRepository struct {
	db DBTX
}

func NewVisitRepository(db DBTX) *VisitRepository {
	return &VisitRepository{
		db: db,
	}
}

func (r *VisitRepository) Create(ctx context.Context, visit model.Visit) (model.Visit, error) {
	query := `INSERT INTO visited_restaurants (user_id, restaurant_id, rating, visited_at)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id, user_id, restaurant_id, rating, visited_at`

	var saved model.Visit
	err := r.db.QueryRowContext(ctx, query,
		visit.UserID, visit.RestaurantID, visit.Rating, visit.VisitedAt,
	).Scan(
		&saved.ID, &saved.UserID, &saved.RestaurantID, &saved.Rating, &saved.VisitedAt,
	)
	if err != nil {
		return model.Visit{}, fmt.Errorf("failed to create visit: %w", err)
	}

	return saved, nil
}

func (r *VisitRepository) GetRestaurantIDsByUserID(ctx context.Context, userID int64) ([]string, error) {
	query := `SELECT restaurant_id FROM visited_restaurants
			  WHERE user_id = $1
			  ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query visited restaurants: %w", err)
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan visited restaurant: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate visited restaurants: %w", err)
	}

	return ids, nil
}
