package model

import (
	"context"
	"time"
)

// VisitStore defines persistence operations for visited restaurants.
type VisitStore interface {
	Create(ctx context.Context, visit Visit) (Visit, error)
	// GetRestaurantIDsByUserID returns restaurant ids in insertion order.
	GetRestaurantIDsByUserID(ctx context.Context, userID int64) ([]string, error)
}

// Visit is one "eaten" mark. Visits are append-only.
type Visit struct {
	ID           int64
	UserID       int64
	RestaurantID string
	Rating       float64
	VisitedAt    time.Time
}

// MarkAsEatenParams contains parameters to record a visit.
type MarkAsEatenParams struct {
	UserID       int64
	RestaurantID string
	Rating       float64
	VisitedAt    time.Time
}
