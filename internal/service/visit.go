package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dtroode/izakaya-server/internal/logger"
	"github.com/dtroode/izakaya-server/internal/model"
)

type Visit struct {
	visitStore model.VisitStore
	userStore  model.UserStore
	logger     *logger.Logger
	now        func() time.Time
}

func NewVisit(
	visitStore model.VisitStore,
	userStore model.UserStore,
	logger *logger.Logger,
) *Visit {
	return &Visit{
		visitStore: visitStore,
		userStore:  userStore,
		logger:     logger,
		now:        time.Now,
	}
}

// MarkAsEaten appends a visit for an existing user. The same restaurant
// may be recorded any number of times.
func (s *Visit) MarkAsEaten(ctx context.Context, params model.MarkAsEatenParams) error {
	_, err := s.userStore.GetByID(ctx, params.UserID)
	if errors.Is(err, model.ErrNotFound) {
		s.logger.Info("Visit service: user not found",
			"user_id", params.UserID)
		return model.ErrUserNotFound
	}
	if err != nil {
		s.logger.Error("Visit service: failed to get user by id",
			"user_id", params.UserID,
			"error", err.Error())
		return fmt.Errorf("failed to get user by id: %w", err)
	}

	visitedAt := params.VisitedAt
	if visitedAt.IsZero() {
		visitedAt = s.now().UTC()
	}

	visit, err := s.visitStore.Create(ctx, model.Visit{
		UserID:       params.UserID,
		RestaurantID: params.RestaurantID,
		Rating:       params.Rating,
		VisitedAt:    visitedAt,
	})
	if err != nil {
		s.logger.Error("Visit service: failed to save visit",
			"user_id", params.UserID,
			"restaurant_id", params.RestaurantID,
			"error", err.Error())
		return fmt.Errorf("failed to save visit: %w", err)
	}

	s.logger.Info("Visit service: restaurant marked as eaten",
		"user_id", visit.UserID,
		"restaurant_id", visit.RestaurantID,
		"visit_id", visit.ID)

	return nil
}

// ListVisitedRestaurantIDs returns the restaurant ids a user has marked, in
// the order they were recorded. Unknown users simply have no visits.
func (s *Visit) ListVisitedRestaurantIDs(ctx context.Context, userID int64) ([]string, error) {
	ids, err := s.visitStore.GetRestaurantIDsByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("Visit service: failed to list visited restaurants",
			"user_id", userID,
			"error", err.Error())
		return nil, fmt.Errorf("failed to list visited restaurants: %w", err)
	}

	if ids == nil {
		ids = []string{}
	}

	return ids, nil
}
