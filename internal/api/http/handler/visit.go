package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/dtroode/izakaya-server/internal/logger"
	"github.com/dtroode/izakaya-server/internal/model"
)

// VisitService defines visit recording operations.
type VisitService interface {
	MarkAsEaten(ctx context.Context, params model.MarkAsEatenParams) error
	ListVisitedRestaurantIDs(ctx context.Context, userID int64) ([]string, error)
}

type markAsEatenRequest struct {
	UserID       flexInt   `json:"user_id"`
	RestaurantID string    `json:"restaurant_id"`
	Rating       flexFloat `json:"rating"`
	VisitedAt    flexTime  `json:"visited_at"`
}

type visitedRestaurant struct {
	RestaurantID string `json:"restaurant_id"`
}

// Visit handles HTTP endpoints for visited restaurants.
type Visit struct {
	visitService VisitService
	logger       *logger.Logger
}

// NewVisit creates a new Visit handler.
func NewVisit(visitService VisitService, logger *logger.Logger) *Visit {
	return &Visit{
		visitService: visitService,
		logger:       logger,
	}
}

// MarkAsEaten records a visit.
func (h *Visit) MarkAsEaten(w http.ResponseWriter, r *http.Request) {
	var req markAsEatenRequest
	if err := decodeBody(w, r, &req); err != nil {
		requestLogger(h.logger, r).Info("Visit handler: malformed mark as eaten request",
			"error", err.Error())
		handleError(w, err)
		return
	}
	if req.UserID == 0 || req.RestaurantID == "" {
		handleError(w, fmt.Errorf("%w: missing required fields", errBadRequest))
		return
	}

	err := h.visitService.MarkAsEaten(r.Context(), model.MarkAsEatenParams{
		UserID:       int64(req.UserID),
		RestaurantID: req.RestaurantID,
		Rating:       float64(req.Rating),
		VisitedAt:    time.Time(req.VisitedAt),
	})
	if err != nil {
		logFailure(requestLogger(h.logger, r), "Visit handler: mark as eaten failed", err,
			"user_id", int64(req.UserID),
			"restaurant_id", req.RestaurantID)
		handleError(w, err)
		return
	}

	writeMessage(w, http.StatusOK, "Restaurant added to the eaten list.")
}

// ListVisited returns the restaurant ids a user has marked.
func (h *Visit) ListVisited(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(mux.Vars(r)["userId"], 10, 64)
	if err != nil {
		handleError(w, fmt.Errorf("%w: invalid user id", errBadRequest))
		return
	}

	ids, err := h.visitService.ListVisitedRestaurantIDs(r.Context(), userID)
	if err != nil {
		logFailure(requestLogger(h.logger, r), "Visit handler: list visited failed", err,
			"user_id", userID)
		handleError(w, err)
		return
	}

	resp := make([]visitedRestaurant, 0, len(ids))
	for _, id := range ids {
		resp = append(resp, visitedRestaurant{RestaurantID: id})
	}

	writeJSON(w, http.StatusOK, resp)
}
