package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/dtroode/izakaya-server/internal/logger"
	"github.com/dtroode/izakaya-server/internal/model"
)

// RestaurantService defines restaurant search operations.
type RestaurantService interface {
	SearchNearby(ctx context.Context, latitude, longitude string) ([]model.Shop, error)
	SearchByID(ctx context.Context, restaurantID string) (json.RawMessage, error)
}

// Restaurant handles HTTP endpoints for restaurant search.
type Restaurant struct {
	restaurantService RestaurantService
	logger            *logger.Logger
}

// NewRestaurant creates a new Restaurant handler.
func NewRestaurant(restaurantService RestaurantService, logger *logger.Logger) *Restaurant {
	return &Restaurant{
		restaurantService: restaurantService,
		logger:            logger,
	}
}

// SearchNearby lists izakayas around the latitude and longitude query parameters.
func (h *Restaurant) SearchNearby(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	latitude, longitude := q.Get("latitude"), q.Get("longitude")

	shops, err := h.restaurantService.SearchNearby(r.Context(), latitude, longitude)
	if err != nil {
		logFailure(requestLogger(h.logger, r), "Restaurant handler: nearby search failed", err,
			"latitude", latitude,
			"longitude", longitude)
		handleError(w, err)
		return
	}

	if shops == nil {
		shops = []model.Shop{}
	}

	writeJSON(w, http.StatusOK, shops)
}

// SearchByID returns the provider payload for one restaurant.
func (h *Restaurant) SearchByID(w http.ResponseWriter, r *http.Request) {
	restaurantID := mux.Vars(r)["restaurantId"]

	payload, err := h.restaurantService.SearchByID(r.Context(), restaurantID)
	if err != nil {
		logFailure(requestLogger(h.logger, r), "Restaurant handler: lookup failed", err,
			"restaurant_id", restaurantID)
		handleError(w, err)
		return
	}

	writeRawJSON(w, http.StatusOK, payload)
}
