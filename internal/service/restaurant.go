package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dtroode/izakaya-server/internal/logger"
	"github.com/dtroode/izakaya-server/internal/model"
)

const (
	// IzakayaGenreCode is the provider genre code kept by nearby searches.
	IzakayaGenreCode = "G001"
	// SearchRange is the provider's medium radius tier.
	SearchRange = 2
)

type Restaurant struct {
	provider model.RestaurantProvider
	logger   *logger.Logger
}

func NewRestaurant(provider model.RestaurantProvider, logger *logger.Logger) *Restaurant {
	return &Restaurant{
		provider: provider,
		logger:   logger,
	}
}

// SearchNearby returns the izakayas around the given coordinates. Shops are
// returned in provider order and left untouched.
func (s *Restaurant) SearchNearby(ctx context.Context, latitude, longitude string) ([]model.Shop, error) {
	shops, err := s.provider.Search(ctx, model.SearchParams{
		Latitude:  latitude,
		Longitude: longitude,
		Range:     SearchRange,
	})
	if err != nil {
		s.logger.Error("Restaurant service: nearby search failed",
			"latitude", latitude,
			"longitude", longitude,
			"error", err.Error())
		return nil, fmt.Errorf("failed to search restaurants: %w", err)
	}

	izakayas := make([]model.Shop, 0, len(shops))
	for _, shop := range shops {
		if shop.GenreCode == IzakayaGenreCode {
			izakayas = append(izakayas, shop)
		}
	}

	s.logger.Debug("Restaurant service: nearby search completed",
		"total", len(shops),
		"izakayas", len(izakayas))

	return izakayas, nil
}

// SearchByID returns the provider payload for a restaurant id unfiltered.
func (s *Restaurant) SearchByID(ctx context.Context, restaurantID string) (json.RawMessage, error) {
	payload, err := s.provider.Lookup(ctx, restaurantID)
	if err != nil {
		s.logger.Error("Restaurant service: lookup failed",
			"restaurant_id", restaurantID,
			"error", err.Error())
		return nil, fmt.Errorf("failed to look up restaurant: %w", err)
	}

	return payload, nil
}
