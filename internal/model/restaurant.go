package model

import (
	"context"
	"encoding/json"
	"fmt"
)

// RestaurantProvider is the upstream restaurant search API.
type RestaurantProvider interface {
	Search(ctx context.Context, params SearchParams) ([]Shop, error)
	Lookup(ctx context.Context, id string) (json.RawMessage, error)
}

// SearchParams contains geo search parameters. Coordinates are passed
// to the provider as given.
type SearchParams struct {
	Latitude  string
	Longitude string
	Range     int
}

// Shop is a restaurant as returned by the provider. Only the fields used
// for filtering are decoded; the provider document is kept and emitted
// unchanged on marshal.
type Shop struct {
	ID        string
	GenreCode string
	raw       json.RawMessage
}

type shopProbe struct {
	ID    string `json:"id"`
	Genre struct {
		Code string `json:"code"`
	} `json:"genre"`
}

// NewShop builds a Shop without a provider document.
func NewShop(id, genreCode string) Shop {
	return Shop{ID: id, GenreCode: genreCode}
}

// UnmarshalJSON decodes the id and genre code and retains the raw document.
func (s *Shop) UnmarshalJSON(data []byte) error {
	var p shopProbe
	if err := json.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("failed to decode shop: %w", err)
	}

	s.ID = p.ID
	s.GenreCode = p.Genre.Code
	s.raw = append(json.RawMessage(nil), data...)

	return nil
}

// MarshalJSON returns the provider document when present.
func (s Shop) MarshalJSON() ([]byte, error) {
	if len(s.raw) > 0 {
		return s.raw, nil
	}

	p := shopProbe{ID: s.ID}
	p.Genre.Code = s.GenreCode

	return json.Marshal(p)
}
