package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	servermocks "github.com/dtroode/izakaya-server/internal/mocks"
	"github.com/dtroode/izakaya-server/internal/model"
	"github.com/dtroode/izakaya-server/internal/testutil"
)

func mustShop(t *testing.T, doc string) model.Shop {
	t.Helper()
	var s model.Shop
	require.NoError(t, json.Unmarshal([]byte(doc), &s))
	return s
}

func TestRestaurant_SearchNearby(t *testing.T) {
	ctx := context.Background()
	params := model.SearchParams{Latitude: "35.68", Longitude: "139.76", Range: SearchRange}

	t.Run("keeps only izakaya genre", func(t *testing.T) {
		provider := servermocks.NewRestaurantProvider(t)
		provider.On("Search", mock.Anything, params).Return([]model.Shop{
			model.NewShop("A", "G001"),
			model.NewShop("B", "G002"),
			model.NewShop("C", "G001"),
		}, nil).Once()

		s := NewRestaurant(provider, testutil.MakeNoopLogger())

		got, err := s.SearchNearby(ctx, "35.68", "139.76")
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "A", got[0].ID)
		assert.Equal(t, "C", got[1].ID)
	})

	t.Run("shop documents pass through unchanged", func(t *testing.T) {
		doc := `{"id":"J001","name":"Torikizoku","genre":{"code":"G001","name":"居酒屋"},"budget":{"average":"2000"}}`
		provider := servermocks.NewRestaurantProvider(t)
		provider.On("Search", mock.Anything, params).Return([]model.Shop{
			mustShop(t, doc),
			mustShop(t, `{"id":"J002","genre":{"code":"G014"}}`),
		}, nil)

		s := NewRestaurant(provider, testutil.MakeNoopLogger())

		got, err := s.SearchNearby(ctx, "35.68", "139.76")
		require.NoError(t, err)
		require.Len(t, got, 1)

		out, err := json.Marshal(got)
		require.NoError(t, err)
		assert.JSONEq(t, "["+doc+"]", string(out))
	})

	t.Run("no izakayas yields empty list", func(t *testing.T) {
		provider := servermocks.NewRestaurantProvider(t)
		provider.On("Search", mock.Anything, params).Return([]model.Shop{
			model.NewShop("B", "G002"),
		}, nil)

		s := NewRestaurant(provider, testutil.MakeNoopLogger())

		got, err := s.SearchNearby(ctx, "35.68", "139.76")
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("provider failure", func(t *testing.T) {
		provider := servermocks.NewRestaurantProvider(t)
		provider.On("Search", mock.Anything, params).Return(nil, model.ErrUpstream)

		s := NewRestaurant(provider, testutil.MakeNoopLogger())

		got, err := s.SearchNearby(ctx, "35.68", "139.76")
		require.ErrorIs(t, err, model.ErrUpstream)
		assert.Nil(t, got)
	})
}

func TestRestaurant_SearchByID(t *testing.T) {
	ctx := context.Background()

	t.Run("returns payload unfiltered", func(t *testing.T) {
		payload := json.RawMessage(`{"results":{"shop":[{"id":"J9","genre":{"code":"G008"}}]}}`)
		provider := servermocks.NewRestaurantProvider(t)
		provider.On("Lookup", mock.Anything, "J9").Return(payload, nil).Once()

		s := NewRestaurant(provider, testutil.MakeNoopLogger())

		got, err := s.SearchByID(ctx, "J9")
		require.NoError(t, err)
		assert.JSONEq(t, string(payload), string(got))
	})

	t.Run("provider failure", func(t *testing.T) {
		provider := servermocks.NewRestaurantProvider(t)
		provider.On("Lookup", mock.Anything, "J9").Return(nil, errors.New("timeout"))

		s := NewRestaurant(provider, testutil.MakeNoopLogger())

		_, err := s.SearchByID(ctx, "J9")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to look up restaurant")
	})
}
