package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	servermocks "github.com/dtroode/izakaya-server/internal/mocks"
	"github.com/dtroode/izakaya-server/internal/model"
	"github.com/dtroode/izakaya-server/internal/testutil"
)

func TestVisit_MarkAsEaten(t *testing.T) {
	ctx := context.Background()
	fixedNow := time.Date(2024, 5, 1, 12, 0, 0, 0, time.FixedZone("JST", 9*60*60))
	visitedAt := time.Date(2024, 4, 20, 19, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		params  model.MarkAsEatenParams
		setup   func(*servermocks.UserStore, *servermocks.VisitStore)
		wantErr error
	}{
		{
			name:   "records visit with given time",
			params: model.MarkAsEatenParams{UserID: 7, RestaurantID: "J001", Rating: 4, VisitedAt: visitedAt},
			setup: func(us *servermocks.UserStore, vs *servermocks.VisitStore) {
				us.On("GetByID", mock.Anything, int64(7)).Return(model.User{ID: 7}, nil)
				vs.On("Create", mock.Anything, model.Visit{UserID: 7, RestaurantID: "J001", Rating: 4, VisitedAt: visitedAt}).
					Return(model.Visit{ID: 1, UserID: 7, RestaurantID: "J001"}, nil).Once()
			},
		},
		{
			name:   "defaults visited time to now",
			params: model.MarkAsEatenParams{UserID: 7, RestaurantID: "J001"},
			setup: func(us *servermocks.UserStore, vs *servermocks.VisitStore) {
				us.On("GetByID", mock.Anything, int64(7)).Return(model.User{ID: 7}, nil)
				vs.On("Create", mock.Anything, model.Visit{UserID: 7, RestaurantID: "J001", VisitedAt: fixedNow.UTC()}).
					Return(model.Visit{ID: 2}, nil).Once()
			},
		},
		{
			name:   "unknown user",
			params: model.MarkAsEatenParams{UserID: 404, RestaurantID: "J001"},
			setup: func(us *servermocks.UserStore, vs *servermocks.VisitStore) {
				us.On("GetByID", mock.Anything, int64(404)).Return(model.User{}, model.ErrNotFound)
			},
			wantErr: model.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userStore := servermocks.NewUserStore(t)
			visitStore := servermocks.NewVisitStore(t)
			tt.setup(userStore, visitStore)

			s := NewVisit(visitStore, userStore, testutil.MakeNoopLogger())
			s.now = func() time.Time { return fixedNow }

			err := s.MarkAsEaten(ctx, tt.params)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				visitStore.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestVisit_MarkAsEaten_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("user lookup fails", func(t *testing.T) {
		userStore := servermocks.NewUserStore(t)
		visitStore := servermocks.NewVisitStore(t)
		userStore.On("GetByID", mock.Anything, int64(1)).Return(model.User{}, errors.New("db down"))

		s := NewVisit(visitStore, userStore, testutil.MakeNoopLogger())

		err := s.MarkAsEaten(ctx, model.MarkAsEatenParams{UserID: 1, RestaurantID: "J1"})
		require.Error(t, err)
		assert.NotErrorIs(t, err, model.ErrUserNotFound)
	})

	t.Run("insert fails", func(t *testing.T) {
		userStore := servermocks.NewUserStore(t)
		visitStore := servermocks.NewVisitStore(t)
		userStore.On("GetByID", mock.Anything, int64(1)).Return(model.User{ID: 1}, nil)
		visitStore.On("Create", mock.Anything, mock.Anything).Return(model.Visit{}, errors.New("db down"))

		s := NewVisit(visitStore, userStore, testutil.MakeNoopLogger())

		err := s.MarkAsEaten(ctx, model.MarkAsEatenParams{UserID: 1, RestaurantID: "J1"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to save visit")
	})
}

func TestVisit_MarkAsEaten_DuplicatesAllowed(t *testing.T) {
	userStore := servermocks.NewUserStore(t)
	visitStore := servermocks.NewVisitStore(t)
	userStore.On("GetByID", mock.Anything, int64(3)).Return(model.User{ID: 3}, nil).Twice()
	visitStore.On("Create", mock.Anything, mock.MatchedBy(func(v model.Visit) bool {
		return v.UserID == 3 && v.RestaurantID == "J1"
	})).Return(model.Visit{}, nil).Twice()

	s := NewVisit(visitStore, userStore, testutil.MakeNoopLogger())

	for range 2 {
		require.NoError(t, s.MarkAsEaten(context.Background(), model.MarkAsEatenParams{UserID: 3, RestaurantID: "J1"}))
	}
}

func TestVisit_ListVisitedRestaurantIDs(t *testing.T) {
	ctx := context.Background()

	t.Run("insertion order", func(t *testing.T) {
		visitStore := servermocks.NewVisitStore(t)
		visitStore.On("GetRestaurantIDsByUserID", mock.Anything, int64(7)).Return([]string{"J2", "J1", "J2"}, nil)

		s := NewVisit(visitStore, servermocks.NewUserStore(t), testutil.MakeNoopLogger())

		got, err := s.ListVisitedRestaurantIDs(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, []string{"J2", "J1", "J2"}, got)
	})

	t.Run("no visits yields empty list", func(t *testing.T) {
		visitStore := servermocks.NewVisitStore(t)
		visitStore.On("GetRestaurantIDsByUserID", mock.Anything, int64(8)).Return(nil, nil)

		s := NewVisit(visitStore, servermocks.NewUserStore(t), testutil.MakeNoopLogger())

		got, err := s.ListVisitedRestaurantIDs(ctx, 8)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("store failure", func(t *testing.T) {
		visitStore := servermocks.NewVisitStore(t)
		visitStore.On("GetRestaurantIDsByUserID", mock.Anything, int64(9)).Return(nil, errors.New("db down"))

		s := NewVisit(visitStore, servermocks.NewUserStore(t), testutil.MakeNoopLogger())

		_, err := s.ListVisitedRestaurantIDs(ctx, 9)
		require.Error(t, err)
	})
}
