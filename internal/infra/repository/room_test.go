//go:build unit

package repository

import (
	"context"
	"testing"

	"meeting-rooms/internal/domain/room"
	"meeting-rooms/internal/infra"
	"meeting-rooms/internal/infra/query"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRoomReadStore_List(t *testing.T) {
	t.Run("maps rows in query order", func(t *testing.T) {
		mockQueries := new(MockQueries)
		mockQueries.On("ListRooms", mock.Anything, mock.Anything).Return([]query.Room{
			{ID: 1, Name: "Mitte Room", Capacity: 50, Location: "Berlin", PricePerHour: 100},
			{ID: 3, Name: "Westminster Suite", Capacity: 50, Location: "London", PricePerHour: 150},
		}, nil)

		rooms, err := NewRoomReadStore(mockQueries, nil).List(context.Background())

		require.NoError(t, err)
		assert.Equal(t, []room.Room{
			{ID: 1, Name: "Mitte Room", Capacity: 50, Location: "Berlin", PricePerHour: 100},
			{ID: 3, Name: "Westminster Suite", Capacity: 50, Location: "London", PricePerHour: 150},
		}, rooms)
	})

	t.Run("empty table is an empty slice", func(t *testing.T) {
		mockQueries := new(MockQueries)
		mockQueries.On("ListRooms", mock.Anything, mock.Anything).Return([]query.Room{}, nil)

		rooms, err := NewRoomReadStore(mockQueries, nil).List(context.Background())

		require.NoError(t, err)
		assert.NotNil(t, rooms)
		assert.Empty(t, rooms)
	})

	t.Run("database error", func(t *testing.T) {
		mockQueries := new(MockQueries)
		mockQueries.On("ListRooms", mock.Anything, mock.Anything).Return(nil, assert.AnError)

		_, err := NewRoomReadStore(mockQueries, nil).List(context.Background())

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestRoomReadStore_FindByID(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockQueries := new(MockQueries)
		mockQueries.On("FindRoomByID", mock.Anything, mock.Anything, int64(5)).
			Return(query.Room{ID: 5, Name: "Louvre Room", Capacity: 50, Location: "Paris", PricePerHour: 200}, nil)

		r, err := NewRoomReadStore(mockQueries, nil).FindByID(context.Background(), 5)

		require.NoError(t, err)
		assert.Equal(t, "Louvre Room", r.Name)
		assert.Equal(t, 200.0, r.PricePerHour)
	})

	t.Run("not found", func(t *testing.T) {
		mockQueries := new(MockQueries)
		mockQueries.On("FindRoomByID", mock.Anything, mock.Anything, int64(99)).Return(query.Room{}, pgx.ErrNoRows)

		_, err := NewRoomReadStore(mockQueries, nil).FindByID(context.Background(), 99)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
