package repository

import (
	"context"

	"meeting-rooms/internal/domain/room"
	"meeting-rooms/internal/infra"
	"meeting-rooms/internal/infra/query"
)

type RoomQueries interface {
	ListRooms(ctx context.Context, db query.DBTX) ([]query.Room, error)
	FindRoomByID(ctx context.Context, db query.DBTX, id int64) (query.Room, error)
}

type RoomReadStore struct {
	queries RoomQueries
	db      query.DBTX
}

func NewRoomReadStore(queries RoomQueries, db query.DBTX) *RoomReadStore {
	return &RoomReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *RoomReadStore) List(ctx context.Context) ([]room.Room, error) {
	rows, err := r.queries.ListRooms(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}

	rooms := make([]room.Room, len(rows))
	for i, row := range rows {
		rooms[i] = toRoom(row)
	}
	return rooms, nil
}

func (r *RoomReadStore) FindByID(ctx context.Context, id int64) (*room.Room, error) {
	row, err := r.queries.FindRoomByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find room by ID", err)
	}

	rm := toRoom(row)
	return &rm, nil
}

func toRoom(row query.Room) room.Room {
	return room.Room{
		ID:           row.ID,
		Name:         row.Name,
		Capacity:     row.Capacity,
		Location:     row.Location,
		PricePerHour: row.PricePerHour,
	}
}
