package usecase

import (
	"context"

	"meeting-rooms/internal/domain/room"
	"meeting-rooms/internal/infra"
	"meeting-rooms/internal/pkg/errs"
)

//go:generate mockgen -source=room.go -destination=../../tests/mock/usecase/room.go -package=usecasemock

type RoomUseCase interface {
	ListRooms(ctx context.Context) ([]room.Room, error)
	GetRoom(ctx context.Context, id int64) (*room.Room, error)
}

type roomUseCaseImpl struct {
	store RoomReadStore
}

func NewRoomUseCase(store RoomReadStore) RoomUseCase {
	return &roomUseCaseImpl{store: store}
}

func (u *roomUseCaseImpl) ListRooms(ctx context.Context) ([]room.Room, error) {
	rooms, err := u.store.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rooms, nil
}

func (u *roomUseCaseImpl) GetRoom(ctx context.Context, id int64) (*room.Room, error) {
	if err := room.ValidateID(id); err != nil {
		return nil, ErrRoomNotFound
	}

	r, err := u.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return r, nil
}
