package query

import "context"

const listRooms = `-- name: ListRooms :many
SELECT id, name, capacity, location, price_per_hour
FROM rooms
ORDER BY location, price_per_hour, id
`

func (q *Queries) ListRooms(ctx context.Context, db DBTX) ([]Room, error) {
	rows, err := db.Query(ctx, listRooms)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Room{}
	for rows.Next() {
		var i Room
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.Capacity,
			&i.Location,
			&i.PricePerHour,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const findRoomByID = `-- name: FindRoomByID :one
SELECT id, name, capacity, location, price_per_hour
FROM rooms
WHERE id = $1
`

func (q *Queries) FindRoomByID(ctx context.Context, db DBTX, id int64) (Room, error) {
	row := db.QueryRow(ctx, findRoomByID, id)
	var i Room
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Capacity,
		&i.Location,
		&i.PricePerHour,
	)
	return i, err
}

const countRooms = `-- name: CountRooms :one
SELECT count(*) FROM rooms
`

func (q *Queries) CountRooms(ctx context.Context, db DBTX) (int64, error) {
	row := db.QueryRow(ctx, countRooms)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const insertRoom = `-- name: InsertRoom :one
INSERT INTO rooms (name, capacity, location, price_per_hour)
VALUES ($1, $2, $3, $4)
RETURNING id
`

type InsertRoomParams struct {
	Name         string
	Capacity     int32
	Location     string
	PricePerHour float64
}

func (q *Queries) InsertRoom(ctx context.Context, db DBTX, arg InsertRoomParams) (int64, error) {
	row := db.QueryRow(ctx, insertRoom,
		arg.Name,
		arg.Capacity,
		arg.Location,
		arg.PricePerHour,
	)
	var id int64
	err := row.Scan(&id)
	return id, err
}
