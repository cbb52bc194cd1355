package query

import "context"

const findUserByEmail = `-- name: FindUserByEmail :one
SELECT id, name, email, password_hash, created_at
FROM users
WHERE lower(email) = lower($1)
`

func (q *Queries) FindUserByEmail(ctx context.Context, db DBTX, email string) (User, error) {
	row := db.QueryRow(ctx, findUserByEmail, email)
	var i User
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Email,
		&i.PasswordHash,
		&i.CreatedAt,
	)
	return i, err
}

const upsertUser = `-- name: UpsertUser :one
INSERT INTO users (name, email, password_hash)
VALUES ($1, $2, $3)
ON CONFLICT (email) DO UPDATE
SET name = EXCLUDED.name, password_hash = EXCLUDED.password_hash
RETURNING id
`

type UpsertUserParams struct {
	Name         string
	Email        string
	PasswordHash string
}

func (q *Queries) UpsertUser(ctx context.Context, db DBTX, arg UpsertUserParams) (int64, error) {
	row := db.QueryRow(ctx, upsertUser, arg.Name, arg.Email, arg.PasswordHash)
	var id int64
	err := row.Scan(&id)
	return id, err
}

const deleteAllUsers = `-- name: DeleteAllUsers :execrows
DELETE FROM users
`

func (q *Queries) DeleteAllUsers(ctx context.Context, db DBTX) (int64, error) {
	result, err := db.Exec(ctx, deleteAllUsers)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
