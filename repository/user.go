package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/campushub/eventcore/model"
)

// User ...
type User interface {
	FindUser(ctx context.Context, userID int64) (model.NullUser, error)
	InsertUser(ctx context.Context, user model.User) (int64, error)
}

type userImpl struct {
}

// NewUser ...
func NewUser() User {
	return &userImpl{}
}

// FindUser ...
func (u *userImpl) FindUser(ctx context.Context, userID int64) (model.NullUser, error) {
	query := `
SELECT id, name, email, phone, role, created_at, updated_at
FROM user WHERE id = ?
`
	var result model.User
	err := getQuerier(ctx).GetContext(ctx, &result, query, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return model.NullUser{}, nil
	}
	if err != nil {
		return model.NullUser{}, err
	}
	return model.NullUser{Valid: true, User: result}, nil
}

// InsertUser ...
func (u *userImpl) InsertUser(ctx context.Context, user model.User) (int64, error) {
	query := `
INSERT INTO user (name, email, phone, role)
VALUES (:name, :email, :phone, :role)
`
	result, err := GetTx(ctx).NamedExecContext(ctx, query, user)
	if err != nil {
		return 0, wrapInsertError(err)
	}
	return result.LastInsertId()
}
