package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

type CreateUserParams struct {
	Email        string
	PasswordHash string
	Name         string
}

const sqlCreateUser = `
INSERT INTO users (id, email, password_hash, name, created_at)
VALUES (?, ?, ?, ?, ?)
RETURNING id, email, password_hash, name, created_at`

// CreateUser inserts an operator account. Emails are stored lower-cased.
func (s *Store) CreateUser(ctx context.Context, params CreateUserParams) (User, error) {
	var user User
	err := s.db.GetContext(ctx, &user, s.rebind(sqlCreateUser),
		newID(), strings.ToLower(params.Email), params.PasswordHash, params.Name, now())
	if err != nil {
		err = translateError(err)
		if errors.Is(err, ErrAlreadyExists) {
			return User{}, err
		}
		s.logger.Error(ctx, "failed to create user", err)
		return User{}, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

const sqlGetUserByEmail = `
SELECT id, email, password_hash, name, created_at
FROM users
WHERE email = ?`

func (s *Store) GetUserByEmail(ctx context.Context, email string) (User, error) {
	var user User
	err := s.db.GetContext(ctx, &user, s.rebind(sqlGetUserByEmail), strings.ToLower(email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}
