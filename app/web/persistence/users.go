package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
)

// User represents an account holder
type User struct {
	ID           int64     `db:"id"`
	FirstName    string    `db:"first_name"`
	LastName     string    `db:"last_name"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

// FullName returns first and last name joined by a space
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

var userColumns = []string{"id", "first_name", "last_name", "email", "password_hash", "created_at", "updated_at"}

// CreateUser stores a new user and returns it with assigned id and timestamps.
// Returns ErrEmailExists if the email is taken.
func (s *Store) CreateUser(ctx context.Context, user User) (User, error) {
	now := time.Now().UTC()
	user.CreatedAt, user.UpdatedAt = now, now

	query, args, err := s.builder.Insert("users").
		Columns("first_name", "last_name", "email", "password_hash", "created_at", "updated_at").
		Values(user.FirstName, user.LastName, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return User{}, fmt.Errorf("failed to build create user query: %w", err)
	}

	if err := s.db.QueryRowxContext(ctx, query, args...).Scan(&user.ID); err != nil {
		if isUniqueViolation(err) {
			return User{}, ErrEmailExists
		}
		return User{}, fmt.Errorf("failed to create user %s: %w", user.Email, err)
	}
	return user, nil
}

// UserByID returns user by id or ErrNotFound
func (s *Store) UserByID(ctx context.Context, id int64) (User, error) {
	return s.getUser(ctx, sq.Eq{"id": id})
}

// UserByEmail returns user by exact email match or ErrNotFound
func (s *Store) UserByEmail(ctx context.Context, email string) (User, error) {
	return s.getUser(ctx, sq.Eq{"email": email})
}

// EmailExists checks if any user already has the email
func (s *Store) EmailExists(ctx context.Context, email string) (bool, error) {
	query, args, err := s.builder.Select("COUNT(*)").From("users").Where(sq.Eq{"email": email}).ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build email check query: %w", err)
	}
	var count int
	if err := s.db.GetContext(ctx, &count, query, args...); err != nil {
		return false, fmt.Errorf("failed to check email %s: %w", email, err)
	}
	return count > 0, nil
}

// DeleteUser removes the user, jobs posted by the user and all work records cascade
func (s *Store) DeleteUser(ctx context.Context, id int64) error {
	query, args, err := s.builder.Delete("users").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete user query: %w", err)
	}
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete user %d: %w", id, err)
	}
	return checkAffected(res)
}

func (s *Store) getUser(ctx context.Context, where sq.Sqlizer) (User, error) {
	query, args, err := s.builder.Select(userColumns...).From("users").Where(where).Limit(1).ToSql()
	if err != nil {
		return User{}, fmt.Errorf("failed to build user query: %w", err)
	}

	var user User
	if err := s.db.GetContext(ctx, &user, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// checkAffected turns zero affected rows into ErrNotFound
func checkAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
