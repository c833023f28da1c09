package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"passvault/internal/domain/user"
)

const uniqueViolation = "23505"

type UserRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewUserRepository(pool *pgxpool.Pool, log *slog.Logger) *UserRepository {
	return &UserRepository{
		pool: pool,
		log:  log.With("component", "user_repository"),
	}
}

func (r *UserRepository) FindBy(ctx context.Context, field user.Field, value string) (*user.User, error) {
	// The field name is interpolated into the query text, so only the
	// known lookup columns are accepted.
	switch field {
	case user.FieldLogin, user.FieldMail:
	default:
		return nil, fmt.Errorf("unsupported lookup field %q", field)
	}

	query := fmt.Sprintf(
		`SELECT id, login, mail, password_hash, first_name, last_name FROM users WHERE %s = $1`,
		field)

	return r.findOne(ctx, query, value)
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	const query = `SELECT id, login, mail, password_hash, first_name, last_name FROM users WHERE id = $1`

	return r.findOne(ctx, query, id)
}

func (r *UserRepository) Create(ctx context.Context, u user.User) (user.User, error) {
	const query = `
		INSERT INTO users (login, mail, password_hash, first_name, last_name)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	err := r.pool.QueryRow(ctx, query,
		u.Login, u.Mail, u.PasswordHash, u.FirstName, u.LastName,
	).Scan(&u.ID)

	if err != nil {
		if mapped := mapUniqueViolation(err); mapped != nil {
			return user.User{}, mapped
		}
		r.log.Error("failed to create user", "login", u.Login, "error", err)
		return user.User{}, fmt.Errorf("create user: %w", err)
	}

	return u, nil
}

func (r *UserRepository) Replace(ctx context.Context, u user.User) error {
	const query = `
		UPDATE users
		SET login = $2, mail = $3, password_hash = $4, first_name = $5, last_name = $6
		WHERE id = $1`

	result, err := r.pool.Exec(ctx, query,
		u.ID, u.Login, u.Mail, u.PasswordHash, u.FirstName, u.LastName)
	if err != nil {
		if mapped := mapUniqueViolation(err); mapped != nil {
			return mapped
		}
		r.log.Error("failed to replace user", "user_id", u.ID, "error", err)
		return fmt.Errorf("replace user: %w", err)
	}

	if result.RowsAffected() == 0 {
		return user.ErrNotFound
	}

	return nil
}

func (r *UserRepository) Delete(ctx context.Context, login string) error {
	const query = `DELETE FROM users WHERE login = $1`

	// Deleting a missing login is a no-op, not an error.
	if _, err := r.pool.Exec(ctx, query, login); err != nil {
		r.log.Error("failed to delete user", "login", login, "error", err)
		return fmt.Errorf("delete user: %w", err)
	}

	return nil
}

func (r *UserRepository) findOne(ctx context.Context, query string, arg any) (*user.User, error) {
	var u user.User
	err := r.pool.QueryRow(ctx, query, arg).
		Scan(&u.ID, &u.Login, &u.Mail, &u.PasswordHash, &u.FirstName, &u.LastName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	return &u, nil
}

// mapUniqueViolation translates a 23505 on one of the users unique
// indexes into the matching domain conflict. The indexes are the
// source of truth for uniqueness; the service-level pre-check only
// exists for friendlier ordering of the two conflicts.
func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolation {
		return nil
	}

	switch pgErr.ConstraintName {
	case "users_login_key":
		return user.ErrLoginTaken
	case "users_mail_key":
		return user.ErrMailTaken
	}

	return nil
}
