package user

import (
	"context"

	"github.com/google/uuid"
)

// Field names a user column allowed in single-field lookups.
type Field string

const (
	FieldLogin Field = "login"
	FieldMail  Field = "mail"
)

// Repository owns the user collection. Lookups return (nil, nil) when
// no record matches; the error return is reserved for store failures.
type Repository interface {
	FindBy(ctx context.Context, field Field, value string) (*User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)

	// Create persists u under a store-generated id and returns the
	// stored record. A unique-index violation on login or mail comes
	// back as ErrLoginTaken or ErrMailTaken.
	Create(ctx context.Context, u User) (User, error)

	// Replace overwrites the record with u.ID in full, PasswordHash
	// included; the caller is responsible for carrying the existing
	// hash across.
	Replace(ctx context.Context, u User) error

	// Delete removes the record with the given login. A missing
	// record is not an error.
	Delete(ctx context.Context, login string) error
}
