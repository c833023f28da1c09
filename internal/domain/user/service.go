package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"

	"passvault/internal/domain/token"
)

// Issuer is the slice of the token issuer the service needs.
type Issuer interface {
	Issue(subject uuid.UUID) (token.Pair, error)
}

type Servicer interface {
	Login(ctx context.Context, req LoginRequest) (LoginResult, error)
	Register(ctx context.Context, req RegistrationRequest) (RegistrationResult, error)
	Edit(ctx context.Context, id uuid.UUID, req EditRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo   Repository
	issuer Issuer
	log    *slog.Logger
}

func NewService(repo Repository, issuer Issuer, log *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		issuer: issuer,
		log:    log.With("component", "user_service"),
	}
}

// Login verifies credentials and issues a token pair. Wrong login and
// wrong password stay distinct outcomes, matching the historical API
// contract.
func (s *Service) Login(ctx context.Context, req LoginRequest) (LoginResult, error) {
	u, err := s.repo.FindBy(ctx, FieldLogin, req.Login)
	if err != nil {
		return LoginResult{}, fmt.Errorf("find user by login: %w", err)
	}
	if u == nil {
		return LoginResult{Outcome: LoginWrongLogin}, nil
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return LoginResult{Outcome: LoginWrongPassword}, nil
	}

	pair, err := s.issuer.Issue(u.ID)
	if err != nil {
		s.log.Error("token issue failed", "user_id", u.ID, "error", err)
		return LoginResult{Outcome: LoginUnknown}, nil
	}

	return LoginResult{Outcome: LoginOK, Tokens: pair}, nil
}

// Register creates a user and issues a token pair. The classify step
// is advisory; the unique indexes on login and mail are the arbiter,
// so a duplicate-key error on insert maps to the same conflict
// outcomes a pre-check hit would have produced.
func (s *Service) Register(ctx context.Context, req RegistrationRequest) (RegistrationResult, error) {
	cls, err := s.classify(ctx, req.Login, req.Mail)
	if err != nil {
		return RegistrationResult{}, err
	}
	switch cls {
	case foundByMail:
		return RegistrationResult{Outcome: RegistrationMailTaken}, nil
	case foundByLogin:
		return RegistrationResult{Outcome: RegistrationLoginTaken}, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.log.Error("password hash failed", "login", req.Login, "error", err)
		return RegistrationResult{Outcome: RegistrationWrongPassword}, nil
	}

	u, err := s.repo.Create(ctx, User{
		Login:        req.Login,
		Mail:         req.Mail,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
	})
	switch {
	case errors.Is(err, ErrMailTaken):
		return RegistrationResult{Outcome: RegistrationMailTaken}, nil
	case errors.Is(err, ErrLoginTaken):
		return RegistrationResult{Outcome: RegistrationLoginTaken}, nil
	case err != nil:
		return RegistrationResult{}, fmt.Errorf("create user: %w", err)
	}

	pair, err := s.issuer.Issue(u.ID)
	if err != nil {
		s.log.Error("token issue failed", "user_id", u.ID, "error", err)
		return RegistrationResult{Outcome: RegistrationUnknown}, nil
	}

	return RegistrationResult{Outcome: RegistrationOK, Tokens: pair}, nil
}

// Edit replaces login, mail and name fields. The stored password hash
// is carried over untouched; there is no way to change it here.
func (s *Service) Edit(ctx context.Context, id uuid.UUID, req EditRequest) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find user by id: %w", err)
	}
	if existing == nil {
		return ErrNotFound
	}

	return s.repo.Replace(ctx, User{
		ID:           id,
		Login:        req.Login,
		Mail:         req.Mail,
		PasswordHash: existing.PasswordHash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
	})
}

// Delete removes the caller's account. The underlying store deletes
// by login; a record that is already gone is not an error.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find user by id: %w", err)
	}
	if u == nil {
		return nil
	}

	return s.repo.Delete(ctx, u.Login)
}

func (s *Service) classify(ctx context.Context, login, mail string) (classification, error) {
	u, err := s.repo.FindBy(ctx, FieldMail, mail)
	if err != nil {
		return notFound, fmt.Errorf("find user by mail: %w", err)
	}
	if u != nil {
		return foundByMail, nil
	}

	u, err = s.repo.FindBy(ctx, FieldLogin, login)
	if err != nil {
		return notFound, fmt.Errorf("find user by login: %w", err)
	}
	if u != nil {
		return foundByLogin, nil
	}

	return notFound, nil
}
