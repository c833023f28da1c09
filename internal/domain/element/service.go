package element

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

type Servicer interface {
	AddLogin(ctx context.Context, ownerID uuid.UUID, req AddLoginRequest) (Element, error)
	AddCard(ctx context.Context, ownerID uuid.UUID, req AddCardRequest) (Element, error)
	AddPersonalInfo(ctx context.Context, ownerID uuid.UUID, req AddPersonalInfoRequest) (Element, error)
	AddNote(ctx context.Context, ownerID uuid.UUID, req AddNoteRequest) (Element, error)
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "element_service"),
	}
}

func (s *Service) AddLogin(ctx context.Context, ownerID uuid.UUID, req AddLoginRequest) (Element, error) {
	return s.add(ctx, ownerID, req.Envelope, LoginData{
		Login:    req.Login,
		Password: req.Password,
		URL:      req.URL,
	})
}

func (s *Service) AddCard(ctx context.Context, ownerID uuid.UUID, req AddCardRequest) (Element, error) {
	return s.add(ctx, ownerID, req.Envelope, CardData{
		OwnersName:   req.OwnersName,
		Number:       req.Number,
		Type:         req.Type,
		ExpiryMonth:  req.ExpiryMonth,
		ExpiryYear:   req.ExpiryYear,
		SecurityCode: req.SecurityCode,
	})
}

func (s *Service) AddPersonalInfo(ctx context.Context, ownerID uuid.UUID, req AddPersonalInfoRequest) (Element, error) {
	return s.add(ctx, ownerID, req.Envelope, PersonalData{
		FirstName:    req.FirstName,
		SecondName:   req.SecondName,
		LastName:     req.LastName,
		Company:      req.Company,
		Mail:         req.Mail,
		Telephone:    req.Telephone,
		AddressLine1: req.AddressLine1,
		AddressLine2: req.AddressLine2,
		City:         req.City,
		Region:       req.Region,
		PostalIndex:  req.PostalIndex,
		Country:      req.Country,
		Folder:       req.Folder,
	})
}

func (s *Service) AddNote(ctx context.Context, ownerID uuid.UUID, req AddNoteRequest) (Element, error) {
	return s.add(ctx, ownerID, req.Envelope, NoteData{})
}

func (s *Service) add(ctx context.Context, ownerID uuid.UUID, env Envelope, data Data) (Element, error) {
	el, err := s.repo.Create(ctx, Element{
		OwnerID:     ownerID,
		Name:        env.Name,
		Description: env.Description,
		Favorite:    env.Favorite,
		Data:        data,
	})
	if err != nil {
		return Element{}, fmt.Errorf("create %s element: %w", data.Kind(), err)
	}

	s.log.Debug("element created", "element_id", el.ID, "kind", data.Kind(), "owner_id", ownerID)
	return el, nil
}
