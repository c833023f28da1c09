package element

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"passvault/internal/app/server/api/http/middleware/auth"
	"passvault/internal/domain/element"
)

type Handler struct {
	service    element.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service element.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.addLoginOp(), h.addLogin)
	huma.Register(api, h.addCardOp(), h.addCard)
	huma.Register(api, h.addPersonalInfoOp(), h.addPersonalInfo)
	huma.Register(api, h.addNoteOp(), h.addNote)
}

func (h *Handler) addLogin(ctx context.Context, input *addLoginInput) (*addOutput, error) {
	ownerID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	el, err := h.service.AddLogin(ctx, ownerID, input.Body)
	return h.respond(el, err)
}

func (h *Handler) addCard(ctx context.Context, input *addCardInput) (*addOutput, error) {
	ownerID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	el, err := h.service.AddCard(ctx, ownerID, input.Body)
	return h.respond(el, err)
}

func (h *Handler) addPersonalInfo(ctx context.Context, input *addPersonalInfoInput) (*addOutput, error) {
	ownerID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	el, err := h.service.AddPersonalInfo(ctx, ownerID, input.Body)
	return h.respond(el, err)
}

func (h *Handler) addNote(ctx context.Context, input *addNoteInput) (*addOutput, error) {
	ownerID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	el, err := h.service.AddNote(ctx, ownerID, input.Body)
	return h.respond(el, err)
}

func (h *Handler) respond(el element.Element, err error) (*addOutput, error) {
	if err != nil {
		h.log.Error("add element failed", "error", err)
		return nil, huma.Error500InternalServerError("add element failed")
	}

	return &addOutput{
		Body: AddResponse{
			ID:     el.ID.String(),
			Status: "Ok",
		},
	}, nil
}
