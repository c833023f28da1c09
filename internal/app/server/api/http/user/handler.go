package user

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"passvault/internal/app/server/api/http/middleware/auth"
	"passvault/internal/domain/user"
)

type Handler struct {
	service   user.Servicer
	log       *slog.Logger
	public    huma.Middlewares
	protected huma.Middlewares
}

// NewHandler wires the user endpoints. Login and registration run
// with the public middleware chain; edit and delete require the auth
// chain.
func NewHandler(service user.Servicer, log *slog.Logger, public, protected huma.Middlewares) *Handler {
	return &Handler{
		service:   service,
		log:       log,
		public:    public,
		protected: protected,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.registrationOp(), h.registration)
	huma.Register(api, h.loginOp(), h.login)
	huma.Register(api, h.editOp(), h.edit)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) registration(ctx context.Context, input *registrationInput) (*registrationOutput, error) {
	result, err := h.service.Register(ctx, input.Body)
	if err != nil {
		h.log.Error("registration failed", "login", input.Body.Login, "error", err)
		return nil, huma.Error500InternalServerError("registration failed")
	}

	switch result.Outcome {
	case user.RegistrationOK:
		return &registrationOutput{
			Body: TokenResponse{
				AccessToken:  result.Tokens.AccessToken,
				RefreshToken: result.Tokens.RefreshToken,
				Status:       "Ok",
			},
		}, nil
	case user.RegistrationLoginTaken:
		return nil, huma.Error409Conflict("already registered by login")
	case user.RegistrationMailTaken:
		return nil, huma.Error409Conflict("already registered by email")
	case user.RegistrationWrongPassword:
		return nil, huma.Error400BadRequest("wrong password")
	default:
		return nil, huma.Error500InternalServerError("unknown error")
	}
}

func (h *Handler) login(ctx context.Context, input *loginInput) (*loginOutput, error) {
	result, err := h.service.Login(ctx, input.Body)
	if err != nil {
		h.log.Error("login failed", "login", input.Body.Login, "error", err)
		return nil, huma.Error500InternalServerError("login failed")
	}

	switch result.Outcome {
	case user.LoginOK:
		return &loginOutput{
			Body: TokenResponse{
				AccessToken:  result.Tokens.AccessToken,
				RefreshToken: result.Tokens.RefreshToken,
				Status:       "Ok",
			},
		}, nil
	case user.LoginWrongLogin:
		return nil, huma.Error401Unauthorized("wrong login")
	case user.LoginWrongPassword:
		return nil, huma.Error401Unauthorized("wrong password")
	default:
		return nil, huma.Error500InternalServerError("unknown error")
	}
}

func (h *Handler) edit(ctx context.Context, input *editInput) (*editOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	err := h.service.Edit(ctx, userID, input.Body)
	switch {
	case errors.Is(err, user.ErrNotFound):
		return nil, huma.Error404NotFound("user not found")
	case errors.Is(err, user.ErrLoginTaken):
		return nil, huma.Error409Conflict("already registered by login")
	case errors.Is(err, user.ErrMailTaken):
		return nil, huma.Error409Conflict("already registered by email")
	case err != nil:
		h.log.Error("edit failed", "user_id", userID, "error", err)
		return nil, huma.Error500InternalServerError("edit failed")
	}

	return &editOutput{Body: StatusResponse{Status: "Ok"}}, nil
}

func (h *Handler) delete(ctx context.Context, _ *struct{}) (*deleteOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	if err := h.service.Delete(ctx, userID); err != nil {
		h.log.Error("delete failed", "user_id", userID, "error", err)
		return nil, huma.Error500InternalServerError("delete failed")
	}

	return &deleteOutput{Body: StatusResponse{Status: "Ok"}}, nil
}
