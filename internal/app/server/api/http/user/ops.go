package user

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) registrationOp() huma.Operation {
	return huma.Operation{
		OperationID: "user-registration",
		Method:      http.MethodPost,
		Path:        "/user/registration",
		Summary:     "Register a new user",
		Tags:        []string{"users"},
		Middlewares: h.public,
	}
}

func (h *Handler) loginOp() huma.Operation {
	return huma.Operation{
		OperationID: "user-login",
		Method:      http.MethodPost,
		Path:        "/user/login",
		Summary:     "Log in and receive a token pair",
		Tags:        []string{"users"},
		Middlewares: h.public,
	}
}

func (h *Handler) editOp() huma.Operation {
	return huma.Operation{
		OperationID: "user-edit",
		Method:      http.MethodPatch,
		Path:        "/user/edit",
		Summary:     "Edit the authenticated user's profile",
		Tags:        []string{"users"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.protected,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "user-delete",
		Method:      http.MethodDelete,
		Path:        "/user/delete",
		Summary:     "Delete the authenticated user's account",
		Tags:        []string{"users"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.protected,
	}
}
