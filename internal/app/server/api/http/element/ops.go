package element

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) addLoginOp() huma.Operation {
	return huma.Operation{
		OperationID: "element-add-login",
		Method:      http.MethodPost,
		Path:        "/element/login",
		Summary:     "Store a login credential element",
		Tags:        []string{"elements"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) addCardOp() huma.Operation {
	return huma.Operation{
		OperationID: "element-add-card",
		Method:      http.MethodPost,
		Path:        "/element/card",
		Summary:     "Store a payment card element",
		Tags:        []string{"elements"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) addPersonalInfoOp() huma.Operation {
	return huma.Operation{
		OperationID: "element-add-personal-info",
		Method:      http.MethodPost,
		Path:        "/element/personal",
		Summary:     "Store a personal information element",
		Tags:        []string{"elements"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) addNoteOp() huma.Operation {
	return huma.Operation{
		OperationID: "element-add-note",
		Method:      http.MethodPost,
		Path:        "/element/note",
		Summary:     "Store a note element",
		Tags:        []string{"elements"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}
