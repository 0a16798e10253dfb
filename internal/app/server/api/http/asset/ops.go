package asset

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "assets-list",
		Method:      http.MethodGet,
		Path:        "/api/assets",
		Summary:     "List assets",
		Tags:        []string{"assets"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID: "assets-create",
		Method:      http.MethodPost,
		Path:        "/api/assets",
		Summary:     "Create an asset",
		Tags:        []string{"assets"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "assets-update",
		Method:      http.MethodPut,
		Path:        "/api/assets/{id}",
		Summary:     "Update an asset",
		Tags:        []string{"assets"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "assets-delete",
		Method:      http.MethodDelete,
		Path:        "/api/assets/{id}",
		Summary:     "Delete an asset",
		Tags:        []string{"assets"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}
