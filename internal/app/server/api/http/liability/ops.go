package liability

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "liabilities-list",
		Method:      http.MethodGet,
		Path:        "/api/liabilities",
		Summary:     "List liabilities",
		Tags:        []string{"liabilities"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID: "liabilities-create",
		Method:      http.MethodPost,
		Path:        "/api/liabilities",
		Summary:     "Create a liability",
		Tags:        []string{"liabilities"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "liabilities-update",
		Method:      http.MethodPut,
		Path:        "/api/liabilities/{id}",
		Summary:     "Update a liability",
		Tags:        []string{"liabilities"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "liabilities-delete",
		Method:      http.MethodDelete,
		Path:        "/api/liabilities/{id}",
		Summary:     "Delete a liability",
		Tags:        []string{"liabilities"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}
