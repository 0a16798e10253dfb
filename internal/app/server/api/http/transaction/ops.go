package transaction

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "transactions-list",
		Method:      http.MethodGet,
		Path:        "/api/transactions",
		Summary:     "List transactions",
		Description: "Optionally filtered to one calendar month and/or type.",
		Tags:        []string{"transactions"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID: "transactions-create",
		Method:      http.MethodPost,
		Path:        "/api/transactions",
		Summary:     "Record a transaction",
		Tags:        []string{"transactions"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "transactions-delete",
		Method:      http.MethodDelete,
		Path:        "/api/transactions/{id}",
		Summary:     "Delete a transaction",
		Tags:        []string{"transactions"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) summaryOp() huma.Operation {
	return huma.Operation{
		OperationID: "transactions-summary",
		Method:      http.MethodGet,
		Path:        "/api/transactions/summary",
		Summary:     "Monthly income and expense summary",
		Tags:        []string{"transactions"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}
