package budget

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) setOp() huma.Operation {
	return huma.Operation{
		OperationID: "budgets-set",
		Method:      http.MethodPost,
		Path:        "/api/budgets",
		Summary:     "Set a budget limit",
		Description: "Creates or replaces the limit for (month, category) in one idempotent call.",
		Tags:        []string{"budgets"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) overviewOp() huma.Operation {
	return huma.Operation{
		OperationID: "budgets-overview",
		Method:      http.MethodGet,
		Path:        "/api/budgets",
		Summary:     "Budget overview with spending",
		Tags:        []string{"budgets"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "budgets-delete",
		Method:      http.MethodDelete,
		Path:        "/api/budgets/{month}/{category}",
		Summary:     "Delete a budget",
		Tags:        []string{"budgets"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}
