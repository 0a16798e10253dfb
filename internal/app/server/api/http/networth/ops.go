package networth

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) summaryOp() huma.Operation {
	return huma.Operation{
		OperationID: "networth-summary",
		Method:      http.MethodGet,
		Path:        "/api/networth",
		Summary:     "Current net worth",
		Tags:        []string{"networth"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) snapshotOp() huma.Operation {
	return huma.Operation{
		OperationID: "networth-snapshot",
		Method:      http.MethodPost,
		Path:        "/api/networth/snapshots",
		Summary:     "Record a net worth snapshot",
		Description: "Persists today's balance sheet as one trend point; repeating replaces the day's earlier point.",
		Tags:        []string{"networth"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) historyOp() huma.Operation {
	return huma.Operation{
		OperationID: "networth-history",
		Method:      http.MethodGet,
		Path:        "/api/networth/snapshots",
		Summary:     "Net worth trend",
		Tags:        []string{"networth"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) projectionOp() huma.Operation {
	return huma.Operation{
		OperationID: "networth-projection",
		Method:      http.MethodPost,
		Path:        "/api/networth/projection",
		Summary:     "FIRE projection",
		Description: "Months until the 25x annual expenses target under monthly compounding.",
		Tags:        []string{"networth"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}
