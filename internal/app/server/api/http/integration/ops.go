package integration

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) connectOp() huma.Operation {
	return huma.Operation{
		OperationID: "integrations-connect",
		Method:      http.MethodPost,
		Path:        "/api/integrations/{name}",
		Summary:     "Connect an integration",
		Description: "Stores an encrypted credential for the named integration. Connecting twice is a conflict; use rotate to replace a key.",
		Tags:        []string{"integrations"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) rotateOp() huma.Operation {
	return huma.Operation{
		OperationID: "integrations-rotate",
		Method:      http.MethodPut,
		Path:        "/api/integrations/{name}",
		Summary:     "Rotate an integration credential",
		Tags:        []string{"integrations"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) disconnectOp() huma.Operation {
	return huma.Operation{
		OperationID: "integrations-disconnect",
		Method:      http.MethodDelete,
		Path:        "/api/integrations/{name}",
		Summary:     "Disconnect an integration",
		Tags:        []string{"integrations"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "integrations-list",
		Method:      http.MethodGet,
		Path:        "/api/integrations",
		Summary:     "List connected integrations",
		Tags:        []string{"integrations"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) portfolioOp() huma.Operation {
	return huma.Operation{
		OperationID: "integrations-portfolio",
		Method:      http.MethodGet,
		Path:        "/api/integrations/{name}/portfolio",
		Summary:     "Fetch the live portfolio of an integration",
		Description: "Decrypts the stored credential, calls the upstream API and returns normalized positions. The decrypted key exists only for the duration of the call.",
		Tags:        []string{"integrations"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}
