package asset

import "fintrack/internal/domain/asset"

// Amounts travel as strings so no client-side float rounding leaks
// into stored values.
type upsertRequest struct {
	Name     string `json:"name" minLength:"1" maxLength:"128" doc:"Asset name"`
	Category string `json:"category" minLength:"1" maxLength:"64" doc:"Asset category, e.g. cash, property"`
	Value    string `json:"value" doc:"Current value as a decimal string"`
}

type createInput struct {
	Body upsertRequest
}

type createOutput struct {
	Body createResponse
}

type createResponse struct {
	ID     int    `json:"id"`
	Status string `json:"status"`
}

type updateInput struct {
	ID   int `path:"id" doc:"Asset ID"`
	Body upsertRequest
}

type statusOutput struct {
	Body statusResponse
}

type statusResponse struct {
	Status string `json:"status"`
}

type deleteInput struct {
	ID int `path:"id" doc:"Asset ID"`
}

type listOutput struct {
	Body listResponse
}

type listResponse struct {
	Assets []asset.Asset `json:"assets"`
}
