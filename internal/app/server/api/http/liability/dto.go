package liability

import "fintrack/internal/domain/liability"

type upsertRequest struct {
	Name     string `json:"name" minLength:"1" maxLength:"128" doc:"Liability name"`
	Category string `json:"category" minLength:"1" maxLength:"64" doc:"Liability category, e.g. mortgage, loan"`
	Balance  string `json:"balance" doc:"Outstanding balance as a decimal string"`
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
	ID   int `path:"id" doc:"Liability ID"`
	Body upsertRequest
}

type statusOutput struct {
	Body statusResponse
}

type statusResponse struct {
	Status string `json:"status"`
}

type deleteInput struct {
	ID int `path:"id" doc:"Liability ID"`
}

type listOutput struct {
	Body listResponse
}

type listResponse struct {
	Liabilities []liability.Liability `json:"liabilities"`
}
