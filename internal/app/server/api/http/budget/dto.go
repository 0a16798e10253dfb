package budget

import "fintrack/internal/domain/budget"

type setRequest struct {
	Month    string `json:"month,omitempty" pattern:"^\\d{4}-(0[1-9]|1[0-2])$" doc:"Budget month YYYY-MM, defaults to the current one"`
	Category string `json:"category" minLength:"1" maxLength:"64" doc:"Expense category"`
	Limit    string `json:"limit" doc:"Spending limit as a decimal string"`
}

type setInput struct {
	Body setRequest
}

type setOutput struct {
	Body setResponse
}

type setResponse struct {
	ID     int    `json:"id"`
	Status string `json:"status"`
}

type overviewInput struct {
	Month string `query:"month" doc:"Month YYYY-MM, defaults to the current one"`
}

type overviewOutput struct {
	Body overviewResponse
}

type overviewResponse struct {
	Budgets []budget.Status `json:"budgets"`
}

type deleteInput struct {
	Month    string `path:"month" doc:"Budget month YYYY-MM"`
	Category string `path:"category" doc:"Expense category"`
}

type statusOutput struct {
	Body statusResponse
}

type statusResponse struct {
	Status string `json:"status"`
}
