package transaction

import (
	"time"

	"fintrack/internal/domain/transaction"
)

type createRequest struct {
	Type     string    `json:"type" enum:"income,expense" doc:"Transaction type"`
	Category string    `json:"category" minLength:"1" maxLength:"64" doc:"Category, e.g. groceries, salary"`
	Amount   string    `json:"amount" doc:"Amount as a decimal string, always positive"`
	Note     string    `json:"note,omitempty" maxLength:"256" doc:"Free-form note"`
	Date     time.Time `json:"date,omitempty" doc:"Transaction date, defaults to now"`
}

type createInput struct {
	Body createRequest
}

type createOutput struct {
	Body createResponse
}

type createResponse struct {
	ID     int    `json:"id"`
	Status string `json:"status"`
}

type listInput struct {
	Year  int    `query:"year" doc:"Filter by year, requires month"`
	Month int    `query:"month" minimum:"0" maximum:"12" doc:"Filter by month 1-12"`
	Type  string `query:"type" enum:"income,expense," doc:"Filter by type"`
}

type listOutput struct {
	Body listResponse
}

type listResponse struct {
	Transactions []transaction.Transaction `json:"transactions"`
}

type deleteInput struct {
	ID int `path:"id" doc:"Transaction ID"`
}

type statusOutput struct {
	Body statusResponse
}

type statusResponse struct {
	Status string `json:"status"`
}

type summaryInput struct {
	Year  int `query:"year" doc:"Year, defaults to the current one"`
	Month int `query:"month" minimum:"0" maximum:"12" doc:"Month 1-12, defaults to the current one"`
}

type summaryOutput struct {
	Body transaction.Summary
}
