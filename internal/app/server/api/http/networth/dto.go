package networth

import "fintrack/internal/domain/networth"

type summaryOutput struct {
	Body networth.Summary
}

type snapshotOutput struct {
	Body networth.Snapshot
}

type historyInput struct {
	Limit int `query:"limit" minimum:"0" maximum:"1000" doc:"Maximum number of points, newest first; 0 for all"`
}

type historyOutput struct {
	Body historyResponse
}

type historyResponse struct {
	Snapshots []networth.Snapshot `json:"snapshots"`
}

type projectionRequest struct {
	MonthlyExpenses     string `json:"monthly_expenses" doc:"Expected monthly spending as a decimal string"`
	MonthlyContribution string `json:"monthly_contribution" doc:"Planned monthly savings as a decimal string"`
	AnnualReturnPct     string `json:"annual_return_pct" doc:"Expected annual return in percent, e.g. 7"`
}

type projectionInput struct {
	Body projectionRequest
}

type projectionOutput struct {
	Body networth.Projection
}
