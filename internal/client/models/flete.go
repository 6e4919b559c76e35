package models

import (
	"fmt"

	"github.com/oapi-codegen/nullable"
)

// Flete is one registered trucking trip as returned by the list endpoints.
// IndividualCost is computed by the server and never sent back.
type Flete struct {
	ID                 int     `json:"id"`
	Supplier           string  `json:"supplier"`
	Destination        string  `json:"destination"`
	HighwayExpenseCost float64 `json:"highwayExpenseCost"`
	CostOfStay         float64 `json:"costOfStay"`
	IndividualCost     float64 `json:"individualCost"`
	Date               string  `json:"date"`
	RegistrationDate   string  `json:"registrationDate"`
	IDSupplier         int     `json:"idSupplier"`
	IDDestination      int     `json:"idDestination"`
}

// FleteRequest is the body of the create and update endpoints. Unset
// optional fields are omitted from the JSON entirely.
type FleteRequest struct {
	IDSupplier         int                       `json:"idSupplier"`
	IDDestination      int                       `json:"idDestination"`
	HighwayExpenseCost float64                   `json:"highwayExpenseCost"`
	CostOfStay         float64                   `json:"costOfStay"`
	RegistrationDate   nullable.Nullable[string] `json:"registrationDate,omitempty"`
	TripNumber         nullable.Nullable[int]    `json:"tripNumber,omitempty"`
}

// MutationResponse is returned by create, update and delete.
type MutationResponse struct {
	Success *bool  `json:"success,omitempty"`
	Message string `json:"message,omitempty"`
	ID      any    `json:"IdFletes,omitempty"`
}

// Succeeded reports whether the server explicitly declared success.
func (r *MutationResponse) Succeeded() bool {
	return r != nil && r.Success != nil && *r.Success
}

// MonthSummary names a month that has fletes and therefore a report.
type MonthSummary struct {
	Year        int    `json:"year"`
	Month       int    `json:"month"`
	Description string `json:"description"`
}

// Key identifies the month in UI state, e.g. "2025-10".
func (m MonthSummary) Key() string {
	return MonthKey(m.Year, m.Month)
}

func MonthKey(year, month int) string {
	return fmt.Sprintf("%d-%d", year, month)
}

// ReportRequest asks for the monthly report.
type ReportRequest struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// RangeReportRequest asks for a report covering [StartDate, EndDate],
// both formatted YYYY-MM-DD.
type RangeReportRequest struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}
