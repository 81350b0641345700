// Package domain holds the shared vocabulary of the CRM workbook.
package domain

// Column names expected in the CRM workbook sheets. Every column is
// optional; consumers check presence before use and degrade per feature.
const (
	ColSalesRep = "SalesRep"
	ColAmount   = "Amount"
	ColStage    = "Stage"
	ColClosed   = "Closed"
)
