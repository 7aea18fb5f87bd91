package entities

import "time"

// InvoiceStatus is the dashboard-facing invoice lifecycle.

type InvoiceStatus string

const (
	InvoiceStatusPaid    InvoiceStatus = "Paid"
	InvoiceStatusPending InvoiceStatus = "Pending"
	InvoiceStatusDraft   InvoiceStatus = "Draft"
)

// Invoice is the record produced by a submitted estimate draft and listed on
// the administrative dashboard.
//
// Storage model (DynamoDB):
//   - PK: id (string, "INV-<n>")
//
// Amount keeps the draft's grand total as a 2-fraction-digit decimal string,
// the same representation the wizard uses for currency values.
type Invoice struct {
	ID           string        `json:"id"`
	CustomerName string        `json:"customerName"`
	Date         time.Time     `json:"date"`
	Amount       string        `json:"amount"`
	Status       InvoiceStatus `json:"status"`
}
