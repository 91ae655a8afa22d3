package entities

import "github.com/shopspring/decimal"

// OrderFinancialStatus mirrors the Shopify financial_status values this
// service cares about. The order system owns the full vocabulary; anything
// not listed here still round-trips as an opaque string.

type OrderFinancialStatus string

const (
	OrderFinancialStatusPending       OrderFinancialStatus = "pending"
	OrderFinancialStatusAuthorized    OrderFinancialStatus = "authorized"
	OrderFinancialStatusPaid          OrderFinancialStatus = "paid"
	OrderFinancialStatusPartiallyPaid OrderFinancialStatus = "partially_paid"
	OrderFinancialStatusRefunded      OrderFinancialStatus = "refunded"
	OrderFinancialStatusVoided        OrderFinancialStatus = "voided"
)

// Order is a read model of a Shopify order. The order system is the sole
// source of truth; this service only reads it and conditionally appends a
// sale transaction or flips financial_status to paid.
type Order struct {
	ID          uint64               `json:"id"`
	Name        string               `json:"name"`         // display name, e.g. "#1007"
	OrderNumber int                  `json:"order_number"` // numeric order number, e.g. 1007
	Currency    string               `json:"currency"`

	FinancialStatus OrderFinancialStatus `json:"financial_status"`

	// TotalPrice is the order total as recorded by the order system; it is
	// the amount fallback when the gateway reports none.
	TotalPrice *decimal.Decimal `json:"total_price,omitempty"`
}

func (o Order) IsPaid() bool {
	return o.FinancialStatus == OrderFinancialStatusPaid
}
