package entities

import "github.com/shopspring/decimal"

// PaymentLinkCustomer carries optional buyer details forwarded to the
// payment provider when it supports them.
type PaymentLinkCustomer struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// PaymentLinkRequest is the command to create a hosted checkout link for an
// order. OrderReference is echoed back by the gateway webhook and is the only
// correlation key between a payment and an order.
type PaymentLinkRequest struct {
	OrderReference string              `json:"order_reference"`
	Amount         decimal.Decimal     `json:"amount"`
	Currency       string              `json:"currency"`
	Customer       PaymentLinkCustomer `json:"customer"`
}

// PaymentLink is the provider's answer. URL is handed back to the caller
// unmodified.
type PaymentLink struct {
	URL       string `json:"payment_url"`
	PaymentID string `json:"payment_id"`
}
