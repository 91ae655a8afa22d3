package request

import (
	"errors"
	"strings"

	"efipay-shopify-bridge/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var (
	ErrMissingOrderID = errors.New("orderId is required")
	ErrInvalidAmount  = errors.New("amount must be a positive number")
)

const defaultCurrency = "COP"

type PaymentLinkCustomerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// PaymentLinkRequest is the storefront-facing payload for creating a hosted
// checkout link. Field names match what the checkout script already sends.
type PaymentLinkRequest struct {
	OrderID  string                     `json:"orderId"`
	Amount   float64                    `json:"amount"`
	Currency string                     `json:"currency"`
	Customer PaymentLinkCustomerRequest `json:"customer"`
}

// ToCommand validates the payload and converts it into the domain command.
func (r PaymentLinkRequest) ToCommand() (entities.PaymentLinkRequest, error) {
	orderID := strings.TrimSpace(r.OrderID)
	if orderID == "" {
		return entities.PaymentLinkRequest{}, ErrMissingOrderID
	}
	if r.Amount <= 0 {
		return entities.PaymentLinkRequest{}, ErrInvalidAmount
	}

	currency := strings.ToUpper(strings.TrimSpace(r.Currency))
	if currency == "" {
		currency = defaultCurrency
	}

	return entities.PaymentLinkRequest{
		OrderReference: orderID,
		Amount:         decimal.NewFromFloat(r.Amount),
		Currency:       currency,
		Customer: entities.PaymentLinkCustomer{
			Name:  strings.TrimSpace(r.Customer.Name),
			Email: strings.TrimSpace(r.Customer.Email),
			Phone: strings.TrimSpace(r.Customer.Phone),
		},
	}, nil
}
