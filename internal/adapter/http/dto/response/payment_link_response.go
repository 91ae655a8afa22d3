package response

import "efipay-shopify-bridge/internal/domain/entities"

// PaymentLinkResponse hands the provider's checkout URL back to the caller
// unmodified.
type PaymentLinkResponse struct {
	PaymentURL string `json:"paymentUrl"`
	PaymentID  string `json:"paymentId"`
}

func FromPaymentLink(l entities.PaymentLink) PaymentLinkResponse {
	return PaymentLinkResponse{
		PaymentURL: l.URL,
		PaymentID:  l.PaymentID,
	}
}
