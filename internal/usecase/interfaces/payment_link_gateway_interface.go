package interfaces

import (
	"context"

	"efipay-shopify-bridge/internal/domain/entities"
)

// IPaymentLinkGateway abstracts the payment provider that hosts checkout
// links (EfiPay by default, Mercado Pago as the alternate provider).
type IPaymentLinkGateway interface {
	CreatePaymentLink(ctx context.Context, req entities.PaymentLinkRequest) (entities.PaymentLink, error)
}
