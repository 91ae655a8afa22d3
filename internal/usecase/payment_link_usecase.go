package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"efipay-shopify-bridge/internal/domain/entities"
	"efipay-shopify-bridge/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidOrderReference        = errors.New("invalid order reference")
	ErrInvalidLinkAmount            = errors.New("invalid payment link amount")
	ErrLinkGatewayNotConfigured     = errors.New("payment link gateway not configured")
)

const defaultLinkCurrency = "COP"

// IPaymentLinkUseCase creates hosted checkout links for orders. The provider
// URL is handed back to the caller unmodified.

type IPaymentLinkUseCase interface {
	CreateLink(ctx context.Context, req entities.PaymentLinkRequest) (entities.PaymentLink, error)
}

type PaymentLinkUseCase struct {
	gateway interfaces.IPaymentLinkGateway
}

var _ IPaymentLinkUseCase = (*PaymentLinkUseCase)(nil)

func NewPaymentLinkUseCase(gateway interfaces.IPaymentLinkGateway) *PaymentLinkUseCase {
	return &PaymentLinkUseCase{gateway: gateway}
}

func (u *PaymentLinkUseCase) CreateLink(ctx context.Context, req entities.PaymentLinkRequest) (entities.PaymentLink, error) {
	// Correlation id for tracing one link request across log lines; it never
	// reaches the provider.
	traceID := uuid.NewString()
	log.Printf("[link][usecase] create start trace_id=%s reference=%q amount=%s currency=%s", traceID, req.OrderReference, req.Amount, req.Currency)

	req.OrderReference = strings.TrimSpace(req.OrderReference)
	if req.OrderReference == "" {
		log.Printf("[link][usecase] invalid reference (empty) trace_id=%s", traceID)
		return entities.PaymentLink{}, ErrInvalidOrderReference
	}
	if !req.Amount.IsPositive() {
		log.Printf("[link][usecase] invalid amount trace_id=%s amount=%s", traceID, req.Amount)
		return entities.PaymentLink{}, ErrInvalidLinkAmount
	}
	if strings.TrimSpace(req.Currency) == "" {
		req.Currency = defaultLinkCurrency
	}
	if u.gateway == nil {
		log.Printf("[link][usecase] gateway not configured trace_id=%s", traceID)
		return entities.PaymentLink{}, ErrLinkGatewayNotConfigured
	}

	link, err := u.gateway.CreatePaymentLink(ctx, req)
	if err != nil {
		log.Printf("[link][usecase] gateway failed trace_id=%s reference=%q err=%v", traceID, req.OrderReference, err)
		return entities.PaymentLink{}, err
	}

	log.Printf("[link][usecase] create success trace_id=%s reference=%q payment_id=%s", traceID, req.OrderReference, link.PaymentID)
	return link, nil
}
