package payments

import (
	"context"
	"errors"
	"log"
	"os"
	"strings"

	"efipay-shopify-bridge/internal/domain/entities"
	"efipay-shopify-bridge/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")

// MercadoPagoGateway is the alternate payment-link provider: it creates a
// checkout preference and returns its init point as the payment URL.

type MercadoPagoGateway struct {
	client preference.Client
}

var _ interfaces.IPaymentLinkGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if accessToken == "" {
		log.Printf("[link][mercadopago] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[link][mercadopago] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[link][mercadopago] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: preference.NewClient(cfg)}, nil
}

func (g *MercadoPagoGateway) CreatePaymentLink(ctx context.Context, req entities.PaymentLinkRequest) (entities.PaymentLink, error) {
	log.Printf("[link][mercadopago] create start reference=%q amount=%s currency=%s", req.OrderReference, req.Amount, req.Currency)

	resp, err := g.client.Create(ctx, buildPreferenceRequest(req))
	if err != nil {
		log.Printf("[link][mercadopago] sdk create failed err=%v", err)
		return entities.PaymentLink{}, err
	}

	log.Printf("[link][mercadopago] create success reference=%q preference_id=%s", req.OrderReference, resp.ID)
	return entities.PaymentLink{URL: resp.InitPoint, PaymentID: resp.ID}, nil
}

// buildPreferenceRequest maps the domain command onto a checkout preference.
// The order reference travels as the external reference and inside the item
// title, mirroring what the EfiPay description carries.
func buildPreferenceRequest(req entities.PaymentLinkRequest) preference.Request {
	prefReq := preference.Request{
		ExternalReference: req.OrderReference,
		NotificationURL:   strings.TrimSpace(os.Getenv("EFIPAY_WEBHOOK_URL")),
		Items: []preference.ItemRequest{
			{
				Title:      "Pedido " + req.OrderReference,
				Quantity:   1,
				UnitPrice:  req.Amount.InexactFloat64(),
				CurrencyID: req.Currency,
			},
		},
	}
	if payer := toPreferencePayer(req.Customer); payer != nil {
		prefReq.Payer = payer
	}
	return prefReq
}

func toPreferencePayer(c entities.PaymentLinkCustomer) *preference.PayerRequest {
	if c.Name == "" && c.Email == "" {
		return nil
	}
	return &preference.PayerRequest{
		Name:  c.Name,
		Email: c.Email,
	}
}
