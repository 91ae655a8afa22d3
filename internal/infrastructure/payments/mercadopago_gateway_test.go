package payments

import (
	"errors"
	"testing"

	"efipay-shopify-bridge/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestNewMercadoPagoGateway_Validations(t *testing.T) {
	t.Run("missing access token", func(t *testing.T) {
		if _, err := NewMercadoPagoGateway(""); !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
			t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
		}
	})

	t.Run("configured", func(t *testing.T) {
		g, err := NewMercadoPagoGateway("TEST-access-token")
		if err != nil {
			t.Fatalf("expected gateway, got error %v", err)
		}
		if g == nil || g.client == nil {
			t.Fatal("expected an initialized preference client")
		}
	})
}

func TestBuildPreferenceRequest(t *testing.T) {
	t.Run("maps the order onto a checkout preference", func(t *testing.T) {
		t.Setenv("EFIPAY_WEBHOOK_URL", " https://bridge.test/v1/webhooks/efipay ")

		got := buildPreferenceRequest(linkRequest())

		if got.ExternalReference != "1007" {
			t.Fatalf("expected external reference 1007, got %q", got.ExternalReference)
		}
		if got.NotificationURL != "https://bridge.test/v1/webhooks/efipay" {
			t.Fatalf("expected trimmed notification url, got %q", got.NotificationURL)
		}
		if len(got.Items) != 1 {
			t.Fatalf("expected exactly one item, got %d", len(got.Items))
		}
		item := got.Items[0]
		if item.Title != "Pedido 1007" {
			t.Fatalf("item title must carry the order reference, got %q", item.Title)
		}
		if item.Quantity != 1 || item.UnitPrice != 185000 || item.CurrencyID != "COP" {
			t.Fatalf("unexpected item %+v", item)
		}
		if got.Payer == nil || got.Payer.Name != "Cliente" || got.Payer.Email != "cliente@test.com" {
			t.Fatalf("expected customer payer, got %+v", got.Payer)
		}
	})

	t.Run("anonymous customer omits the payer", func(t *testing.T) {
		got := buildPreferenceRequest(entities.PaymentLinkRequest{
			OrderReference: "1008",
			Amount:         decimal.NewFromInt(42000),
			Currency:       "COP",
		})
		if got.Payer != nil {
			t.Fatalf("expected nil payer, got %+v", got.Payer)
		}
	})
}
