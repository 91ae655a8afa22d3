package usecase

import (
	"context"
	"errors"
	"testing"

	"efipay-shopify-bridge/internal/domain/entities"
	mock_interfaces "efipay-shopify-bridge/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestPaymentLinkUseCase_Validations(t *testing.T) {
	t.Run("empty order reference", func(t *testing.T) {
		uc := NewPaymentLinkUseCase(nil)
		_, err := uc.CreateLink(context.Background(), entities.PaymentLinkRequest{OrderReference: "  ", Amount: decimal.NewFromInt(100)})
		if !errors.Is(err, ErrInvalidOrderReference) {
			t.Fatalf("expected ErrInvalidOrderReference, got %v", err)
		}
	})

	t.Run("non-positive amount", func(t *testing.T) {
		uc := NewPaymentLinkUseCase(nil)
		_, err := uc.CreateLink(context.Background(), entities.PaymentLinkRequest{OrderReference: "1007", Amount: decimal.Zero})
		if !errors.Is(err, ErrInvalidLinkAmount) {
			t.Fatalf("expected ErrInvalidLinkAmount, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewPaymentLinkUseCase(nil)
		_, err := uc.CreateLink(context.Background(), entities.PaymentLinkRequest{OrderReference: "1007", Amount: decimal.NewFromInt(100)})
		if !errors.Is(err, ErrLinkGatewayNotConfigured) {
			t.Fatalf("expected ErrLinkGatewayNotConfigured, got %v", err)
		}
	})
}

func TestPaymentLinkUseCase_CreateLink(t *testing.T) {
	t.Run("trims the reference and defaults the currency", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentLinkGateway(ctrl)

		want := entities.PaymentLink{URL: "https://sag.efipay.co/checkout/abc", PaymentID: "abc"}
		gateway.EXPECT().CreatePaymentLink(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req entities.PaymentLinkRequest) (entities.PaymentLink, error) {
			if req.OrderReference != "1007" {
				t.Fatalf("expected trimmed reference, got %q", req.OrderReference)
			}
			if req.Currency != "COP" {
				t.Fatalf("expected default currency COP, got %q", req.Currency)
			}
			return want, nil
		})

		uc := NewPaymentLinkUseCase(gateway)
		link, err := uc.CreateLink(context.Background(), entities.PaymentLinkRequest{OrderReference: " 1007 ", Amount: decimal.NewFromInt(185000)})
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if link != want {
			t.Fatalf("expected %+v, got %+v", want, link)
		}
	})

	t.Run("explicit currency is kept", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentLinkGateway(ctrl)

		gateway.EXPECT().CreatePaymentLink(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req entities.PaymentLinkRequest) (entities.PaymentLink, error) {
			if req.Currency != "USD" {
				t.Fatalf("expected USD, got %q", req.Currency)
			}
			return entities.PaymentLink{URL: "https://example.test/l", PaymentID: "1"}, nil
		})

		uc := NewPaymentLinkUseCase(gateway)
		if _, err := uc.CreateLink(context.Background(), entities.PaymentLinkRequest{OrderReference: "1007", Amount: decimal.NewFromInt(10), Currency: "USD"}); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
	})

	t.Run("gateway error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentLinkGateway(ctrl)

		gwErr := errors.New("efipay: 500 internal error")
		gateway.EXPECT().CreatePaymentLink(gomock.Any(), gomock.Any()).Return(entities.PaymentLink{}, gwErr)

		uc := NewPaymentLinkUseCase(gateway)
		_, err := uc.CreateLink(context.Background(), entities.PaymentLinkRequest{OrderReference: "1007", Amount: decimal.NewFromInt(10)})
		if !errors.Is(err, gwErr) {
			t.Fatalf("expected gateway error to propagate, got %v", err)
		}
	})
}
