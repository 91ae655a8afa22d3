package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"efipay-shopify-bridge/internal/adapter/http/handlers/mocks"
	"efipay-shopify-bridge/internal/domain/entities"
	"efipay-shopify-bridge/internal/normalizer"
	"efipay-shopify-bridge/internal/usecase"
	mock_interfaces "efipay-shopify-bridge/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type failingReadCloser struct{}

func (failingReadCloser) Read(_ []byte) (int, error) { return 0, errors.New("read error") }
func (failingReadCloser) Close() error               { return nil }

func webhookRouter(h *WebhookHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/webhooks/efipay", h.HandleEfiPayEvent)
	return r
}

func postWebhook(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/efipay", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeAck(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var ack map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &ack); err != nil {
		t.Fatalf("response body not json: %v (%s)", err, w.Body.String())
	}
	return ack
}

// End-to-end through the real normalizer and reconciler, with only the order
// system mocked.
func TestWebhookHandler_ApprovedPaymentCreditsPendingOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	orders := mock_interfaces.NewMockIOrderSystem(ctrl)

	total, _ := decimal.NewFromString("185000")
	order := entities.Order{ID: 450789469, Name: "#1007", OrderNumber: 1007, Currency: "COP", FinancialStatus: entities.OrderFinancialStatusPending, TotalPrice: &total}
	orders.EXPECT().FindOrdersByName(gomock.Any(), "#1007").Return([]entities.Order{order}, nil)
	orders.EXPECT().CreateSaleTransaction(gomock.Any(), uint64(450789469), gomock.Any(), "COP").Return(nil).Times(1)

	uc := usecase.NewWebhookReconcileUseCase(orders, nil, usecase.ReconcilerConfig{Strategy: usecase.LookupByName, Ambiguity: usecase.AmbiguityFirst, Mutation: usecase.MutateTransaction})
	h := NewWebhookHandler(normalizer.New(nil), uc)

	w := postWebhook(t, webhookRouter(h), `{"payment":{"status":"Aprobado","description":"Pedido 1007 - Paytton Tires","total":185000}}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	ack := decodeAck(t, w)
	if ack["ok"] != true || ack["approved"] != true {
		t.Fatalf("unexpected ack: %v", ack)
	}
	if _, present := ack["alreadyPaid"]; present {
		t.Fatalf("first delivery should not report alreadyPaid: %v", ack)
	}
}

func TestWebhookHandler_RedeliveryDoesNotDoubleCredit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	orders := mock_interfaces.NewMockIOrderSystem(ctrl)

	total, _ := decimal.NewFromString("185000")
	pending := entities.Order{ID: 450789469, Name: "#1007", Currency: "COP", FinancialStatus: entities.OrderFinancialStatusPending, TotalPrice: &total}
	paid := pending
	paid.FinancialStatus = entities.OrderFinancialStatusPaid

	gomock.InOrder(
		orders.EXPECT().FindOrdersByName(gomock.Any(), "#1007").Return([]entities.Order{pending}, nil),
		orders.EXPECT().FindOrdersByName(gomock.Any(), "#1007").Return([]entities.Order{paid}, nil),
	)
	orders.EXPECT().CreateSaleTransaction(gomock.Any(), uint64(450789469), gomock.Any(), "COP").Return(nil).Times(1)

	uc := usecase.NewWebhookReconcileUseCase(orders, nil, usecase.ReconcilerConfig{Strategy: usecase.LookupByName, Ambiguity: usecase.AmbiguityFirst, Mutation: usecase.MutateTransaction})
	h := NewWebhookHandler(normalizer.New(nil), uc)
	r := webhookRouter(h)

	body := `{"payment":{"status":"Aprobado","description":"Pedido 1007 - Paytton Tires","total":185000}}`
	if w := postWebhook(t, r, body); w.Code != http.StatusOK {
		t.Fatalf("first delivery: expected 200, got %d", w.Code)
	}
	w := postWebhook(t, r, body)
	if w.Code != http.StatusOK {
		t.Fatalf("second delivery: expected 200, got %d", w.Code)
	}
	if ack := decodeAck(t, w); ack["alreadyPaid"] != true {
		t.Fatalf("second delivery should report alreadyPaid: %v", ack)
	}
}

func TestWebhookHandler_RejectedPaymentTouchesNothing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	orders := mock_interfaces.NewMockIOrderSystem(ctrl)
	// No EXPECT calls: a rejected payment must not reach the order system.

	uc := usecase.NewWebhookReconcileUseCase(orders, nil, usecase.ReconcilerConfig{Strategy: usecase.LookupByName, Ambiguity: usecase.AmbiguityFirst, Mutation: usecase.MutateTransaction})
	h := NewWebhookHandler(normalizer.New(nil), uc)

	w := postWebhook(t, webhookRouter(h), `{"payment":{"status":"rejected","description":"Pedido 1007 - Paytton Tires"}}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ack := decodeAck(t, w); ack["approved"] != false {
		t.Fatalf("expected approved=false, got %v", ack)
	}
}

func TestWebhookHandler_ApprovedWithoutReferenceIsAcked(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	orders := mock_interfaces.NewMockIOrderSystem(ctrl)
	// No EXPECT calls: with no reference there is nothing to look up.

	uc := usecase.NewWebhookReconcileUseCase(orders, nil, usecase.ReconcilerConfig{Strategy: usecase.LookupByName, Ambiguity: usecase.AmbiguityFirst, Mutation: usecase.MutateTransaction})
	h := NewWebhookHandler(normalizer.New(nil), uc)

	w := postWebhook(t, webhookRouter(h), `{"status":"approved","total":42000}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 so the gateway stops retrying, got %d", w.Code)
	}
}

func TestWebhookHandler_MalformedBodyIsAcked(t *testing.T) {
	gin.SetMode(gin.TestMode)
	uc := usecase.NewWebhookReconcileUseCase(nil, nil, usecase.ReconcilerConfig{Strategy: usecase.LookupByName})
	h := NewWebhookHandler(normalizer.New(nil), uc)

	w := postWebhook(t, webhookRouter(h), `{not json at all`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ack := decodeAck(t, w); ack["approved"] != false {
		t.Fatalf("expected approved=false for a malformed body, got %v", ack)
	}
}

func TestWebhookHandler_DownstreamFailureReturns502(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIWebhookReconcileUseCase(ctrl)

	uc.EXPECT().Reconcile(gomock.Any(), gomock.Any()).Return(
		entities.ReconciliationResult{Outcome: entities.OutcomeFailedDownstream},
		errors.New("shopify: 503 service unavailable"),
	)

	h := NewWebhookHandler(normalizer.New(nil), uc)
	w := postWebhook(t, webhookRouter(h), `{"status":"approved","reference":"1007"}`)
	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502 so the gateway retries, got %d", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("error body not json: %v", err)
	}
	if body["code"] != "DOWNSTREAM_UNAVAILABLE" {
		t.Fatalf("unexpected error body: %v", body)
	}
}

func TestWebhookHandler_UnreadableBodyBehavesLikeEmpty(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIWebhookReconcileUseCase(ctrl)

	uc.EXPECT().Reconcile(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, ev entities.PaymentEvent) (entities.ReconciliationResult, error) {
		if !ev.Malformed || ev.Status != entities.StatusUnknown {
			t.Fatalf("expected empty malformed event, got %+v", ev)
		}
		return entities.ReconciliationResult{Outcome: entities.OutcomeSkippedNotApproved}, nil
	})

	h := NewWebhookHandler(normalizer.New(nil), uc)
	r := webhookRouter(h)

	req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/efipay", failingReadCloser{})
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
