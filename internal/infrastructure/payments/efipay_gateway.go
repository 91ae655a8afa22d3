package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"efipay-shopify-bridge/internal/domain/entities"
	"efipay-shopify-bridge/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/spf13/cast"
)

var (
	ErrMissingEfiPayToken    = errors.New("missing EFIPAY_API_TOKEN")
	ErrMissingEfiPayOfficeID = errors.New("missing EFIPAY_OFFICE_ID")
	ErrEfiPayInvalidResponse = errors.New("invalid efipay response")
)

const defaultEfiPayBaseURL = "https://sag.efipay.co/api/v1"

// EfiPayGateway creates hosted checkout links via the EfiPay
// generate-payment endpoint. EfiPay publishes no Go SDK; this is a plain
// REST client.

type EfiPayGateway struct {
	httpClient *http.Client
	baseURL    string
	token      string
	officeID   int
	storeLabel string
	resultURLs efiPayResultURLs
	mockMode   bool
}

type efiPayResultURLs struct {
	Approved string `json:"approved,omitempty"`
	Rejected string `json:"rejected,omitempty"`
	Pending  string `json:"pending,omitempty"`
	Webhook  string `json:"webhook,omitempty"`
}

var _ interfaces.IPaymentLinkGateway = (*EfiPayGateway)(nil)

// NewEfiPayGatewayFromEnv reads EFIPAY_API_TOKEN, EFIPAY_OFFICE_ID,
// EFIPAY_BASE_URL, STORE_LABEL and the EFIPAY_RESULT_URL_* /
// EFIPAY_WEBHOOK_URL set.
func NewEfiPayGatewayFromEnv() (*EfiPayGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[link][efipay] mock mode enabled")
		return &EfiPayGateway{mockMode: true}, nil
	}

	token := strings.TrimSpace(os.Getenv("EFIPAY_API_TOKEN"))
	if token == "" {
		log.Printf("[link][efipay] missing EFIPAY_API_TOKEN")
		return nil, ErrMissingEfiPayToken
	}
	officeID := cast.ToInt(strings.TrimSpace(os.Getenv("EFIPAY_OFFICE_ID")))
	if officeID == 0 {
		log.Printf("[link][efipay] missing EFIPAY_OFFICE_ID")
		return nil, ErrMissingEfiPayOfficeID
	}

	baseURL := strings.TrimSpace(os.Getenv("EFIPAY_BASE_URL"))
	if baseURL == "" {
		baseURL = defaultEfiPayBaseURL
	}

	g := &EfiPayGateway{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		officeID:   officeID,
		storeLabel: getenvDefault("STORE_LABEL", "Paytton Tires"),
		resultURLs: efiPayResultURLs{
			Approved: os.Getenv("EFIPAY_RESULT_URL_APPROVED"),
			Rejected: os.Getenv("EFIPAY_RESULT_URL_REJECTED"),
			Pending:  os.Getenv("EFIPAY_RESULT_URL_PENDING"),
			Webhook:  os.Getenv("EFIPAY_WEBHOOK_URL"),
		},
	}
	log.Printf("[link][efipay] client initialized base_url=%s office=%d", g.baseURL, g.officeID)
	return g, nil
}

func (g *EfiPayGateway) CreatePaymentLink(ctx context.Context, req entities.PaymentLinkRequest) (entities.PaymentLink, error) {
	if g != nil && g.mockMode {
		id := uuid.NewString()
		log.Printf("[link][efipay] mock create success payment_id=%s", id)
		return entities.PaymentLink{
			URL:       "https://sag.efipay.co/checkout/" + id,
			PaymentID: id,
		}, nil
	}

	// The description is what the webhook's free-text fallback scans for,
	// so its "Pedido <reference>" shape is contractual, not cosmetic.
	payload := map[string]any{
		"payment": map[string]any{
			"description":   fmt.Sprintf("Pedido %s - %s", req.OrderReference, g.storeLabel),
			"amount":        req.Amount.InexactFloat64(),
			"currency_type": req.Currency,
			"checkout_type": "redirect",
		},
		"advanced_options": map[string]any{
			"references":   []string{req.OrderReference},
			"result_urls":  g.resultURLs,
			"has_comments": false,
		},
		"office": g.officeID,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return entities.PaymentLink{}, err
	}

	url := g.baseURL + "/payment/generate-payment"
	log.Printf("[link][efipay] create start url=%s reference=%q", url, req.OrderReference)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return entities.PaymentLink{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+g.token)

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		log.Printf("[link][efipay] request failed err=%v", err)
		return entities.PaymentLink{}, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return entities.PaymentLink{}, err
	}

	var parsed struct {
		URL       string          `json:"url"`
		PaymentID json.RawMessage `json:"payment_id"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		log.Printf("[link][efipay] response not parseable status=%d body_len=%d err=%v", resp.StatusCode, len(raw), err)
		return entities.PaymentLink{}, fmt.Errorf("%w: status=%d", ErrEfiPayInvalidResponse, resp.StatusCode)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || parsed.URL == "" {
		log.Printf("[link][efipay] create failed status=%d body=%s", resp.StatusCode, raw)
		return entities.PaymentLink{}, fmt.Errorf("%w: status=%d", ErrEfiPayInvalidResponse, resp.StatusCode)
	}

	// payment_id has arrived as both a number and a string across EfiPay
	// versions.
	paymentID := strings.Trim(string(parsed.PaymentID), `"`)

	log.Printf("[link][efipay] create success reference=%q payment_id=%s", req.OrderReference, paymentID)
	return entities.PaymentLink{URL: parsed.URL, PaymentID: paymentID}, nil
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "EFIPAY_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
