package handlers

import (
	"log"
	"net/http"

	response "efipay-shopify-bridge/internal/adapter/http/dto/response"
	"efipay-shopify-bridge/internal/normalizer"
	"efipay-shopify-bridge/internal/usecase"
	"efipay-shopify-bridge/pkg"

	"github.com/gin-gonic/gin"
)

// WebhookHandler receives EfiPay payment notifications and drives them
// through normalize → resolve → reconcile.
//
// Response contract toward the gateway: 200 for every terminal outcome
// (including an unresolvable reference, which must not be retried forever);
// non-2xx only for transient downstream failures, which are retry-worthy.

type WebhookHandler struct {
	norm    *normalizer.Normalizer
	usecase usecase.IWebhookReconcileUseCase
}

func NewWebhookHandler(norm *normalizer.Normalizer, uc usecase.IWebhookReconcileUseCase) *WebhookHandler {
	return &WebhookHandler{norm: norm, usecase: uc}
}

// HandleEfiPayEvent processes one webhook delivery.
//
// @Summary      EfiPay payment webhook
// @Description  Reconciles an asynchronous EfiPay payment notification into Shopify order state.
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Success      200 {object} response.WebhookAckResponse
// @Failure      502 {object} pkg.HTTPError
// @Router       /webhooks/efipay [post]
func (h *WebhookHandler) HandleEfiPayEvent(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		// Treat an unreadable body like an empty one: the gateway retries
		// unreadable deliveries on its own schedule, a 4xx helps nobody.
		log.Printf("[webhook][handler] body read failed err=%v", err)
		raw = nil
	}
	log.Printf("[webhook][handler] delivery received body_len=%d", len(raw))

	ev := h.norm.Normalize(raw)
	if ev.Malformed {
		log.Printf("[webhook][handler] malformed payload recovered as empty event")
	}

	res, err := h.usecase.Reconcile(c.Request.Context(), ev)
	if err != nil {
		log.Printf("[webhook][handler] reconcile failed outcome=%s err=%v", res.Outcome, err)
		appErr := pkg.NewDomainError("DOWNSTREAM_UNAVAILABLE", "Order system unavailable", err, http.StatusBadGateway)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[webhook][handler] delivery acknowledged outcome=%s order_id=%d", res.Outcome, res.OrderID)
	c.JSON(http.StatusOK, response.FromReconciliation(res))
}
