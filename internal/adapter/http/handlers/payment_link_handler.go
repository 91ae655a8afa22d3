package handlers

import (
	"errors"
	"log"
	"net/http"

	request "efipay-shopify-bridge/internal/adapter/http/dto/request"
	response "efipay-shopify-bridge/internal/adapter/http/dto/response"
	"efipay-shopify-bridge/internal/usecase"
	"efipay-shopify-bridge/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidLinkPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "orderId and amount are required", http.StatusBadRequest)

// PaymentLinkHandler creates EfiPay checkout links for storefront orders.

type PaymentLinkHandler struct {
	usecase usecase.IPaymentLinkUseCase
}

func NewPaymentLinkHandler(uc usecase.IPaymentLinkUseCase) *PaymentLinkHandler {
	return &PaymentLinkHandler{usecase: uc}
}

// CreatePaymentLink handles the storefront's link-creation request.
//
// @Summary      Create a payment link
// @Description  Creates a hosted checkout link for an order and returns its URL.
// @Tags         payment-links
// @Accept       json
// @Produce      json
// @Param        body body request.PaymentLinkRequest true "Order reference, amount, currency, customer"
// @Success      200 {object} response.PaymentLinkResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      502 {object} pkg.HTTPError
// @Router       /payment-links [post]
func (h *PaymentLinkHandler) CreatePaymentLink(c *gin.Context) {
	var payload request.PaymentLinkRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[link][handler] invalid payload err=%v", err)
		c.JSON(errInvalidLinkPayload.HTTPStatus, errInvalidLinkPayload.ToHTTPError())
		return
	}

	cmd, err := payload.ToCommand()
	if err != nil {
		log.Printf("[link][handler] payload rejected err=%v", err)
		c.JSON(errInvalidLinkPayload.HTTPStatus, errInvalidLinkPayload.ToHTTPError())
		return
	}
	log.Printf("[link][handler] create start reference=%q amount=%s currency=%s", cmd.OrderReference, cmd.Amount, cmd.Currency)

	link, err := h.usecase.CreateLink(c.Request.Context(), cmd)
	if err != nil {
		log.Printf("[link][handler] create failed reference=%q err=%v", cmd.OrderReference, err)
		appErr := mapPaymentLinkError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[link][handler] create success reference=%q payment_id=%s", cmd.OrderReference, link.PaymentID)

	c.JSON(http.StatusOK, response.FromPaymentLink(link))
}

func mapPaymentLinkError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderReference), errors.Is(err, usecase.ErrInvalidLinkAmount):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrLinkGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_NOT_CONFIGURED", "Payment provider configuration incomplete", http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("PAYMENT_PROVIDER_UNAVAILABLE", "Could not create the payment link", err, http.StatusBadGateway)
	}
}
