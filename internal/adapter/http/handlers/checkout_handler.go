package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"ignite_shop/internal/adapter/http/dto/request"
	"ignite_shop/internal/adapter/http/dto/response"
	"ignite_shop/internal/adapter/http/middleware"
	"ignite_shop/internal/adapter/http/views"
	"ignite_shop/internal/usecase"
	"ignite_shop/pkg"

	"github.com/gin-gonic/gin"
)

// CheckoutHandler handles purchase intents and the provider's return trip.

type CheckoutHandler struct {
	usecase usecase.ICheckoutUseCase
	views   views.IRenderer
}

func NewCheckoutHandler(uc usecase.ICheckoutUseCase, v views.IRenderer) *CheckoutHandler {
	return &CheckoutHandler{usecase: uc, views: v}
}

// CreateCheckoutSession godoc
// @Summary      Create checkout session
// @Description  Creates a provider-hosted checkout for one unit of the price and returns the URL to navigate to.
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        request body request.CheckoutRequest true "Price to buy"
// @Success      201 {object} response.CheckoutResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      404 {object} pkg.HTTPError
// @Failure      502 {object} pkg.HTTPError
// @Router       /api/checkout [post]
func (h *CheckoutHandler) CreateCheckoutSession(c *gin.Context) {
	var req request.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[checkout][handler] invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	clientKey := middleware.ClientKeyFrom(c)
	log.Printf("[checkout][handler] create start price_id=%s", req.PriceID)

	session, err := h.usecase.CreateCheckoutSession(c.Request.Context(), clientKey, req.PriceID)
	if err != nil {
		log.Printf("[checkout][handler] create failed price_id=%s err=%v", req.PriceID, err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[checkout][handler] create success price_id=%s session_id=%s", req.PriceID, session.ID)

	c.JSON(http.StatusCreated, response.FromCheckoutSession(session))
}

// GetCheckoutSession godoc
// @Summary      Get checkout session record
// @Description  Returns the audit record of a created checkout session (requires CHECKOUT_AUDIT=dynamodb).
// @Tags         checkout
// @Produce      json
// @Param        id path string true "Checkout session ID"
// @Success      200 {object} response.CheckoutSessionResponse
// @Failure      404 {object} pkg.HTTPError
// @Router       /api/checkout/sessions/{id} [get]
func (h *CheckoutHandler) GetCheckoutSession(c *gin.Context) {
	id := c.Param("id")

	session, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		log.Printf("[checkout][handler] get session failed session_id=%s err=%v", id, err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCheckoutSessionRecord(session))
}

// Success godoc
// @Summary      Purchase confirmation page
// @Description  Landing page after the provider checkout. Accepts Stripe's session_id or Mercado Pago's preference_id. Unpaid checkouts get a pending-payment page.
// @Tags         pages
// @Produce      html
// @Param        session_id    query string false "Stripe checkout session ID"
// @Param        preference_id query string false "Mercado Pago preference ID"
// @Success      200 {string} string "HTML page"
// @Failure      400 {string} string "HTML error page"
// @Failure      404 {string} string "HTML error page"
// @Router       /success [get]
func (h *CheckoutHandler) Success(c *gin.Context) {
	sessionID := strings.TrimSpace(c.Query("session_id"))
	if sessionID == "" {
		sessionID = strings.TrimSpace(c.Query("preference_id"))
	}

	summary, err := h.usecase.GetCheckoutSummary(c.Request.Context(), sessionID)
	if err != nil {
		log.Printf("[checkout][handler] success page failed session_id=%s err=%v", sessionID, err)
		renderErrorPage(c, h.views, mapSuccessPageError(err))
		return
	}

	render := h.views.Success
	if !summary.Paid {
		log.Printf("[checkout][handler] payment not confirmed session_id=%s", sessionID)
		render = h.views.Pending
	}
	body, err := render(summary)
	if err != nil {
		renderErrorPage(c, h.views, pkg.NewDomainError("INTERNAL_ERROR", "Erro inesperado", err, http.StatusInternalServerError))
		return
	}
	c.Data(http.StatusOK, htmlContentType, body)
}

func mapCheckoutError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPriceID), errors.Is(err, usecase.ErrInvalidCheckoutSessionID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPriceNotFound):
		return pkg.NewDomainErrorSimple("PRICE_NOT_FOUND", "Price not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCheckoutSessionNotFound), errors.Is(err, usecase.ErrCheckoutAuditNotConfigured):
		return pkg.NewDomainErrorSimple("CHECKOUT_SESSION_NOT_FOUND", "Checkout session not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCheckoutProviderNotSet):
		return pkg.NewDomainErrorSimple("CHECKOUT_PROVIDER_NOT_CONFIGURED", "Checkout provider not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrCheckoutProviderUnavailable):
		return pkg.NewDomainError("CHECKOUT_PROVIDER_ERROR", "Checkout provider error", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func mapSuccessPageError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCheckoutSessionID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Compra não identificada", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCheckoutSessionNotFound):
		return pkg.NewDomainErrorSimple("CHECKOUT_SESSION_NOT_FOUND", "Compra não encontrada", http.StatusNotFound)
	default:
		return pkg.NewDomainError("CHECKOUT_PROVIDER_ERROR", "Não foi possível confirmar a compra", err, http.StatusBadGateway)
	}
}
