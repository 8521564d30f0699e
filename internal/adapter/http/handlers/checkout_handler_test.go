package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"ignite_shop/internal/adapter/http/handlers/mocks"
	"ignite_shop/internal/adapter/http/middleware"
	"ignite_shop/internal/domain/entities"
	"ignite_shop/internal/usecase"
	"ignite_shop/pkg"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

func newCheckoutRouter(t *testing.T, uc usecase.ICheckoutUseCase) *gin.Engine {
	t.Helper()
	h := NewCheckoutHandler(uc, newTestRenderer(t))
	r := gin.New()
	r.Use(middleware.ClientKey())
	r.GET("/success", h.Success)
	r.POST("/api/checkout", h.CreateCheckoutSession)
	r.GET("/api/checkout/sessions/:id", h.GetCheckoutSession)
	return r
}

func postCheckout(r *gin.Engine, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/checkout", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeHTTPError(t *testing.T, w *httptest.ResponseRecorder) pkg.HTTPError {
	t.Helper()
	var body pkg.HTTPError
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error body %q: %v", w.Body.String(), err)
	}
	return body
}

func TestCheckoutHandler_CreateCheckoutSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newCheckoutRouter(t, mocks.NewMockICheckoutUseCase(ctrl))

		for _, body := range []string{"{", `{}`, `{"priceId":""}`} {
			w := postCheckout(r, body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("body %q: expected 400, got %d", body, w.Code)
			}
		}
	})

	t.Run("success passes client key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newCheckoutRouter(t, uc)
		key := uuid.NewString()

		uc.EXPECT().CreateCheckoutSession(gomock.Any(), key, "price_1").Return(entities.CheckoutSession{ID: "cs_1", CheckoutURL: "https://pay.example/cs_1"}, nil)

		w := postCheckout(r, `{"priceId":"price_1"}`, &http.Cookie{Name: middleware.ClientKeyCookie, Value: key})
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["checkoutUrl"] != "https://pay.example/cs_1" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("usecase errors are mapped", func(t *testing.T) {
		cases := []struct {
			name   string
			err    error
			status int
			code   string
		}{
			{"price not found", usecase.ErrPriceNotFound, http.StatusNotFound, "PRICE_NOT_FOUND"},
			{"provider failure", errors.Join(usecase.ErrCheckoutProviderUnavailable, errors.New("timeout")), http.StatusBadGateway, "CHECKOUT_PROVIDER_ERROR"},
			{"provider not configured", usecase.ErrCheckoutProviderNotSet, http.StatusServiceUnavailable, "CHECKOUT_PROVIDER_NOT_CONFIGURED"},
			{"unexpected", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()
				uc := mocks.NewMockICheckoutUseCase(ctrl)
				r := newCheckoutRouter(t, uc)

				uc.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any(), "price_1").Return(entities.CheckoutSession{}, tc.err)

				w := postCheckout(r, `{"priceId":"price_1"}`)
				if w.Code != tc.status {
					t.Fatalf("expected %d, got %d", tc.status, w.Code)
				}
				if body := decodeHTTPError(t, w); body.Code != tc.code {
					t.Fatalf("expected code %s, got %+v", tc.code, body)
				}
			})
		}
	})
}

func TestCheckoutHandler_GetCheckoutSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newCheckoutRouter(t, uc)

		uc.EXPECT().GetByID(gomock.Any(), "cs_1").Return(entities.CheckoutSession{ID: "cs_1", Provider: entities.CheckoutProviderStripe, PriceID: "price_1", CreatedAt: time.Now().UTC()}, nil)

		w := get(r, "/api/checkout/sessions/cs_1")
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"price_id":"price_1"`) {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("audit disabled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newCheckoutRouter(t, uc)

		uc.EXPECT().GetByID(gomock.Any(), "cs_1").Return(entities.CheckoutSession{}, usecase.ErrCheckoutAuditNotConfigured)

		if w := get(r, "/api/checkout/sessions/cs_1"); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestCheckoutHandler_Success(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("stripe session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newCheckoutRouter(t, uc)

		uc.EXPECT().GetCheckoutSummary(gomock.Any(), "cs_1").Return(entities.CheckoutSummary{SessionID: "cs_1", CustomerName: "Diego", ProductName: "Camiseta", Paid: true}, nil)

		w := get(r, "/success?session_id=cs_1")
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "Diego") || !strings.Contains(w.Body.String(), "Compra efetuada!") {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("unpaid session is not confirmed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newCheckoutRouter(t, uc)

		uc.EXPECT().GetCheckoutSummary(gomock.Any(), "cs_open").Return(entities.CheckoutSummary{SessionID: "cs_open", ProductName: "Camiseta"}, nil)

		w := get(r, "/success?session_id=cs_open")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := w.Body.String()
		if strings.Contains(body, "Compra efetuada") || strings.Contains(body, "a caminho") {
			t.Fatalf("unpaid checkout must not be confirmed:\n%s", body)
		}
		if !strings.Contains(body, "Pagamento pendente") {
			t.Fatalf("expected pending page, got %s", body)
		}
	})

	t.Run("mercado pago preference", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newCheckoutRouter(t, uc)

		uc.EXPECT().GetCheckoutSummary(gomock.Any(), "pref_1").Return(entities.CheckoutSummary{SessionID: "pref_1", Paid: true}, nil)

		if w := get(r, "/success?preference_id=pref_1&status=approved"); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("missing id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newCheckoutRouter(t, uc)

		uc.EXPECT().GetCheckoutSummary(gomock.Any(), "").Return(entities.CheckoutSummary{}, usecase.ErrInvalidCheckoutSessionID)

		if w := get(r, "/success"); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newCheckoutRouter(t, uc)

		uc.EXPECT().GetCheckoutSummary(gomock.Any(), "cs_x").Return(entities.CheckoutSummary{}, usecase.ErrCheckoutSessionNotFound)

		w := get(r, "/success?session_id=cs_x")
		if w.Code != http.StatusNotFound || !strings.Contains(w.Body.String(), "Compra não encontrada") {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})
}
