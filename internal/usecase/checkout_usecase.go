package usecase

import (
	"context"
	"errors"
	"ignite_shop/internal/domain/entities"
	"ignite_shop/internal/usecase/interfaces"
	"log"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"
)

var (
	ErrInvalidPriceID              = errors.New("invalid price id")
	ErrPriceNotFound               = errors.New("price not found")
	ErrInvalidCheckoutSessionID    = errors.New("invalid checkout session id")
	ErrCheckoutSessionNotFound     = errors.New("checkout session not found")
	ErrCheckoutProviderNotSet      = errors.New("checkout provider not configured")
	ErrCheckoutAuditNotConfigured  = errors.New("checkout session audit not configured")
	ErrCheckoutProviderUnavailable = errors.New("checkout provider unavailable")
)

// ICheckoutUseCase starts provider-hosted checkouts.
//
// Behavior:
//   - exactly one provider call per (client key, price) while a call is in
//     flight; duplicates wait and receive the same session
//   - no retries: a failed attempt is reported and the customer tries again
//   - sessions are recorded in the audit repository when one is configured

//go:generate mockgen -source=checkout_usecase.go -destination=../adapter/http/handlers/mocks/checkout_usecase_mock.go -package=mocks
type ICheckoutUseCase interface {
	CreateCheckoutSession(ctx context.Context, clientKey, priceID string) (entities.CheckoutSession, error)
	GetCheckoutSummary(ctx context.Context, sessionID string) (entities.CheckoutSummary, error)
	GetByID(ctx context.Context, id string) (entities.CheckoutSession, error)
}

type CheckoutUseCase struct {
	provider interfaces.ICheckoutProvider
	repo     interfaces.ICheckoutSessionRepository
	inflight singleflight.Group
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

// NewCheckoutUseCase builds the checkout use case. repo may be nil when the
// audit trail is disabled.
func NewCheckoutUseCase(provider interfaces.ICheckoutProvider, repo interfaces.ICheckoutSessionRepository) *CheckoutUseCase {
	return &CheckoutUseCase{provider: provider, repo: repo}
}

func (u *CheckoutUseCase) CreateCheckoutSession(ctx context.Context, clientKey, priceID string) (entities.CheckoutSession, error) {
	priceID = strings.TrimSpace(priceID)
	clientKey = strings.TrimSpace(clientKey)
	log.Printf("[checkout][usecase] create start price_id=%q client_key=%q", priceID, clientKey)
	if priceID == "" {
		return entities.CheckoutSession{}, ErrInvalidPriceID
	}
	if u.provider == nil {
		log.Printf("[checkout][usecase] provider not configured price_id=%s", priceID)
		return entities.CheckoutSession{}, ErrCheckoutProviderNotSet
	}

	// The session must not be abandoned half-way if the browser goes away.
	ctx = context.WithoutCancel(ctx)

	if clientKey == "" {
		return u.createCheckoutSession(ctx, clientKey, priceID)
	}

	v, err, shared := u.inflight.Do(clientKey+"|"+priceID, func() (interface{}, error) {
		return u.createCheckoutSession(ctx, clientKey, priceID)
	})
	if shared {
		log.Printf("[checkout][usecase] duplicate submission joined in-flight call price_id=%s client_key=%s", priceID, clientKey)
	}
	if err != nil {
		return entities.CheckoutSession{}, err
	}
	return v.(entities.CheckoutSession), nil
}

func (u *CheckoutUseCase) createCheckoutSession(ctx context.Context, clientKey, priceID string) (entities.CheckoutSession, error) {
	log.Printf("[checkout][usecase] calling provider provider=%s price_id=%s", u.provider.Name(), priceID)
	session, err := u.provider.CreateCheckoutSession(ctx, priceID)
	if err != nil {
		log.Printf("[checkout][usecase] provider failed price_id=%s err=%v", priceID, err)
		return entities.CheckoutSession{}, errors.Join(ErrCheckoutProviderUnavailable, err)
	}
	if session.ID == "" || session.CheckoutURL == "" {
		log.Printf("[checkout][usecase] price not found price_id=%s", priceID)
		return entities.CheckoutSession{}, ErrPriceNotFound
	}

	session.PriceID = priceID
	session.ClientKey = clientKey
	if session.Provider == "" {
		session.Provider = u.provider.Name()
	}
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now().UTC()
	}

	if u.repo != nil {
		if _, err := u.repo.Create(ctx, session); err != nil {
			// The customer can still pay; the audit row is best effort.
			log.Printf("[checkout][usecase] audit create failed session_id=%s err=%v", session.ID, err)
		}
	}
	log.Printf("[checkout][usecase] create success session_id=%s provider=%s price_id=%s", session.ID, session.Provider, priceID)
	return session, nil
}

func (u *CheckoutUseCase) GetCheckoutSummary(ctx context.Context, sessionID string) (entities.CheckoutSummary, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return entities.CheckoutSummary{}, ErrInvalidCheckoutSessionID
	}
	if u.provider == nil {
		return entities.CheckoutSummary{}, ErrCheckoutProviderNotSet
	}

	summary, err := u.provider.GetCheckoutSummary(ctx, sessionID)
	if err != nil {
		log.Printf("[checkout][usecase] summary failed session_id=%s err=%v", sessionID, err)
		return entities.CheckoutSummary{}, err
	}
	if summary.SessionID == "" {
		return entities.CheckoutSummary{}, ErrCheckoutSessionNotFound
	}
	return summary, nil
}

func (u *CheckoutUseCase) GetByID(ctx context.Context, id string) (entities.CheckoutSession, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.CheckoutSession{}, ErrInvalidCheckoutSessionID
	}
	if u.repo == nil {
		return entities.CheckoutSession{}, ErrCheckoutAuditNotConfigured
	}

	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.CheckoutSession{}, err
	}
	if s.ID == "" {
		return entities.CheckoutSession{}, ErrCheckoutSessionNotFound
	}
	return s, nil
}
