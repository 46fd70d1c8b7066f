package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Exela-Tech/Propeerty-Management/currency"
	"github.com/Exela-Tech/Propeerty-Management/model"
)

const allPaymentsKey = "payments:all"

// PaymentService gates every mutation of a payment behind the caller's
// identity and the payment's current status. Lookups and checks happen
// before any external call; the processor and store calls are single
// round trips with no local retry.
type PaymentService struct {
	store    PaymentStore
	checkout CheckoutClient
	events   EventPublisher
	cache    PaymentCache

	normalizer currency.Normalizer
	now        func() time.Time
}

func NewPaymentService(store PaymentStore, checkout CheckoutClient, events EventPublisher, cache PaymentCache) *PaymentService {
	return &PaymentService{
		store:      store,
		checkout:   checkout,
		events:     events,
		cache:      cache,
		normalizer: currency.Normalizer{Observer: roundingRelay{events: events}},
		now:        time.Now,
	}
}

// roundingRelay forwards normalizer rounding adjustments to the event
// publisher so discrepancies are queryable in aggregate.
type roundingRelay struct {
	events EventPublisher
}

func (r roundingRelay) RoundingAdjusted(code currency.Code, amount float64, rawMinor, roundedMinor int64) {
	if r.events == nil {
		return
	}
	r.events.PublishRoundingAdjusted(RoundingAdjustedEvent{
		Currency:     string(code),
		Amount:       amount,
		RawMinor:     rawMinor,
		RoundedMinor: roundedMinor,
	})
}

// InitiateCheckout opens a hosted checkout session for a pending
// payment owned by the caller and returns the session client secret.
// Nothing is mutated locally.
func (s *PaymentService) InitiateCheckout(ctx context.Context, callerID, paymentID string) (string, error) {
	payment, err := s.authorize(ctx, callerID, paymentID)
	if err != nil {
		return "", err
	}
	if payment.Status == model.StatusPaid {
		return "", ErrAlreadyPaid
	}

	minor, err := s.normalizer.MinorUnits(payment.Amount, payment.Currency)
	if err != nil {
		return "", err
	}

	secret, err := s.checkout.CreateCheckoutSession(ctx, CheckoutRequest{
		PaymentID:   payment.ID,
		Description: checkoutDescription(payment),
		AmountMinor: minor,
		Currency:    payment.Currency,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return secret, nil
}

// ConfirmPaid moves a pending payment owned by the caller to paid,
// recording the paid time and the processor reference. Confirming an
// already-paid payment fails with ErrAlreadyPaid; the guarded update in
// the store is what arbitrates concurrent confirmations.
func (s *PaymentService) ConfirmPaid(ctx context.Context, callerID, paymentID, processorRef string) (*model.Payment, error) {
	payment, err := s.authorize(ctx, callerID, paymentID)
	if err != nil {
		return nil, err
	}
	return s.markPaid(ctx, payment, processorRef)
}

// ConfirmFromProcessor is the webhook-driven confirmation path. The
// caller is the processor itself, authenticated upstream by webhook
// signature, so no renter ownership check applies.
func (s *PaymentService) ConfirmFromProcessor(ctx context.Context, paymentID, processorRef string) error {
	payment, err := s.store.GetWithProperty(ctx, paymentID)
	if err != nil {
		return err
	}
	_, err = s.markPaid(ctx, payment, processorRef)
	return err
}

func (s *PaymentService) markPaid(ctx context.Context, payment *model.Payment, processorRef string) (*model.Payment, error) {
	if payment.Status == model.StatusPaid {
		return nil, ErrAlreadyPaid
	}

	paidAt := s.now().UTC()
	rows, err := s.store.MarkPaid(ctx, payment.ID, processorRef, paidAt)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, ErrAlreadyPaid
	}

	payment.Status = model.StatusPaid
	payment.PaidAt = &paidAt
	payment.ProcessorRef = &processorRef

	if s.events != nil {
		s.events.PublishPaymentPaid(PaymentPaidEvent{
			PaymentID:    payment.ID,
			RenterID:     payment.RenterID,
			PropertyID:   payment.PropertyID,
			Amount:       payment.Amount,
			Currency:     payment.Currency,
			ProcessorRef: processorRef,
			PaidAt:       paidAt,
		})
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx, renterListKey(payment.RenterID), allPaymentsKey)
	}
	return payment, nil
}

// GetPayment returns a single payment the caller owns.
func (s *PaymentService) GetPayment(ctx context.Context, callerID, paymentID string) (*model.Payment, error) {
	return s.authorize(ctx, callerID, paymentID)
}

// ListRenterPayments returns the caller's payments, newest due first,
// served from cache when possible.
func (s *PaymentService) ListRenterPayments(ctx context.Context, callerID string) ([]model.Payment, error) {
	if callerID == "" {
		return nil, ErrUnauthenticated
	}

	key := renterListKey(callerID)
	if s.cache != nil {
		if cached, ok := s.cache.GetList(ctx, key); ok {
			return cached, nil
		}
	}

	payments, err := s.store.ListByRenter(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.SetList(ctx, key, payments)
	}
	return payments, nil
}

// ListAllPayments returns every payment. Role enforcement happens in
// the HTTP middleware.
func (s *PaymentService) ListAllPayments(ctx context.Context) ([]model.Payment, error) {
	if s.cache != nil {
		if cached, ok := s.cache.GetList(ctx, allPaymentsKey); ok {
			return cached, nil
		}
	}
	payments, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.SetList(ctx, allPaymentsKey, payments)
	}
	return payments, nil
}

func (s *PaymentService) authorize(ctx context.Context, callerID, paymentID string) (*model.Payment, error) {
	if callerID == "" {
		return nil, ErrUnauthenticated
	}
	payment, err := s.store.GetWithProperty(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if payment.RenterID != callerID {
		return nil, ErrForbidden
	}
	return payment, nil
}

func checkoutDescription(p *model.Payment) string {
	due := p.DueDate.Format("2 Jan 2006")
	if p.Property == nil {
		return fmt.Sprintf("Rent due %s", due)
	}
	return fmt.Sprintf("Rent for %s, %s (due %s)", p.Property.Title, p.Property.Address, due)
}

func renterListKey(renterID string) string {
	return fmt.Sprintf("payments:%s", renterID)
}
