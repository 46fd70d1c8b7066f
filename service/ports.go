package service

import (
	"context"
	"time"

	"github.com/Exela-Tech/Propeerty-Management/model"
)

// PaymentStore is the persistence surface the lifecycle guard needs.
// Implementations must use structured predicates only (no interpolated
// SQL) and translate a missing row into ErrNotFound and any other
// failure into ErrPersistence.
type PaymentStore interface {
	GetWithProperty(ctx context.Context, id string) (*model.Payment, error)
	// MarkPaid moves the payment from pending to paid and returns the
	// number of rows that transitioned. Zero rows means the payment was
	// no longer pending.
	MarkPaid(ctx context.Context, id, processorRef string, paidAt time.Time) (int64, error)
	ListByRenter(ctx context.Context, renterID string) ([]model.Payment, error)
	ListAll(ctx context.Context) ([]model.Payment, error)
}

// CheckoutRequest is everything the processor needs to open a hosted
// checkout session for one rent payment.
type CheckoutRequest struct {
	PaymentID   string
	Description string
	AmountMinor int64
	Currency    string
}

// CheckoutClient creates a processor-hosted checkout session and
// returns its opaque client secret.
type CheckoutClient interface {
	CreateCheckoutSession(ctx context.Context, req CheckoutRequest) (string, error)
}

type PaymentPaidEvent struct {
	PaymentID    string    `json:"payment_id"`
	RenterID     string    `json:"renter_id"`
	PropertyID   string    `json:"property_id"`
	Amount       float64   `json:"amount"`
	Currency     string    `json:"currency"`
	ProcessorRef string    `json:"processor_ref"`
	PaidAt       time.Time `json:"paid_at"`
}

type RoundingAdjustedEvent struct {
	Currency     string  `json:"currency"`
	Amount       float64 `json:"amount"`
	RawMinor     int64   `json:"raw_minor"`
	RoundedMinor int64   `json:"rounded_minor"`
}

// EventPublisher emits domain events. Publishing is fire-and-forget;
// failures are logged by the implementation, never surfaced here.
type EventPublisher interface {
	PublishPaymentPaid(event PaymentPaidEvent)
	PublishRoundingAdjusted(event RoundingAdjustedEvent)
}

// PaymentCache caches list responses per renter.
type PaymentCache interface {
	GetList(ctx context.Context, key string) ([]model.Payment, bool)
	SetList(ctx context.Context, key string, payments []model.Payment)
	Invalidate(ctx context.Context, keys ...string)
}
