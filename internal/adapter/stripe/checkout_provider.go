package stripe

import (
	"context"
	"log/slog"
	"strings"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/maven/internal/core/model"
	"github.com/bornholm/maven/internal/core/port"
	"github.com/bornholm/maven/internal/metrics"
	"github.com/pkg/errors"
	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/client"
)

var (
	ErrMissingSecretKey = errors.New("Missing Stripe secret key in environment variables")
	ErrMissingPriceID   = errors.New("Missing Stripe price ID in environment variables")
)

const (
	SuccessPath = "/dashboard?session_id={CHECKOUT_SESSION_ID}"
	CancelPath  = "/upgrade"
)

type CheckoutProvider struct {
	secretKey string
	priceID   string
	backends  *stripe.Backends
}

// CreateSession implements port.CheckoutProvider.
func (p *CheckoutProvider) CreateSession(ctx context.Context, req model.CheckoutRequest) (model.CheckoutSessionID, error) {
	if p.secretKey == "" {
		metrics.CheckoutSessions.WithLabelValues(metrics.ResultFailed).Inc()
		return "", errors.WithStack(ErrMissingSecretKey)
	}

	if p.priceID == "" {
		metrics.CheckoutSessions.WithLabelValues(metrics.ResultFailed).Inc()
		return "", errors.WithStack(ErrMissingPriceID)
	}

	ctx = slogx.WithAttrs(ctx, slog.String("userID", string(req.UserID)))

	origin := strings.TrimSuffix(req.Origin, "/")

	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(p.priceID),
				Quantity: stripe.Int64(1),
			},
		},
		Mode:              stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		SuccessURL:        stripe.String(origin + SuccessPath),
		CancelURL:         stripe.String(origin + CancelPath),
		ClientReferenceID: stripe.String(string(req.UserID)),
	}

	params.Context = ctx

	slog.DebugContext(ctx, "creating checkout session", slog.String("priceID", p.priceID))

	sc := client.New(p.secretKey, p.backends)

	session, err := sc.CheckoutSessions.New(params)
	if err != nil {
		metrics.CheckoutSessions.WithLabelValues(metrics.ResultFailed).Inc()
		slog.ErrorContext(ctx, "could not create checkout session", slogx.Error(err))
		return "", errors.WithStack(err)
	}

	metrics.CheckoutSessions.WithLabelValues(metrics.ResultSucceeded).Inc()

	slog.InfoContext(ctx, "checkout session created", slog.String("sessionID", session.ID))

	return model.CheckoutSessionID(session.ID), nil
}

type OptionFunc func(p *CheckoutProvider)

// WithBackends overrides the Stripe API backends, mainly to target a
// local endpoint.
func WithBackends(backends *stripe.Backends) OptionFunc {
	return func(p *CheckoutProvider) {
		p.backends = backends
	}
}

func NewCheckoutProvider(secretKey string, priceID string, funcs ...OptionFunc) *CheckoutProvider {
	p := &CheckoutProvider{
		secretKey: secretKey,
		priceID:   priceID,
	}

	for _, fn := range funcs {
		fn(p)
	}

	return p
}

var _ port.CheckoutProvider = &CheckoutProvider{}
