package port

import (
	"context"

	"github.com/bornholm/maven/internal/core/model"
)

type CheckoutProvider interface {
	// CreateSession opens a subscription checkout session for the given user
	CreateSession(ctx context.Context, req model.CheckoutRequest) (model.CheckoutSessionID, error)
}
