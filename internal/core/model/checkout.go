package model

type CheckoutSessionID string

type CheckoutRequest struct {
	UserID UserID
	// Origin is the origin of the calling page, used to build the
	// success and cancel URLs.
	Origin string
}
