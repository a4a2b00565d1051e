package checkout

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/maven/internal/core/model"
	"github.com/bornholm/maven/internal/core/port"
	httpCtx "github.com/bornholm/maven/internal/http/context"
	"github.com/pkg/errors"
	"github.com/rs/cors"
)

// AllowedHeaders lists the request headers accepted from cross-origin
// callers.
var AllowedHeaders = []string{"authorization", "x-client-info", "apikey", "content-type"}

type Handler struct {
	mux      *http.ServeMux
	provider port.CheckoutProvider
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

type CreateCheckoutRequest struct {
	UserID string `json:"user_id"`
}

type CreateCheckoutResponse struct {
	SessionID string `json:"sessionId"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) createCheckout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateCheckoutRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.WarnContext(ctx, "could not decode checkout request", slogx.Error(errors.WithStack(err)))
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	ctx = slogx.WithAttrs(ctx, slog.String("userID", req.UserID))

	sessionID, err := h.provider.CreateSession(ctx, model.CheckoutRequest{
		UserID: model.UserID(req.UserID),
		Origin: requestOrigin(r),
	})
	if err != nil {
		slog.ErrorContext(ctx, "could not create checkout session", slogx.Error(err))
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: errors.Cause(err).Error()})
		return
	}

	writeJSON(w, http.StatusOK, CreateCheckoutResponse{SessionID: string(sessionID)})
}

// requestOrigin returns the Origin header of the request, or the public
// base URL of the server when the header is absent.
func requestOrigin(r *http.Request) string {
	if origin := r.Header.Get("Origin"); origin != "" {
		return origin
	}

	baseURL := httpCtx.BaseURL(r.Context())
	baseURL.Path = ""
	baseURL.RawQuery = ""

	return strings.TrimSuffix(baseURL.String(), "/")
}

func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("could not encode response", slogx.Error(errors.WithStack(err)))
	}
}

func NewHandler(provider port.CheckoutProvider, middlewares ...func(http.Handler) http.Handler) *Handler {
	h := &Handler{
		mux:      http.NewServeMux(),
		provider: provider,
	}

	c := cors.New(cors.Options{
		AllowedOrigins:     []string{"*"},
		AllowedMethods:     []string{http.MethodPost, http.MethodOptions},
		AllowedHeaders:     AllowedHeaders,
		OptionsPassthrough: false,
	})

	var create http.Handler = http.HandlerFunc(h.createCheckout)
	for i := len(middlewares) - 1; i >= 0; i-- {
		create = middlewares[i](create)
	}

	h.mux.Handle("/create-checkout", c.Handler(onlyPost(create)))

	return h
}

func onlyPost(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.Header().Set("Allow", http.MethodPost+", "+http.MethodOptions)
			writeJSON(w, http.StatusMethodNotAllowed, ErrorResponse{Error: http.StatusText(http.StatusMethodNotAllowed)})
			return
		}

		next.ServeHTTP(w, r)
	})
}

var _ http.Handler = &Handler{}
