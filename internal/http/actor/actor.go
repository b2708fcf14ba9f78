// Package actor carries pre-authenticated identity through requests. The
// core records identity, it never authenticates; upstream middleware is
// expected to have validated the caller already.
package actor

import (
	"context"
	"net/http"

	"github.com/FDCTax/fdctax-core-api-sub002/internal/http/respond"
	"github.com/FDCTax/fdctax-core-api-sub002/internal/workpaper"
)

const (
	HeaderID    = "X-Actor-Id"
	HeaderEmail = "X-Actor-Email"
)

type contextKey struct{}

// FromContext returns the actor attached by Middleware. Zero value when
// absent.
func FromContext(ctx context.Context) workpaper.Actor {
	a, _ := ctx.Value(contextKey{}).(workpaper.Actor)
	return a
}

// Middleware reads identity headers into the request context. Mutating
// methods without an actor id are rejected before reaching handlers.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		a := workpaper.Actor{
			ID:    r.Header.Get(HeaderID),
			Email: r.Header.Get(HeaderEmail),
		}

		switch r.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
			if a.ID == "" {
				respond.BadRequest(w, "missing "+HeaderID+" header")
				return
			}
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), contextKey{}, a)))
	})
}
