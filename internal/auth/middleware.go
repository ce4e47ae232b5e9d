package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/enneatest/api/internal/policy"
	"github.com/enneatest/api/internal/utils"
)

type ctxKey string

const actorKey ctxKey = "actor"

// WithActor stores the authenticated actor on a request context.
func WithActor(ctx context.Context, actor policy.Actor) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

// ActorFrom returns the actor placed on the context by Middleware.
func ActorFrom(ctx context.Context) policy.Actor {
	actor, _ := ctx.Value(actorKey).(policy.Actor)
	return actor
}

// Middleware verifies the bearer token and resolves it to a live account,
// so a token for a deleted account is rejected. The actor ends up on the
// request context.
func (h *Handler) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}
		header := r.Header.Get("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			utils.RespondError(w, http.StatusUnauthorized, "Authorization token missing.")
			return
		}
		claims, err := ParseToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			utils.RespondError(w, http.StatusUnauthorized, "Invalid or expired token.")
			return
		}
		acc, err := h.Accounts.FindByID(h.DB, claims.UserID)
		if err != nil {
			utils.RespondError(w, http.StatusUnauthorized, "Invalid or expired token.")
			return
		}
		actor := policy.Actor{ID: acc.ID, Role: acc.Role}
		next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
	})
}

// Require gates a route on the role column of the access-policy table.
// Scope checks against concrete records happen in the handlers, through
// the same table.
func Require(op policy.Operation, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor := ActorFrom(r.Context())
		if err := policy.CheckRole(actor.Role, op); err != nil {
			utils.RespondError(w, http.StatusForbidden, "You are not allowed to perform this action.")
			return
		}
		next.ServeHTTP(w, r)
	})
}
