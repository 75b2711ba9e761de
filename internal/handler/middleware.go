package handler

import (
	"context"
	"net/http"

	"github.com/domi413/worklog/internal/auth"
	"github.com/domi413/worklog/internal/domain"
)

type contextKey string

const userContextKey contextKey = "user"

// RequireUser resolves the session cookie to a user and puts it on the
// request context. Requests without a valid session never reach next.
func (h *Handler) RequireUser(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(auth.CookieName)
		if err != nil {
			h.handleError(w, domain.ErrAuthenticationRequired)
			return
		}

		userID, err := h.sessions.Parse(cookie.Value)
		if err != nil {
			h.handleError(w, domain.ErrAuthenticationRequired)
			return
		}

		user, err := h.userService.GetByID(r.Context(), userID)
		if err != nil {
			// A stale session for a deleted user counts as unauthenticated.
			h.handleError(w, domain.ErrAuthenticationRequired)
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, user)
		next(w, r.WithContext(ctx))
	}
}

func userFromContext(ctx context.Context) *domain.User {
	user, _ := ctx.Value(userContextKey).(*domain.User)
	return user
}
