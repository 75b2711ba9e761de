package handler

import (
	"net/http"
	"strconv"

	"github.com/domi413/worklog/internal/auth"
	"github.com/domi413/worklog/internal/domain"
	"github.com/domi413/worklog/internal/github"
	"github.com/domi413/worklog/internal/service"
)

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, h.oauth.AuthCodeURL(""), http.StatusFound)
}

func (h *Handler) Callback(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	if code == "" {
		h.handleError(w, domain.NewValidationError("code parameter is required"))
		return
	}

	token, err := h.oauth.Exchange(r.Context(), code)
	if err != nil {
		h.logger.Warn(r.Context(), "oauth exchange failed", "error", err.Error())
		h.handleError(w, domain.ErrAuthenticationRequired)
		return
	}

	ghUser, err := github.NewClient(token.AccessToken).AuthenticatedUser(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	user, err := h.userService.EnsureUser(r.Context(), service.GithubProfile{
		GithubID: strconv.FormatInt(ghUser.GetID(), 10),
		Username: ghUser.GetLogin(),
		Email:    ghUser.GetEmail(),
	})
	if err != nil {
		h.handleError(w, err)
		return
	}

	session, err := h.sessions.Issue(user.ID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    session,
		Path:     "/",
		MaxAge:   int(h.sessions.TTL().Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	h.logger.Info(r.Context(), "user logged in", "username", user.Username)
	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())

	h.writeJSON(w, http.StatusOK, MeResponse{
		User: domainUserToHTTP(user),
	})
}
