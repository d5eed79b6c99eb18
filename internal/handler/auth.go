package handler

import (
	"errors"
	"net/http"

	"github.com/ipapMaster/newsSimpleProject/internal/model"
	"github.com/ipapMaster/newsSimpleProject/internal/service"
	"github.com/ipapMaster/newsSimpleProject/internal/view"
)

// AuthHandler handles registration, login and logout.
type AuthHandler struct {
	responder
	service  *service.AuthService
	sessions SessionManager
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc *service.AuthService, sessions SessionManager, v view.Renderer) *AuthHandler {
	return &AuthHandler{responder: responder{view: v}, service: svc, sessions: sessions}
}

// HandleRegisterForm handles GET /register requests.
func (h *AuthHandler) HandleRegisterForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, view.Register, view.Data{
		"form":   model.RegisterInput{},
		"errors": map[string]string{},
	})
}

// HandleRegister handles POST /register requests. A new user is signed in
// straight away without a persistent cookie.
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(w, r); err != nil {
		h.badForm(w, err)
		return
	}
	in := bindRegister(r)

	user, err := h.service.Register(r.Context(), in)
	if err != nil {
		var verr *service.ValidationError
		switch {
		case errors.As(err, &verr):
			h.render(w, r, http.StatusUnprocessableEntity, view.Register, view.Data{
				"form":   in,
				"errors": fieldErrors(verr),
			})
		case errors.Is(err, service.ErrDuplicateEmail):
			h.render(w, r, http.StatusConflict, view.Register, view.Data{
				"form":    in,
				"errors":  map[string]string{},
				"message": "A user with this email already exists.",
			})
		default:
			h.serverError(w, r, err)
		}
		return
	}

	if err := h.sessions.Login(r.Context(), w, user, false); err != nil {
		h.serverError(w, r, err)
		return
	}
	seeOther(w, r, "/news")
}

// HandleLoginForm handles GET /login requests.
func (h *AuthHandler) HandleLoginForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, view.Login, view.Data{
		"form":   model.LoginInput{},
		"errors": map[string]string{},
		"next":   r.URL.Query().Get("next"),
	})
}

// HandleLogin handles POST /login requests. On success the user is sent to
// the local next target, or to /news.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(w, r); err != nil {
		h.badForm(w, err)
		return
	}
	in := bindLogin(r)
	next := r.Form.Get("next")

	user, err := h.service.Authenticate(r.Context(), in)
	if err != nil {
		var verr *service.ValidationError
		switch {
		case errors.As(err, &verr):
			h.render(w, r, http.StatusUnprocessableEntity, view.Login, view.Data{
				"form":   in,
				"errors": fieldErrors(verr),
				"next":   next,
			})
		case errors.Is(err, service.ErrInvalidCredentials):
			h.render(w, r, http.StatusUnauthorized, view.Login, view.Data{
				"form":    in,
				"errors":  map[string]string{},
				"next":    next,
				"message": "Invalid email or password.",
			})
		default:
			h.serverError(w, r, err)
		}
		return
	}

	if err := h.sessions.Login(r.Context(), w, user, in.RememberMe); err != nil {
		h.serverError(w, r, err)
		return
	}
	seeOther(w, r, safeNext(next))
}

// HandleLogout handles GET /logout requests.
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Logout(r.Context(), w, r); err != nil {
		h.serverError(w, r, err)
		return
	}
	seeOther(w, r, "/news")
}
