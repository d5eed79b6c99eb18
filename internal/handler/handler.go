package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/ipapMaster/newsSimpleProject/internal/middleware"
	"github.com/ipapMaster/newsSimpleProject/internal/model"
	"github.com/ipapMaster/newsSimpleProject/internal/view"
)

// SessionManager issues, resolves and revokes login sessions.
type SessionManager interface {
	Login(ctx context.Context, w http.ResponseWriter, user *model.User, remember bool) error
	Logout(ctx context.Context, w http.ResponseWriter, r *http.Request) error
	Current(ctx context.Context, r *http.Request) (*model.User, error)
}

// responder holds the rendering helpers shared by every handler.
type responder struct {
	view view.Renderer
}

// render adds the signed-in user, or nil, to data under current_user.
func (rs responder) render(w http.ResponseWriter, r *http.Request, status int, name string, data view.Data) {
	if data == nil {
		data = view.Data{}
	}
	if u, ok := middleware.UserFromContext(r.Context()); ok {
		data["current_user"] = u
	} else {
		data["current_user"] = nil
	}

	if err := rs.view.Render(w, status, name, data); err != nil {
		slog.Error("rendering template failed", "template", name, "error", err)
	}
}

func (rs responder) notFound(w http.ResponseWriter, r *http.Request) {
	rs.render(w, r, http.StatusNotFound, view.NotFound, view.Data{"path": r.URL.Path})
}

func (rs responder) serverError(w http.ResponseWriter, r *http.Request, err error) {
	slog.Error("request failed",
		"error", err,
		"method", r.Method,
		"path", r.URL.Path,
		"request_id", chimw.GetReqID(r.Context()),
	)
	rs.render(w, r, http.StatusInternalServerError, view.ServerError, nil)
}

// badForm answers a form that could not be parsed.
func (rs responder) badForm(w http.ResponseWriter, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
		return
	}
	http.Error(w, "invalid form body", http.StatusBadRequest)
}

// idParam returns the {id} URL parameter. Only positive integers are valid.
func idParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// actor returns the signed-in user. Routes calling it sit behind RequireAuth.
func actor(r *http.Request) model.User {
	u, _ := middleware.UserFromContext(r.Context())
	return u
}

// safeNext returns next when it is a path on this site and /news otherwise.
func safeNext(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, `/\`) {
		return "/news"
	}
	return next
}

func seeOther(w http.ResponseWriter, r *http.Request, url string) {
	http.Redirect(w, r, url, http.StatusSeeOther)
}
