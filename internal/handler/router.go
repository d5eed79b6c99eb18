package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/ipapMaster/newsSimpleProject/internal/middleware"
	"github.com/ipapMaster/newsSimpleProject/internal/service"
	"github.com/ipapMaster/newsSimpleProject/internal/view"
)

// Deps are the collaborators the router wires into its handlers.
type Deps struct {
	Auth       *service.AuthService
	News       *service.NewsService
	Categories *service.CategoryService
	Sessions   SessionManager
	View       view.Renderer

	// AuthRateLimit and AuthRateBurst throttle POSTs to /login and
	// /register per client IP. A zero rate disables throttling.
	AuthRateLimit float64
	AuthRateBurst int
}

// NewRouter builds the blog's route table. Background work started for the
// router stops when ctx is done.
func NewRouter(ctx context.Context, d Deps) http.Handler {
	authHandler := NewAuthHandler(d.Auth, d.Sessions, d.View)
	newsHandler := NewNewsHandler(d.News, d.Categories, d.View)
	categoryHandler := NewCategoryHandler(d.Categories, d.View)
	pages := responder{view: d.View}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.Logger)
	r.Use(chimw.Recoverer)
	r.Use(middleware.LoadIdentity(d.Sessions))

	r.NotFound(pages.notFound)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/", newsHandler.HandleList)
	r.Get("/news", newsHandler.HandleList)
	r.Get("/news/{id}", newsHandler.HandleDetail)

	r.Group(func(r chi.Router) {
		r.Use(middleware.AnonymousOnly)
		if d.AuthRateLimit > 0 {
			r.Use(middleware.RateLimit(ctx, d.AuthRateLimit, d.AuthRateBurst))
		}
		r.Get("/register", authHandler.HandleRegisterForm)
		r.Post("/register", authHandler.HandleRegister)
		r.Get("/login", authHandler.HandleLoginForm)
		r.Post("/login", authHandler.HandleLogin)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/logout", authHandler.HandleLogout)

		r.Get("/news/add", newsHandler.HandleAddForm)
		r.Post("/news/add", newsHandler.HandleAdd)
		r.Get("/news/edit/{id}", newsHandler.HandleEditForm)
		r.Post("/news/edit/{id}", newsHandler.HandleEdit)
		r.Post("/news/delete/{id}", newsHandler.HandleDelete)

		r.Get("/categories", categoryHandler.HandleList)
		r.Get("/categories/add", categoryHandler.HandleAddForm)
		r.Post("/categories/add", categoryHandler.HandleAdd)
		r.Get("/categories/edit/{id}", categoryHandler.HandleEditForm)
		r.Post("/categories/edit/{id}", categoryHandler.HandleEdit)
		r.Post("/categories/delete/{id}", categoryHandler.HandleDelete)
	})

	return r
}
