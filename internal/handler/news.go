package handler

import (
	"errors"
	"net/http"

	"github.com/ipapMaster/newsSimpleProject/internal/model"
	"github.com/ipapMaster/newsSimpleProject/internal/service"
	"github.com/ipapMaster/newsSimpleProject/internal/view"
)

// NewsHandler handles HTTP requests for news posts.
type NewsHandler struct {
	responder
	news       *service.NewsService
	categories *service.CategoryService
}

// NewNewsHandler creates a new NewsHandler.
func NewNewsHandler(news *service.NewsService, categories *service.CategoryService, v view.Renderer) *NewsHandler {
	return &NewsHandler{responder: responder{view: v}, news: news, categories: categories}
}

// HandleList handles GET / and GET /news requests.
func (h *NewsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	list, err := h.news.ListPublic(r.Context())
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, view.NewsList, view.Data{"news_list": list})
}

// HandleDetail handles GET /news/{id} requests.
func (h *NewsHandler) HandleDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		h.notFound(w, r)
		return
	}

	n, err := h.news.Get(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, view.NewsDetail, view.Data{"news": n})
}

// HandleAddForm handles GET /news/add requests.
func (h *NewsHandler) HandleAddForm(w http.ResponseWriter, r *http.Request) {
	h.renderForm(w, r, http.StatusOK, "Add news", model.NewsInput{CategoryIDs: []int64{}}, nil)
}

// HandleAdd handles POST /news/add requests.
func (h *NewsHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(w, r); err != nil {
		h.badForm(w, err)
		return
	}

	in, err := bindNews(r)
	if err == nil {
		_, err = h.news.Create(r.Context(), actor(r), in)
	}
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			h.renderForm(w, r, http.StatusUnprocessableEntity, "Add news", in, fieldErrors(verr))
			return
		}
		h.serverError(w, r, err)
		return
	}

	seeOther(w, r, "/news")
}

// HandleEditForm handles GET /news/edit/{id} requests. Someone else's post
// is reported as missing.
func (h *NewsHandler) HandleEditForm(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		h.notFound(w, r)
		return
	}

	n, err := h.news.GetOwned(r.Context(), id, actor(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	in := model.NewsInput{
		Title:       n.Title,
		Content:     n.Content,
		IsPrivate:   n.IsPrivate,
		CategoryIDs: n.CategoryIDs(),
	}
	h.renderForm(w, r, http.StatusOK, "Edit news", in, nil)
}

// HandleEdit handles POST /news/edit/{id} requests.
func (h *NewsHandler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		h.notFound(w, r)
		return
	}

	// Ownership is settled before the body is looked at.
	if _, err := h.news.GetOwned(r.Context(), id, actor(r)); err != nil {
		h.fail(w, r, err)
		return
	}

	if err := parseForm(w, r); err != nil {
		h.badForm(w, err)
		return
	}

	in, err := bindNews(r)
	if err == nil {
		_, err = h.news.Update(r.Context(), id, actor(r), in)
	}
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			h.renderForm(w, r, http.StatusUnprocessableEntity, "Edit news", in, fieldErrors(verr))
			return
		}
		h.fail(w, r, err)
		return
	}

	seeOther(w, r, "/news")
}

// HandleDelete handles POST /news/delete/{id} requests.
func (h *NewsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		h.notFound(w, r)
		return
	}

	if err := h.news.Delete(r.Context(), id, actor(r)); err != nil {
		h.fail(w, r, err)
		return
	}
	seeOther(w, r, "/news")
}

func (h *NewsHandler) renderForm(w http.ResponseWriter, r *http.Request, status int, title string, in model.NewsInput, errs map[string]string) {
	categories, err := h.categories.List(r.Context())
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	if errs == nil {
		errs = map[string]string{}
	}

	h.render(w, r, status, view.NewsForm, view.Data{
		"title":      title,
		"form":       in,
		"categories": categories,
		"errors":     errs,
	})
}

func (h *NewsHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, service.ErrNewsNotFound) {
		h.notFound(w, r)
		return
	}
	h.serverError(w, r, err)
}
