package handler

import (
	"errors"
	"net/http"

	"github.com/ipapMaster/newsSimpleProject/internal/model"
	"github.com/ipapMaster/newsSimpleProject/internal/service"
	"github.com/ipapMaster/newsSimpleProject/internal/view"
)

// CategoryHandler handles HTTP requests for categories.
type CategoryHandler struct {
	responder
	service *service.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(svc *service.CategoryService, v view.Renderer) *CategoryHandler {
	return &CategoryHandler{responder: responder{view: v}, service: svc}
}

// HandleList handles GET /categories requests.
func (h *CategoryHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.List(r.Context())
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, view.CategoryList, view.Data{"categories": list})
}

// HandleAddForm handles GET /categories/add requests.
func (h *CategoryHandler) HandleAddForm(w http.ResponseWriter, r *http.Request) {
	h.renderForm(w, r, http.StatusOK, "Add category", model.CategoryInput{}, nil)
}

// HandleAdd handles POST /categories/add requests.
func (h *CategoryHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(w, r); err != nil {
		h.badForm(w, err)
		return
	}
	in := bindCategory(r)

	if _, err := h.service.Create(r.Context(), in); err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			h.renderForm(w, r, http.StatusUnprocessableEntity, "Add category", in, fieldErrors(verr))
			return
		}
		h.serverError(w, r, err)
		return
	}

	seeOther(w, r, "/categories")
}

// HandleEditForm handles GET /categories/edit/{id} requests.
func (h *CategoryHandler) HandleEditForm(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		h.notFound(w, r)
		return
	}

	c, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.renderForm(w, r, http.StatusOK, "Edit category", model.CategoryInput{Name: c.Name}, nil)
}

// HandleEdit handles POST /categories/edit/{id} requests.
func (h *CategoryHandler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		h.notFound(w, r)
		return
	}

	if err := parseForm(w, r); err != nil {
		h.badForm(w, err)
		return
	}
	in := bindCategory(r)

	if _, err := h.service.Update(r.Context(), id, in); err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			h.renderForm(w, r, http.StatusUnprocessableEntity, "Edit category", in, fieldErrors(verr))
			return
		}
		h.fail(w, r, err)
		return
	}

	seeOther(w, r, "/categories")
}

// HandleDelete handles POST /categories/delete/{id} requests.
func (h *CategoryHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		h.notFound(w, r)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}
	seeOther(w, r, "/categories")
}

func (h *CategoryHandler) renderForm(w http.ResponseWriter, r *http.Request, status int, title string, in model.CategoryInput, errs map[string]string) {
	if errs == nil {
		errs = map[string]string{}
	}
	h.render(w, r, status, view.CategoryForm, view.Data{
		"title":  title,
		"form":   in,
		"errors": errs,
	})
}

func (h *CategoryHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, service.ErrCategoryNotFound) {
		h.notFound(w, r)
		return
	}
	h.serverError(w, r, err)
}
