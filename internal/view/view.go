// Package view defines the boundary to the page renderer. Handlers hand it a
// template name and a data context; what it produces is up to the renderer.
package view

import (
	"encoding/json"
	"net/http"
)

// Template names used by the handlers.
const (
	NewsList     = "news_list"
	NewsDetail   = "news_detail"
	NewsForm     = "news_form"
	CategoryList = "category_list"
	CategoryForm = "category_form"
	Register     = "register"
	Login        = "login"
	NotFound     = "errors/404"
	ServerError  = "errors/500"
)

// Data is the context passed to a template.
type Data map[string]any

// Renderer writes a rendered template with the given status.
type Renderer interface {
	Render(w http.ResponseWriter, status int, name string, data Data) error
}

// JSONRenderer renders the template name and its data context as a JSON
// document. It stands in for an HTML renderer.
type JSONRenderer struct{}

func (JSONRenderer) Render(w http.ResponseWriter, status int, name string, data Data) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(struct {
		Template string `json:"template"`
		Data     Data   `json:"data"`
	}{Template: name, Data: data})
}
