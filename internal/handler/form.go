package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/ipapMaster/newsSimpleProject/internal/model"
	"github.com/ipapMaster/newsSimpleProject/internal/service"
)

const maxFormBytes = 1 << 20 // 1MB

// formFields maps input struct fields to the names used in the HTML forms.
var formFields = map[string]string{
	"Name":            "name",
	"Email":           "email",
	"Password":        "password",
	"PasswordConfirm": "password_confirm",
	"RememberMe":      "remember_me",
	"Title":           "title",
	"Content":         "content",
	"IsPrivate":       "is_private",
	"CategoryIDs":     "categories",
}

func parseForm(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	return r.ParseForm()
}

// text returns a trimmed form value. Passwords are read raw.
func text(r *http.Request, key string) string {
	return strings.TrimSpace(r.PostForm.Get(key))
}

// checkbox reports whether a checkbox was ticked. An absent field, an empty
// value and "false" all mean unticked.
func checkbox(r *http.Request, key string) bool {
	v := strings.TrimSpace(r.PostForm.Get(key))
	return v != "" && !strings.EqualFold(v, "false")
}

func bindRegister(r *http.Request) model.RegisterInput {
	return model.RegisterInput{
		Name:            text(r, "name"),
		Email:           text(r, "email"),
		Password:        r.PostForm.Get("password"),
		PasswordConfirm: r.PostForm.Get("password_confirm"),
	}
}

func bindLogin(r *http.Request) model.LoginInput {
	return model.LoginInput{
		Email:      text(r, "email"),
		Password:   r.PostForm.Get("password"),
		RememberMe: checkbox(r, "remember_me"),
	}
}

// bindNews reads the news form. categories may repeat; a value that is not
// an id is reported as a field error.
func bindNews(r *http.Request) (model.NewsInput, error) {
	in := model.NewsInput{
		Title:       text(r, "title"),
		Content:     text(r, "content"),
		IsPrivate:   checkbox(r, "is_private"),
		CategoryIDs: []int64{},
	}

	for _, v := range r.PostForm["categories"] {
		id, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil || id <= 0 {
			return in, &service.ValidationError{Fields: map[string]string{"CategoryIDs": "Not a valid choice."}}
		}
		in.CategoryIDs = append(in.CategoryIDs, id)
	}
	return in, nil
}

func bindCategory(r *http.Request) model.CategoryInput {
	return model.CategoryInput{Name: text(r, "name")}
}

// fieldErrors re-keys validation messages by form field name.
func fieldErrors(verr *service.ValidationError) map[string]string {
	out := make(map[string]string, len(verr.Fields))
	for field, msg := range verr.Fields {
		if name, ok := formFields[field]; ok {
			field = name
		}
		out[field] = msg
	}
	return out
}
