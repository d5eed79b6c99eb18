package service

import (
	"strings"
	"testing"

	"github.com/ipapMaster/newsSimpleProject/internal/model"
)

func TestValidateMessages(t *testing.T) {
	err := Validate(model.RegisterInput{Name: "A", Email: "bad", Password: "abc", PasswordConfirm: "abd"})
	verr, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("Validate() error = %v, want *ValidationError", err)
	}

	want := map[string]string{
		"Name":            "Must be at least 2 characters long.",
		"Email":           "Invalid email address.",
		"Password":        "Must be at least 4 characters long.",
		"PasswordConfirm": "Passwords must match.",
	}
	for field, msg := range want {
		if verr.Fields[field] != msg {
			t.Errorf("Fields[%s] = %q, want %q", field, verr.Fields[field], msg)
		}
	}

	if !strings.HasPrefix(verr.Error(), "validation failed: Email: ") {
		t.Errorf("Error() = %q, want sorted field list", verr.Error())
	}
}

func TestValidateOK(t *testing.T) {
	if err := Validate(model.CategoryInput{Name: "Sports"}); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestValidateLengths(t *testing.T) {
	long := strings.Repeat("a", 300)

	err := Validate(model.RegisterInput{Name: "Ann", Email: long + "@x.com", Password: "secret", PasswordConfirm: "secret"})
	verr, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("Validate() error = %v, want *ValidationError", err)
	}
	if verr.Fields["Email"] == "" {
		t.Errorf("Fields = %v, want an Email message", verr.Fields)
	}

	// Titles and category names have no upper bound.
	if err := Validate(model.NewsInput{Title: long, Content: "body"}); err != nil {
		t.Errorf("Validate() long title = %v, want nil", err)
	}
	if err := Validate(model.CategoryInput{Name: long}); err != nil {
		t.Errorf("Validate() long category name = %v, want nil", err)
	}
}
