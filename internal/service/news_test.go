package service

import (
	"context"
	"errors"
	"testing"

	"github.com/ipapMaster/newsSimpleProject/internal/model"
)

func registerUser(t *testing.T, svc testServices, name, email string) model.User {
	t.Helper()
	u, err := svc.auth.Register(context.Background(), model.RegisterInput{
		Name: name, Email: email, Password: "pass1", PasswordConfirm: "pass1",
	})
	if err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}
	return *u
}

func publicIDs(t *testing.T, svc testServices) map[int64]bool {
	t.Helper()
	list, err := svc.news.ListPublic(context.Background())
	if err != nil {
		t.Fatalf("ListPublic() unexpected error: %v", err)
	}
	ids := make(map[int64]bool, len(list))
	for _, n := range list {
		if n.IsPrivate {
			t.Errorf("ListPublic() returned private news %d", n.ID)
		}
		ids[n.ID] = true
	}
	return ids
}

func TestNewsVisibilityAndOwnershipScenario(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()
	ann := registerUser(t, svc, "Ann", "ann@x.com")
	bob := registerUser(t, svc, "Bob", "bob@x.com")

	n, err := svc.news.Create(ctx, ann, model.NewsInput{Title: "Hello", Content: "World", IsPrivate: true})
	if err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}
	if n.UserID != ann.ID {
		t.Errorf("Create() owner = %d, want %d", n.UserID, ann.ID)
	}

	if publicIDs(t, svc)[n.ID] {
		t.Error("private news should not be listed")
	}

	detail, err := svc.news.Get(ctx, n.ID)
	if err != nil {
		t.Fatalf("Get() unexpected error: %v", err)
	}
	if detail.Title != "Hello" {
		t.Errorf("Get() title = %q, want %q", detail.Title, "Hello")
	}

	publish := model.NewsInput{Title: "Hello", Content: "World", IsPrivate: false}
	if _, err := svc.news.Update(ctx, n.ID, bob, publish); !errors.Is(err, ErrNewsNotFound) {
		t.Errorf("Update() by non-owner error = %v, want %v", err, ErrNewsNotFound)
	}
	if publicIDs(t, svc)[n.ID] {
		t.Error("non-owner update must not change visibility")
	}

	updated, err := svc.news.Update(ctx, n.ID, ann, publish)
	if err != nil {
		t.Fatalf("Update() by owner unexpected error: %v", err)
	}
	if updated.IsPrivate || updated.UserID != ann.ID {
		t.Errorf("Update() = %+v, want public and owned by Ann", updated)
	}
	if !publicIDs(t, svc)[n.ID] {
		t.Error("news made public should be listed")
	}
}

func TestNewsDeleteOwnership(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()
	ann := registerUser(t, svc, "Ann", "ann@x.com")
	bob := registerUser(t, svc, "Bob", "bob@x.com")

	n, err := svc.news.Create(ctx, ann, model.NewsInput{Title: "t", Content: "c"})
	if err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}

	if err := svc.news.Delete(ctx, n.ID, bob); !errors.Is(err, ErrNewsNotFound) {
		t.Errorf("Delete() by non-owner error = %v, want %v", err, ErrNewsNotFound)
	}
	if _, err := svc.news.Get(ctx, n.ID); err != nil {
		t.Errorf("news should survive non-owner delete, got %v", err)
	}

	if err := svc.news.Delete(ctx, n.ID, ann); err != nil {
		t.Fatalf("Delete() by owner unexpected error: %v", err)
	}
	if _, err := svc.news.Get(ctx, n.ID); !errors.Is(err, ErrNewsNotFound) {
		t.Errorf("Get() after delete error = %v, want %v", err, ErrNewsNotFound)
	}
	if err := svc.news.Delete(ctx, n.ID, ann); !errors.Is(err, ErrNewsNotFound) {
		t.Errorf("second Delete() error = %v, want %v", err, ErrNewsNotFound)
	}
}

func TestNewsCreateIgnoresUnknownCategory(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()
	ann := registerUser(t, svc, "Ann", "ann@x.com")

	sports, err := svc.categories.Create(ctx, model.CategoryInput{Name: "Sports"})
	if err != nil {
		t.Fatalf("Create() category unexpected error: %v", err)
	}

	n, err := svc.news.Create(ctx, ann, model.NewsInput{
		Title: "Match", Content: "Report", CategoryIDs: []int64{sports.ID, 9999},
	})
	if err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}
	if len(n.Categories) != 1 || n.Categories[0].Name != "Sports" {
		t.Errorf("Create() categories = %+v, want [Sports]", n.Categories)
	}
}

func TestNewsCreateValidation(t *testing.T) {
	svc := newTestServices(t)
	ann := registerUser(t, svc, "Ann", "ann@x.com")

	_, err := svc.news.Create(context.Background(), ann, model.NewsInput{Title: "", Content: ""})

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Create() error = %v, want *ValidationError", err)
	}
	if len(verr.Fields) != 2 {
		t.Errorf("Create() field errors = %v, want Title and Content", verr.Fields)
	}
}

func TestNewsUpdateNonOwnerBeatsValidation(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()
	ann := registerUser(t, svc, "Ann", "ann@x.com")
	bob := registerUser(t, svc, "Bob", "bob@x.com")

	n, err := svc.news.Create(ctx, ann, model.NewsInput{Title: "t", Content: "c"})
	if err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}

	if _, err := svc.news.Update(ctx, n.ID, bob, model.NewsInput{}); !errors.Is(err, ErrNewsNotFound) {
		t.Errorf("Update() error = %v, want %v", err, ErrNewsNotFound)
	}
}

func TestGetOwned(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()
	ann := registerUser(t, svc, "Ann", "ann@x.com")
	bob := registerUser(t, svc, "Bob", "bob@x.com")

	n, err := svc.news.Create(ctx, ann, model.NewsInput{Title: "t", Content: "c"})
	if err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}

	if _, err := svc.news.GetOwned(ctx, n.ID, ann); err != nil {
		t.Errorf("GetOwned() by owner error = %v", err)
	}
	if _, err := svc.news.GetOwned(ctx, n.ID, bob); !errors.Is(err, ErrNewsNotFound) {
		t.Errorf("GetOwned() by non-owner error = %v, want %v", err, ErrNewsNotFound)
	}
}
