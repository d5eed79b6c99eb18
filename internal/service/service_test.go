package service

import (
	"testing"

	"github.com/ipapMaster/newsSimpleProject/internal/crypto"
	"github.com/ipapMaster/newsSimpleProject/internal/repository"
	"github.com/ipapMaster/newsSimpleProject/internal/repository/repotest"
)

type testServices struct {
	auth       *AuthService
	news       *NewsService
	categories *CategoryService
	users      *repository.UserRepository
}

func newTestServices(t *testing.T) testServices {
	t.Helper()

	db := repotest.NewDB(t)
	users := repository.NewUserRepository(db)
	hasher := crypto.NewPasswordHasher(crypto.HashParams{Memory: 1024, Iterations: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32})

	return testServices{
		auth:       NewAuthService(users, hasher),
		news:       NewNewsService(repository.NewNewsRepository(db)),
		categories: NewCategoryService(repository.NewCategoryRepository(db)),
		users:      users,
	}
}
