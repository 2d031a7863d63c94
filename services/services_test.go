package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/cppla/inkpost/config"
	"github.com/cppla/inkpost/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	cfg := config.AppConfig{
		DBDialect:   config.DialectSQLite,
		DatabaseURI: "file::memory:",
		LogLevel:    "silent",
	}
	db, err := config.InitDatabase(cfg, zap.NewNop(), models.All()...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = config.CloseDatabase(db) })
	return db
}

type fixture struct {
	db       *gorm.DB
	users    *UserService
	articles *ArticleService
	likes    *LikeService
}

func newFixture(t *testing.T) fixture {
	db := newTestDB(t)
	return fixture{
		db:       db,
		users:    NewUserService(db),
		articles: NewArticleService(db),
		likes:    NewLikeService(db),
	}
}

func (f fixture) user(t *testing.T, name, email string) *models.User {
	t.Helper()
	u, err := f.users.Create(context.Background(), &models.User{Name: name, Email: email, Password: "hash"})
	require.NoError(t, err)
	return u
}

func (f fixture) article(t *testing.T, userID, title, content string) *models.Article {
	t.Helper()
	a, err := f.articles.Create(context.Background(), &models.Article{UserID: userID, Title: title, Content: content})
	require.NoError(t, err)
	return a
}

func ptr(s string) *string { return &s }

func page(p, l int) Pagination { return Pagination{Page: p, Limit: l} }

func seedUsers(t *testing.T, f fixture, n int) []*models.User {
	out := make([]*models.User, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, f.user(t, fmt.Sprintf("user-%02d", i), fmt.Sprintf("user%02d@example.com", i)))
	}
	return out
}
