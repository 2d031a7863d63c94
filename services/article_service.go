package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cppla/inkpost/models"
	"gorm.io/gorm"
)

const articleColumns = "articles.id, articles.title, articles.content, articles.image, articles.user_id, articles.created_at, articles.updated_at"

// ArticleKey addresses an article through its author, so a foreign article never matches.
type ArticleKey struct {
	UserID string
	ID     string
}

type ArticleUpdate struct {
	Title   *string
	Content *string
	Image   *string
}

var errArticleIncomplete = errors.New("create article: user, title and content are required")

type ArticleService struct {
	db *gorm.DB
}

func NewArticleService(db *gorm.DB) *ArticleService {
	return &ArticleService{db: db}
}

func (s *ArticleService) withLikes(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).Table("articles").
		Select(articleColumns + ", COALESCE(lc.n, 0) AS likes").
		Joins("LEFT JOIN (SELECT article_id, COUNT(*) AS n FROM likes GROUP BY article_id) lc ON lc.article_id = articles.id")
}

func (s *ArticleService) Create(ctx context.Context, a *models.Article) (*models.Article, error) {
	if a.UserID == "" || strings.TrimSpace(a.Title) == "" || strings.TrimSpace(a.Content) == "" {
		return nil, errArticleIncomplete
	}
	if err := s.db.WithContext(ctx).Create(a).Error; err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}
	return a, nil
}

// FindByID returns the article with its like count.
func (s *ArticleService) FindByID(ctx context.Context, id string) (*models.ArticleView, error) {
	var view models.ArticleView
	res := s.withLikes(ctx).Where("articles.id = ?", id).Limit(1).Scan(&view)
	if res.Error != nil {
		return nil, fmt.Errorf("find article %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrArticleNotFound
	}
	return &view, nil
}

// FindOwned is FindByID restricted to key.UserID's articles.
func (s *ArticleService) FindOwned(ctx context.Context, key ArticleKey) (*models.ArticleView, error) {
	view, err := s.FindByID(ctx, key.ID)
	if err != nil {
		return nil, err
	}
	if view.UserID != key.UserID {
		return nil, ErrArticleNotFound
	}
	return view, nil
}

func (s *ArticleService) FindAndCountAll(ctx context.Context, f ArticleFilters) (Page[models.ArticleView], error) {
	page := emptyPage[models.ArticleView]()
	scopes := []func(*gorm.DB) *gorm.DB{
		matchAny(f.Find, "articles.title", "articles.content"),
		byAuthor(f.UserID),
	}

	if err := s.db.WithContext(ctx).Table("articles").Scopes(scopes...).Count(&page.Count).Error; err != nil {
		return page, fmt.Errorf("count articles: %w", err)
	}
	if page.Count == 0 {
		return page, nil
	}

	err := s.withLikes(ctx).
		Scopes(scopes...).
		Order(orderBy("articles.title", f.Order)).
		Order("articles.id ASC").
		Scopes(paginate(f.Pagination)).
		Scan(&page.Rows).Error
	if err != nil {
		return page, fmt.Errorf("list articles: %w", err)
	}
	if page.Rows == nil {
		page.Rows = []models.ArticleView{}
	}
	return page, nil
}

// Update applies the non-nil fields to the article matching key and returns the refreshed view.
func (s *ArticleService) Update(ctx context.Context, key ArticleKey, upd ArticleUpdate) (*models.ArticleView, error) {
	if _, err := s.FindOwned(ctx, key); err != nil {
		return nil, err
	}
	fields := map[string]interface{}{}
	if upd.Title != nil {
		fields["title"] = *upd.Title
	}
	if upd.Content != nil {
		fields["content"] = *upd.Content
	}
	if upd.Image != nil {
		fields["image"] = *upd.Image
	}
	if len(fields) > 0 {
		err := s.db.WithContext(ctx).Model(&models.Article{}).
			Where("id = ? AND user_id = ?", key.ID, key.UserID).
			Updates(fields).Error
		if err != nil {
			return nil, fmt.Errorf("update article %s: %w", key.ID, err)
		}
	}
	return s.FindOwned(ctx, key)
}

func (s *ArticleService) DeleteByUserIDAndArticleID(ctx context.Context, key ArticleKey) error {
	res := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", key.ID, key.UserID).
		Delete(&models.Article{})
	if res.Error != nil {
		return fmt.Errorf("delete article %s: %w", key.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrArticleNotFound
	}
	return nil
}

// FindAndCountAllFavorites pages through the articles userID has liked.
// f.UserID is ignored; likes are the article's total, not just userID's.
func (s *ArticleService) FindAndCountAllFavorites(ctx context.Context, userID string, f ArticleFilters) (Page[models.ArticleView], error) {
	page := emptyPage[models.ArticleView]()
	scopes := []func(*gorm.DB) *gorm.DB{
		func(db *gorm.DB) *gorm.DB {
			return db.Joins("INNER JOIN likes fav ON fav.article_id = articles.id").Where("fav.user_id = ?", userID)
		},
		matchAny(f.Find, "articles.title", "articles.content"),
	}

	if err := s.db.WithContext(ctx).Table("articles").Scopes(scopes...).Count(&page.Count).Error; err != nil {
		return page, fmt.Errorf("count favorites: %w", err)
	}
	if page.Count == 0 {
		return page, nil
	}

	err := s.db.WithContext(ctx).Table("articles").
		Select(articleColumns + ", (SELECT COUNT(*) FROM likes l2 WHERE l2.article_id = articles.id) AS likes").
		Scopes(scopes...).
		Order(orderBy("articles.title", f.Order)).
		Order("articles.id ASC").
		Scopes(paginate(f.Pagination)).
		Scan(&page.Rows).Error
	if err != nil {
		return page, fmt.Errorf("list favorites: %w", err)
	}
	if page.Rows == nil {
		page.Rows = []models.ArticleView{}
	}
	return page, nil
}

func byAuthor(userID string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if userID == "" {
			return db
		}
		return db.Where("articles.user_id = ?", userID)
	}
}
