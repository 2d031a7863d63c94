package services

import (
	"context"
	"fmt"

	"github.com/cppla/inkpost/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LikeService struct {
	db *gorm.DB
}

func NewLikeService(db *gorm.DB) *LikeService {
	return &LikeService{db: db}
}

// Create likes the article if not already liked. created is false when the like existed.
func (s *LikeService) Create(ctx context.Context, userID, articleID string) (*models.Like, bool, error) {
	like := &models.Like{UserID: userID, ArticleID: articleID}
	res := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "article_id"}},
			DoNothing: true,
		}).
		Create(like)
	if res.Error != nil {
		return nil, false, fmt.Errorf("create like: %w", res.Error)
	}
	if res.RowsAffected > 0 {
		return like, true, nil
	}

	var existing models.Like
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND article_id = ?", userID, articleID).
		First(&existing).Error; err != nil {
		return nil, false, fmt.Errorf("read like: %w", err)
	}
	return &existing, false, nil
}

func (s *LikeService) CheckIfLiked(ctx context.Context, userID, articleID string) (bool, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.Like{}).
		Where("user_id = ? AND article_id = ?", userID, articleID).
		Count(&n).Error
	if err != nil {
		return false, fmt.Errorf("check like: %w", err)
	}
	return n > 0, nil
}

// Delete is a no-op when the like does not exist.
func (s *LikeService) Delete(ctx context.Context, userID, articleID string) error {
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND article_id = ?", userID, articleID).
		Delete(&models.Like{}).Error
	if err != nil {
		return fmt.Errorf("delete like: %w", err)
	}
	return nil
}
