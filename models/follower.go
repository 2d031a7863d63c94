package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Follower is a directed edge: FollowerID follows FollowedID.
type Follower struct {
	ID           string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	FollowerID   string    `gorm:"type:varchar(36);not null;uniqueIndex:idx_followers_pair" json:"followerId"`
	FollowedID   string    `gorm:"type:varchar(36);not null;uniqueIndex:idx_followers_pair;index" json:"followedId"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	FollowerUser *User     `gorm:"foreignKey:FollowerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	FollowedUser *User     `gorm:"foreignKey:FollowedID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}

func (f *Follower) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}
