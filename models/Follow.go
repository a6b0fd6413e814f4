package models

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Follow is a directed edge: UserID follows AuthorID.
type Follow struct {
	ID        uint      `gorm:"primary_key;autoIncrement" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_follows_unique,priority:1;check:follows_no_self_follow,user_id <> author_id" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	AuthorID  uint      `gorm:"not null;index;uniqueIndex:idx_follows_unique,priority:2" json:"author_id"`
	Author    User      `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// FollowAuthor creates the edge userID -> authorID. Following yourself or an
// author you already follow is a no-op; created reports whether a row was added.
func FollowAuthor(db *gorm.DB, userID, authorID uint) (created bool, err error) {
	if userID == 0 || authorID == 0 || userID == authorID {
		return false, nil
	}
	result := db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&Follow{UserID: userID, AuthorID: authorID})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// UnfollowAuthor deletes the edge if present.
func UnfollowAuthor(db *gorm.DB, userID, authorID uint) (removed bool, err error) {
	result := db.Where("user_id = ? AND author_id = ?", userID, authorID).Delete(&Follow{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func IsFollowing(db *gorm.DB, userID, authorID uint) (bool, error) {
	var count int64
	err := db.Model(&Follow{}).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Count(&count).Error
	return count > 0, err
}

func CountFollowers(db *gorm.DB, authorID uint) (int64, error) {
	var count int64
	err := db.Model(&Follow{}).Where("author_id = ?", authorID).Count(&count).Error
	return count, err
}

func CountFollowing(db *gorm.DB, userID uint) (int64, error) {
	var count int64
	err := db.Model(&Follow{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
