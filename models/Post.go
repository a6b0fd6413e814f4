package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

type Post struct {
	ID        uint      `gorm:"primary_key;autoIncrement" json:"id"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	CreatedAt time.Time `gorm:"autoCreateTime;index:idx_posts_created" json:"created_at"`
	AuthorID  uint      `gorm:"not null;index:idx_posts_author_created,priority:1" json:"author_id"`
	Author    User      `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author"`
	GroupID   *uint     `gorm:"index" json:"group_id"`
	Group     *Group    `gorm:"foreignKey:GroupID;constraint:OnDelete:SET NULL" json:"group,omitempty"`
	Image     string    `gorm:"size:255" json:"image"`
}

// FeedOrder is newest first with the id as tie-breaker.
const FeedOrder = "posts.created_at DESC, posts.id DESC"

func (p *Post) Prepare() {
	p.ID = 0
	p.Text = strings.TrimSpace(p.Text)
	p.Author = User{}
	p.Group = nil
}

func (p *Post) Validate() map[string]string {
	errorMessages := make(map[string]string)
	if strings.TrimSpace(p.Text) == "" {
		errorMessages["text"] = "This field is required."
	}
	if p.AuthorID == 0 {
		errorMessages["author"] = "Author is required."
	}
	return errorMessages
}

// Excerpt returns at most n characters of the text.
func (p *Post) Excerpt(n int) string {
	runes := []rune(p.Text)
	if len(runes) <= n {
		return p.Text
	}
	return string(runes[:n])
}

func (p *Post) SavePost(db *gorm.DB) (*Post, error) {
	if err := db.Create(&p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

// UpdateAPost writes text, group and image. A nil group clears it.
func (p *Post) UpdateAPost(db *gorm.DB) (*Post, error) {
	err := db.Model(&Post{}).Where("id = ?", p.ID).Updates(map[string]interface{}{
		"text":     p.Text,
		"group_id": p.GroupID,
		"image":    p.Image,
	}).Error
	if err != nil {
		return nil, err
	}
	return p.FindPostByID(db, p.ID)
}

func (p *Post) FindPostByID(db *gorm.DB, id uint) (*Post, error) {
	var post Post
	err := db.Preload("Author").Preload("Group").
		Where("id = ?", id).Take(&post).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func CountAuthorPosts(db *gorm.DB, authorID uint) (int64, error) {
	var count int64
	err := db.Model(&Post{}).Where("author_id = ?", authorID).Count(&count).Error
	return count, err
}
