package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

type Comment struct {
	ID        uint      `gorm:"primary_key;autoIncrement" json:"id"`
	PostID    uint      `gorm:"not null;index" json:"post_id"`
	Post      Post      `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"-"`
	AuthorID  uint      `gorm:"not null;index" json:"author_id"`
	Author    User      `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (c *Comment) Prepare() {
	c.ID = 0
	c.Text = strings.TrimSpace(c.Text)
	c.Author = User{}
	c.Post = Post{}
}

func (c *Comment) Validate() map[string]string {
	errorMessages := make(map[string]string)
	if c.Text == "" {
		errorMessages["text"] = "This field is required."
	}
	if c.AuthorID == 0 {
		errorMessages["author"] = "Author is required."
	}
	if c.PostID == 0 {
		errorMessages["post"] = "Post is required."
	}
	return errorMessages
}

func (c *Comment) SaveComment(db *gorm.DB) (*Comment, error) {
	if err := db.Create(&c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Comment) GetComments(db *gorm.DB, postID uint) ([]Comment, error) {
	comments := []Comment{}
	err := db.Preload("Author").Where("post_id = ?", postID).
		Order("created_at desc, id desc").Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}
