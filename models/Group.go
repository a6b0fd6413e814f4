package models

import (
	"regexp"
	"strings"

	"gorm.io/gorm"
)

type Group struct {
	ID          uint   `gorm:"primary_key;autoIncrement" json:"id"`
	Title       string `gorm:"size:200;not null" json:"title"`
	Slug        string `gorm:"size:100;not null;uniqueIndex" json:"slug"`
	Description string `gorm:"type:text" json:"description"`

	Posts []Post `gorm:"foreignKey:GroupID;constraint:OnDelete:SET NULL" json:"-"`
}

var slugPattern = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)

func (g *Group) Prepare() {
	g.Title = strings.TrimSpace(g.Title)
	g.Slug = strings.TrimSpace(g.Slug)
	g.Description = strings.TrimSpace(g.Description)
}

func (g *Group) Validate() map[string]string {
	errorMessages := make(map[string]string)
	if g.Title == "" {
		errorMessages["title"] = "This field is required."
	}
	if g.Slug == "" {
		errorMessages["slug"] = "This field is required."
	} else if !slugPattern.MatchString(g.Slug) {
		errorMessages["slug"] = "Enter a valid slug consisting of letters, numbers, underscores or hyphens."
	}
	return errorMessages
}

func (g *Group) SaveGroup(db *gorm.DB) (*Group, error) {
	if err := db.Create(&g).Error; err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Group) FindGroupBySlug(db *gorm.DB, slug string) (*Group, error) {
	var group Group
	if err := db.Where("slug = ?", strings.TrimSpace(slug)).Take(&group).Error; err != nil {
		return nil, err
	}
	return &group, nil
}

func (g *Group) FindGroupByID(db *gorm.DB, id uint) (*Group, error) {
	var group Group
	if err := db.Where("id = ?", id).Take(&group).Error; err != nil {
		return nil, err
	}
	return &group, nil
}

// FindAllGroups lists groups by title for the post form.
func (g *Group) FindAllGroups(db *gorm.DB) ([]Group, error) {
	var groups []Group
	if err := db.Order("title ASC").Find(&groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}
