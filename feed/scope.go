package feed

import (
	"fmt"

	"Yatube/models"

	"gorm.io/gorm"
)

type scopeKind int

const (
	scopeAll scopeKind = iota
	scopeGroup
	scopeAuthor
	scopeFollower
)

// Scope selects which posts a feed contains.
type Scope struct {
	kind scopeKind
	id   uint
}

func All() Scope                    { return Scope{kind: scopeAll} }
func ForGroup(groupID uint) Scope   { return Scope{kind: scopeGroup, id: groupID} }
func ForAuthor(authorID uint) Scope { return Scope{kind: scopeAuthor, id: authorID} }

// ForFollower selects posts written by the authors userID follows.
func ForFollower(userID uint) Scope { return Scope{kind: scopeFollower, id: userID} }

func (s Scope) String() string {
	switch s.kind {
	case scopeGroup:
		return fmt.Sprintf("group:%d", s.id)
	case scopeAuthor:
		return fmt.Sprintf("author:%d", s.id)
	case scopeFollower:
		return fmt.Sprintf("follower:%d", s.id)
	default:
		return "all"
	}
}

func (s Scope) apply(db *gorm.DB) *gorm.DB {
	switch s.kind {
	case scopeGroup:
		return db.Where("posts.group_id = ?", s.id)
	case scopeAuthor:
		return db.Where("posts.author_id = ?", s.id)
	case scopeFollower:
		authors := db.Session(&gorm.Session{NewDB: true}).
			Model(&models.Follow{}).
			Select("author_id").
			Where("user_id = ?", s.id)
		return db.Where("posts.author_id IN (?)", authors)
	default:
		return db
	}
}
