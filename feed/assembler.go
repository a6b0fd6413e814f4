// Package feed builds paginated, newest-first post listings.
package feed

import (
	"context"
	"fmt"

	"Yatube/models"

	"gorm.io/gorm"
)

type Assembler struct {
	db       *gorm.DB
	pageSize int
}

func NewAssembler(db *gorm.DB, pageSize int) *Assembler {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Assembler{db: db, pageSize: pageSize}
}

// Assemble counts the scope, resolves rawPage against it and loads that page
// with authors and groups attached.
func (a *Assembler) Assemble(ctx context.Context, scope Scope, rawPage string) (*Page, error) {
	db := a.db.WithContext(ctx)

	var count int64
	if err := scope.apply(db.Model(&models.Post{})).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("count %s feed: %w", scope, err)
	}

	numPages := NumPages(count, a.pageSize)
	number := ResolvePageNumber(rawPage, numPages)

	page := &Page{
		Posts:    []models.Post{},
		Number:   number,
		NumPages: numPages,
		Count:    count,
		PerPage:  a.pageSize,
	}
	if count == 0 {
		return page, nil
	}

	err := scope.apply(db.Model(&models.Post{})).
		Preload("Author").
		Preload("Group").
		Order(models.FeedOrder).
		Offset((number - 1) * a.pageSize).
		Limit(a.pageSize).
		Find(&page.Posts).Error
	if err != nil {
		return nil, fmt.Errorf("load %s feed page %d: %w", scope, number, err)
	}
	return page, nil
}
