package controllers

import (
	"errors"
	"strconv"
	"strings"

	"Yatube/models"

	"gorm.io/gorm"
)

var errInvalidIdentifier = errors.New("invalid identifier")

func parseID(identifier string) (uint, error) {
	trimmed := strings.TrimSpace(identifier)
	if trimmed == "" {
		return 0, errInvalidIdentifier
	}
	numericID, err := strconv.ParseUint(trimmed, 10, 32)
	if err != nil || numericID == 0 {
		return 0, errInvalidIdentifier
	}
	return uint(numericID), nil
}

func resolvePostByIdentifier(db *gorm.DB, identifier string) (*models.Post, error) {
	id, err := parseID(identifier)
	if err != nil {
		return nil, err
	}
	return (&models.Post{}).FindPostByID(db, id)
}

func resolveGroupBySlug(db *gorm.DB, slug string) (*models.Group, error) {
	trimmed := strings.TrimSpace(slug)
	if trimmed == "" {
		return nil, gorm.ErrRecordNotFound
	}
	return (&models.Group{}).FindGroupBySlug(db, trimmed)
}

// resolveGroupChoice validates the optional group picked in the post form.
// An empty value means no group.
func resolveGroupChoice(db *gorm.DB, raw string) (*uint, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	id, err := parseID(raw)
	if err != nil {
		return nil, err
	}
	group, err := (&models.Group{}).FindGroupByID(db, id)
	if err != nil {
		return nil, err
	}
	return &group.ID, nil
}
