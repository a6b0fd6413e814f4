package httpctx

import (
	"Yatube/models"

	"github.com/gin-gonic/gin"
)

const (
	userIDKey = "userID"
	userKey   = "user"
)

// SetUser records the authenticated user on the Gin context.
func SetUser(c *gin.Context, user *models.User) {
	c.Set(userIDKey, user.ID)
	c.Set(userKey, user)
}

// CurrentUserID retrieves the authenticated user ID from Gin context if present.
func CurrentUserID(c *gin.Context) (uint, bool) {
	val, exists := c.Get(userIDKey)
	if !exists {
		return 0, false
	}
	uid, ok := val.(uint)
	return uid, ok && uid != 0
}

// CurrentUser returns the authenticated user or nil for guests.
func CurrentUser(c *gin.Context) *models.User {
	val, exists := c.Get(userKey)
	if !exists {
		return nil
	}
	user, _ := val.(*models.User)
	return user
}
